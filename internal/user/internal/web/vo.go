package web

type SignupReq struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	Role          string          `json:"role"`
	Establishment EstablishmentVO `json:"establishment"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditReq struct {
	Name          string          `json:"name"`
	Establishment EstablishmentVO `json:"establishment"`
}

type EstablishmentVO struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	City   string `json:"city"`
	Region string `json:"region"`
}

type Profile struct {
	Id            int64           `json:"id"`
	SN            string          `json:"sn"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          string          `json:"role"`
	Establishment EstablishmentVO `json:"establishment"`
}
