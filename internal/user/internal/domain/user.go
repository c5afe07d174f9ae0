package domain

// Role 平台内的身份
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleHead      Role = "head"
	RoleAuthority Role = "authority"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleHead, RoleAuthority:
		return true
	default:
		return false
	}
}

// CanManageCatalog 只有教师和校领导可以维护替代方案目录
func (r Role) CanManageCatalog() bool {
	return r == RoleTeacher || r == RoleHead
}

func (r Role) String() string {
	return string(r)
}

type EstablishmentType string

const (
	EstablishmentPrimary    EstablishmentType = "primary"
	EstablishmentMiddle     EstablishmentType = "middle"
	EstablishmentHigh       EstablishmentType = "high"
	EstablishmentUniversity EstablishmentType = "university"
)

func (t EstablishmentType) String() string {
	return string(t)
}

func (t EstablishmentType) Valid() bool {
	switch t {
	case EstablishmentPrimary, EstablishmentMiddle, EstablishmentHigh, EstablishmentUniversity:
		return true
	default:
		return false
	}
}

type Establishment struct {
	Name   string
	Type   EstablishmentType
	City   string
	Region string
}

type User struct {
	Id    int64
	SN    string
	Name  string
	Email string
	// Password 始终是 bcrypt 之后的值，绝不往外暴露
	Password      string
	Role          Role
	Establishment Establishment
}
