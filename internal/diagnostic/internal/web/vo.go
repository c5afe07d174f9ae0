package web

type SubmitReq struct {
	Answers AnswerSetVO `json:"answers"`
}

type AnswerSetVO struct {
	EstablishmentType string   `json:"establishmentType"`
	ComputerCount     int      `json:"computerCount"`
	CurrentOS         string   `json:"currentOS"`
	Budget            float64  `json:"budgetLicenses"`
	HasITStaff        bool     `json:"hasITStaff"`
	MainConcerns      []string `json:"mainConcerns"`
	Readiness         string   `json:"readinessLevel"`
}

type DetailReq struct {
	Id int64 `json:"id"`
}

type SavingsVO struct {
	Money     int64   `json:"money"`
	CO2       float64 `json:"co2"`
	Computers int     `json:"computers"`
}

type PhaseVO struct {
	Phase      string   `json:"phase"`
	Title      string   `json:"title"`
	Tasks      []string `json:"tasks"`
	Duration   string   `json:"duration"`
	Savings    int64    `json:"savings"`
	Difficulty int      `json:"difficulty"`
}

type Diagnostic struct {
	Id                   int64       `json:"id"`
	SN                   string      `json:"sn"`
	Answers              AnswerSetVO `json:"answers"`
	DependencyScore      int         `json:"dependencyScore"`
	PotentialSavings     SavingsVO   `json:"potentialSavings"`
	ActionPlan           []PhaseVO   `json:"actionPlan"`
	RecommendedSolutions []int64     `json:"recommendedSolutions"`
	Ctime                int64       `json:"ctime"`
}

type DiagnosticList struct {
	Total       int          `json:"total"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}
