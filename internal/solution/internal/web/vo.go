package web

type ListReq struct {
	Category      string `json:"category"`
	MaxDifficulty int    `json:"maxDifficulty"`
	Cost          string `json:"cost"`
}

type DetailReq struct {
	Id int64 `json:"id"`
}

type CompareReq struct {
	SolutionIds []int64 `json:"solutionIds"`
}

type SaveReq struct {
	Solution Solution `json:"solution"`
}

type Solution struct {
	Id             int64          `json:"id"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Description    Desc           `json:"description"`
	Logo           string         `json:"logo"`
	AlternativeTo  []string       `json:"alternativeTo"`
	Metrics        Metrics        `json:"metrics"`
	Advantages     []string       `json:"advantages"`
	Disadvantages  []string       `json:"disadvantages"`
	Comparison     Comparison     `json:"comparison"`
	Resources      Resources      `json:"resources"`
	TargetAudience TargetAudience `json:"targetAudience"`
	Tags           []string       `json:"tags"`
}

type Desc struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

type Metrics struct {
	Cost        string  `json:"cost"`
	Difficulty  int     `json:"difficulty"`
	Rating      float64 `json:"rating"`
	UsedByCount int     `json:"usedByCount"`
}

type Comparison struct {
	CostPerDevice   float64 `json:"costPerDevice"`
	CO2Impact       float64 `json:"co2Impact"`
	MaintenanceTime float64 `json:"maintenanceTime"`
	RequiredRAM     float64 `json:"requiredRAM"`
}

type Resources struct {
	OfficialSite  string `json:"officialSite"`
	Documentation string `json:"documentation"`
	TutorialVideo string `json:"tutorialVideo"`
	InstallGuide  string `json:"installGuide"`
}

type TargetAudience struct {
	EstablishmentTypes []string `json:"establishmentTypes"`
	TechnicalLevels    []string `json:"technicalLevels"`
}

type SolutionList struct {
	Total     int        `json:"total"`
	Solutions []Solution `json:"solutions"`
}

type ComparisonRow struct {
	Id              int64    `json:"id"`
	Name            string   `json:"name"`
	Cost            string   `json:"cost"`
	Difficulty      int      `json:"difficulty"`
	Rating          float64  `json:"rating"`
	CostPerDevice   float64  `json:"costPerDevice"`
	CO2Impact       float64  `json:"co2Impact"`
	MaintenanceTime float64  `json:"maintenanceTime"`
	Advantages      []string `json:"advantages"`
	Disadvantages   []string `json:"disadvantages"`
}
