package domain

// Category 目录里的方案分类
type Category string

const (
	CategoryOS            Category = "os"
	CategoryOffice        Category = "office"
	CategoryStorage       Category = "storage"
	CategoryCommunication Category = "communication"
	CategorySecurity      Category = "security"
	CategoryMultimedia    Category = "multimedia"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryOS, CategoryOffice, CategoryStorage,
		CategoryCommunication, CategorySecurity, CategoryMultimedia:
		return true
	default:
		return false
	}
}

type Cost string

const (
	CostFree     Cost = "free"
	CostFreemium Cost = "freemium"
	CostPaid     Cost = "paid"
)

func (c Cost) Valid() bool {
	switch c {
	case CostFree, CostFreemium, CostPaid:
		return true
	default:
		return false
	}
}

type Desc struct {
	Short string
	Long  string
}

type Metrics struct {
	Cost Cost
	// Difficulty 1-5
	Difficulty int
	// Rating 0-5
	Rating      float64
	UsedByCount int
}

type Comparison struct {
	CostPerDevice   float64
	CO2Impact       float64
	MaintenanceTime float64
	RequiredRAM     float64
}

type Resources struct {
	OfficialSite  string
	Documentation string
	TutorialVideo string
	InstallGuide  string
}

type TargetAudience struct {
	EstablishmentTypes []string
	TechnicalLevels    []string
}

type Solution struct {
	Id             int64
	Name           string
	Category       Category
	Desc           Desc
	Logo           string
	AlternativeTo  []string
	Metrics        Metrics
	Advantages     []string
	Disadvantages  []string
	Comparison     Comparison
	Resources      Resources
	TargetAudience TargetAudience
	Tags           []string
	Ctime          int64
	Utime          int64
}

// ComparisonRow 对比视图里一个方案的投影
type ComparisonRow struct {
	Id              int64
	Name            string
	Cost            Cost
	Difficulty      int
	Rating          float64
	CostPerDevice   float64
	CO2Impact       float64
	MaintenanceTime float64
	Advantages      []string
	Disadvantages   []string
}
