package domain

// OS 问卷里允许的操作系统取值
type OS string

const (
	OSWindows10 OS = "windows10"
	OSWindows11 OS = "windows11"
	OSLinux     OS = "linux"
	OSMacOS     OS = "macos"
	OSMix       OS = "mix"
)

func (o OS) Valid() bool {
	switch o {
	case OSWindows10, OSWindows11, OSLinux, OSMacOS, OSMix:
		return true
	default:
		return false
	}
}

// Legacy 是否属于要计入依赖分的私有 OS
func (o OS) Legacy() bool {
	return o == OSWindows10 || o == OSWindows11
}

type EstablishmentType string

const (
	EstablishmentPrimary    EstablishmentType = "primary"
	EstablishmentMiddle     EstablishmentType = "middle"
	EstablishmentHigh       EstablishmentType = "high"
	EstablishmentUniversity EstablishmentType = "university"
)

func (t EstablishmentType) Valid() bool {
	switch t {
	case EstablishmentPrimary, EstablishmentMiddle, EstablishmentHigh, EstablishmentUniversity:
		return true
	default:
		return false
	}
}

// Readiness 自报的准备程度。
// 目前只收集，评分并不使用它
type Readiness string

const (
	ReadinessDiscovery  Readiness = "discovery"
	ReadinessInterested Readiness = "interested"
	ReadinessReady      Readiness = "ready"
	ReadinessExpert     Readiness = "expert"
)

func (r Readiness) Valid() bool {
	switch r {
	case ReadinessDiscovery, ReadinessInterested, ReadinessReady, ReadinessExpert:
		return true
	default:
		return false
	}
}

// AnswerSet 一次诊断的全部问卷回答，提交之后不再变
type AnswerSet struct {
	EstablishmentType EstablishmentType
	ComputerCount     int
	CurrentOS         OS
	Budget            float64
	HasITStaff        bool
	MainConcerns      []string
	Readiness         Readiness
}

// Savings 三年期的预估收益
type Savings struct {
	// Money 单位是欧元
	Money int64
	// CO2 单位是吨
	CO2 float64
	// Computers 免于提前报废的电脑数量
	Computers int
}

type Phase struct {
	Phase      string
	Title      string
	Tasks      []string
	Duration   string
	Savings    int64
	Difficulty int
}

type Diagnostic struct {
	Id      int64
	SN      string
	Uid     int64
	Answers AnswerSet
	Score   int
	Savings Savings
	Plan    []Phase
	// RecommendedSolutions 预留字段，推荐逻辑还没接上
	RecommendedSolutions []int64
	Ctime                int64
	Utime                int64
}
