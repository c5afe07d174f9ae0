package domain

type Level string

const (
	LevelApprentice Level = "apprentice"
	LevelWarrior    Level = "warrior"
	LevelGuardian   Level = "guardian"
	LevelChampion   Level = "champion"
)

func (l Level) String() string {
	return string(l)
}

// Badge 徽章目录里的一项，Key 是稳定标识，展示文案可以随时改
type Badge struct {
	Key    string
	Name   string
	Icon   string
	Desc   string
	Points uint64
}

type EarnedBadge struct {
	Key      string
	Name     string
	Icon     string
	EarnedAt int64
}

// NextLevel 距离下一级还差多少分，已经满级就是 nil
type NextLevel struct {
	Level        Level
	Threshold    uint64
	PointsNeeded uint64
}

type Profile struct {
	Uid           int64
	Name          string
	Role          string
	Establishment string
	Points        uint64
	Level         Level
	Badges        []EarnedBadge
	Next          *NextLevel
}

// PointsLog 一次加分的流水，Key 用来去重
type PointsLog struct {
	Key    string
	Biz    string
	BizId  int64
	Action string
	Change uint64
}

type LeaderboardEntry struct {
	Rank          int
	Uid           int64
	Name          string
	Establishment string
	Points        uint64
	Level         Level
	BadgeCnt      int
}
