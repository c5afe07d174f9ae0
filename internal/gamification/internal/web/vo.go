package web

type AddPointsReq struct {
	Points uint64 `json:"points"`
	Action string `json:"action"`
}

type EarnBadgeReq struct {
	BadgeKey string `json:"badgeKey"`
}

type LeaderboardReq struct {
	Limit int `json:"limit"`
}

type Badge struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	EarnedAt int64  `json:"earnedAt,omitempty"`
}

type NextLevel struct {
	Level        string `json:"level"`
	Threshold    uint64 `json:"threshold"`
	PointsNeeded uint64 `json:"pointsNeeded"`
}

type Profile struct {
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Establishment string  `json:"establishment"`
	Points        uint64  `json:"points"`
	Level         string  `json:"level"`
	Badges        []Badge `json:"badges"`
	// NextLevel 满级之后就没有了
	NextLevel *NextLevel `json:"nextLevel,omitempty"`
}

type AddPointsResult struct {
	Points uint64 `json:"points"`
	Level  string `json:"level"`
	Action string `json:"action"`
}

type EarnBadgeResult struct {
	Badge       Badge  `json:"badge"`
	TotalPoints uint64 `json:"totalPoints"`
	Level       string `json:"level"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Establishment string `json:"establishment"`
	Points        uint64 `json:"points"`
	Level         string `json:"level"`
	BadgesCount   int    `json:"badgesCount"`
}

type Leaderboard struct {
	Total   int                `json:"total"`
	Entries []LeaderboardEntry `json:"entries"`
}
