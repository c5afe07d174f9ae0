package event

const PointsEventName = "points_events"

// PointsEvent 最好努力交付的加分事件，
// 由 gamification 模块消费
type PointsEvent struct {
	Key    string `json:"key"`
	Uid    int64  `json:"uid"`
	Points uint64 `json:"points"`
	Biz    string `json:"biz"`
	BizId  int64  `json:"biz_id"`
	Action string `json:"action"`
}
