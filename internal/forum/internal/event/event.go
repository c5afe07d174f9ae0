package event

const PointsEventName = "points_events"

// PointsEvent 发帖和评论的加分事件，gamification 模块消费
type PointsEvent struct {
	Key    string `json:"key"`
	Uid    int64  `json:"uid"`
	Points uint64 `json:"points"`
	Biz    string `json:"biz"`
	BizId  int64  `json:"biz_id"`
	Action string `json:"action"`
}
