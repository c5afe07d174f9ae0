package event

const PointsEventName = "points_events"

// PointsEvent 其他模块发过来的加分事件，Key 用来去重
type PointsEvent struct {
	Key    string `json:"key"`
	Uid    int64  `json:"uid"`
	Points uint64 `json:"points"`
	Biz    string `json:"biz"`
	BizId  int64  `json:"bizId"`
	Action string `json:"action"`
}
