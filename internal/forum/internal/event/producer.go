package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/nird-project/nird/internal/pkg/mqx"
)

type PointsEventProducer interface {
	mqx.Producer[PointsEvent]
}

func NewPointsEventProducer(q mq.MQ) (PointsEventProducer, error) {
	return mqx.NewGeneralProducer[PointsEvent](q, PointsEventName)
}
