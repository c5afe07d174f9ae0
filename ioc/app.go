package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

// Consumer 需要随应用启动的后台消费者
type Consumer interface {
	Start(ctx context.Context)
}

type App struct {
	Web       *egin.Component
	Consumers []Consumer
}
