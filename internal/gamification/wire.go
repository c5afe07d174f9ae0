//go:build wireinject

package gamification

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/nird-project/nird/internal/gamification/internal/event"
	"github.com/nird-project/nird/internal/gamification/internal/web"
	"github.com/nird-project/nird/internal/user"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, userSvc user.UserService) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewHandler,
		event.NewPointsEventConsumer,
	)
	return new(Module), nil
}
