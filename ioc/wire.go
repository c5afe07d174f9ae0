//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/nird-project/nird/internal/diagnostic"
	"github.com/nird-project/nird/internal/forum"
	"github.com/nird-project/nird/internal/gamification"
	"github.com/nird-project/nird/internal/solution"
	"github.com/nird-project/nird/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSnowflakeGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "Svc"),
		diagnostic.InitModule,
		wire.FieldsOf(new(*diagnostic.Module), "Hdl"),
		solution.InitModule,
		wire.FieldsOf(new(*solution.Module), "Hdl"),
		forum.InitModule,
		wire.FieldsOf(new(*forum.Module), "Hdl"),
		gamification.InitModule,
		wire.FieldsOf(new(*gamification.Module), "Hdl"),
		initConsumers,
		initGinxServer)
	return new(App), nil
}
