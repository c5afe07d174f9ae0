//go:build wireinject

package forum

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/nird-project/nird/internal/forum/internal/web"
	"github.com/nird-project/nird/internal/user"
)

func InitModule(db *egorm.Component, q mq.MQ, userSvc user.UserService) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewHandler,
	)
	return new(Module), nil
}
