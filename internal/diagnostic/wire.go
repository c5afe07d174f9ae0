//go:build wireinject

package diagnostic

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/nird-project/nird/internal/diagnostic/internal/web"
	"github.com/nird-project/nird/internal/pkg/snowflake"
)

func InitModule(db *egorm.Component, q mq.MQ, snGen snowflake.Generator) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		InitService,
		web.NewHandler,
	)
	return new(Module), nil
}
