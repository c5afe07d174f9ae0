package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/nird-project/nird/internal/pkg/snowflake"
)

// apps 目前给诊断、方案、论坛三个业务发号
const snowflakeApps = 3

func InitSnowflakeGenerator() snowflake.Generator {
	nodeId := uint(econf.GetInt("snowflake.node"))
	gen, err := snowflake.NewCustomGenerator(nodeId, snowflakeApps)
	if err != nil {
		panic(err)
	}
	return gen
}
