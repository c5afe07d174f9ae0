package startup

import (
	"github.com/nird-project/nird/internal/diagnostic"
	"github.com/nird-project/nird/internal/pkg/snowflake"
	testioc "github.com/nird-project/nird/internal/test/ioc"
)

func InitModule() (*diagnostic.Module, error) {
	db := testioc.InitDB()
	q := testioc.InitMQ()
	snGen, err := snowflake.NewCustomGenerator(0, 3)
	if err != nil {
		return nil, err
	}
	return diagnostic.InitModule(db, q, snGen)
}
