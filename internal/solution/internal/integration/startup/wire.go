package startup

import (
	"github.com/nird-project/nird/internal/solution"
	testioc "github.com/nird-project/nird/internal/test/ioc"
)

func InitModule() (*solution.Module, error) {
	db := testioc.InitDB()
	ec := testioc.InitCache()
	return solution.InitModule(db, ec)
}
