package startup

import (
	testioc "github.com/nird-project/nird/internal/test/ioc"
	"github.com/nird-project/nird/internal/user"
)

func InitModule() (*user.Module, error) {
	db := testioc.InitDB()
	ec := testioc.InitCache()
	return user.InitModule(db, ec)
}
