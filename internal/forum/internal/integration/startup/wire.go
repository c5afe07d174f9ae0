package startup

import (
	"github.com/nird-project/nird/internal/forum"
	testioc "github.com/nird-project/nird/internal/test/ioc"
	"github.com/nird-project/nird/internal/user"
)

func InitModule() (*forum.Module, error) {
	db := testioc.InitDB()
	q := testioc.InitMQ()
	userSvc := user.InitService(db, testioc.InitCache())
	return forum.InitModule(db, q, userSvc)
}
