package startup

import (
	"github.com/nird-project/nird/internal/gamification"
	testioc "github.com/nird-project/nird/internal/test/ioc"
	"github.com/nird-project/nird/internal/user"
)

func InitModule() (*gamification.Module, error) {
	db := testioc.InitDB()
	ec := testioc.InitCache()
	q := testioc.InitMQ()
	userSvc := user.InitService(db, ec)
	return gamification.InitModule(db, ec, q, userSvc)
}
