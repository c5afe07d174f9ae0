package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/nird-project/nird/internal/diagnostic"
	"github.com/nird-project/nird/internal/forum"
	"github.com/nird-project/nird/internal/gamification"
	"github.com/nird-project/nird/internal/pkg/middleware"
	"github.com/nird-project/nird/internal/solution"
	"github.com/nird-project/nird/internal/user"
)

func initGinxServer(sp session.Provider,
	user *user.Handler,
	diag *diagnostic.Handler,
	sol *solution.Handler,
	forumHdl *forum.Handler,
	gam *gamification.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "nird-edu.fr")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	user.PublicRoutes(res.Engine)
	sol.PublicRoutes(res.Engine)
	forumHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	user.PrivateRoutes(res.Engine)
	diag.PrivateRoutes(res.Engine)
	sol.PrivateRoutes(res.Engine)
	forumHdl.PrivateRoutes(res.Engine)
	gam.PrivateRoutes(res.Engine)
	return res
}
