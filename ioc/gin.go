package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/simplici7y/s7/internal/feed"
	"github.com/simplici7y/s7/internal/item"
	"github.com/simplici7y/s7/internal/pkg/middleware"
	"github.com/simplici7y/s7/internal/uploads"
	"github.com/simplici7y/s7/internal/user"
)

func initGinxServer(sp session.Provider,
	uh *user.Handler,
	itemModule *item.Module,
	uploadsHdl *uploads.Handler,
	feedHdl *feed.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "simplici7y.com")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	uh.PublicRoutes(res.Engine)
	itemModule.Hdl.PublicRoutes(res.Engine)
	itemModule.VerHdl.PublicRoutes(res.Engine)
	itemModule.ReviewHdl.PublicRoutes(res.Engine)
	itemModule.TagHdl.PublicRoutes(res.Engine)
	feedHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	uh.PrivateRoutes(res.Engine)
	itemModule.Hdl.PrivateRoutes(res.Engine)
	itemModule.VerHdl.PrivateRoutes(res.Engine)
	itemModule.ReviewHdl.PrivateRoutes(res.Engine)
	itemModule.TagHdl.PrivateRoutes(res.Engine)
	uploadsHdl.PrivateRoutes(res.Engine)
	return res
}
