//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/simplici7y/s7/internal/item"
	"github.com/simplici7y/s7/internal/permission"
	"github.com/simplici7y/s7/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		permission.InitModule,
		item.InitModule,
		InitSession,
		InitUploadsHandler,
		InitFeedHandler,
		initGinxServer,
	)
	return new(App), nil
}
