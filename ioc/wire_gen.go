// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/simplici7y/s7/internal/item"
	"github.com/simplici7y/s7/internal/permission"
	"github.com/simplici7y/s7/internal/user"
)

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	module, err := user.InitModule(v)
	if err != nil {
		return nil, err
	}
	v2 := module.Hdl
	cache := InitCache(cmdable)
	permissionModule := permission.InitModule(module)
	itemModule, err := item.InitModule(v, cache, permissionModule)
	if err != nil {
		return nil, err
	}
	v3 := InitUploadsHandler()
	v4 := InitFeedHandler(itemModule)
	component := initGinxServer(provider, v2, itemModule, v3, v4)
	app := &App{
		Web: component,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache)
