// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/simplici7y/s7/internal/item"
	"github.com/simplici7y/s7/internal/permission"
	"github.com/simplici7y/s7/internal/test/ioc"
	"github.com/simplici7y/s7/internal/user"
)

// Injectors from wire.go:

func InitModule() (*item.Module, error) {
	v := testioc.InitDB()
	cache := testioc.InitCache()
	module, err := user.InitModule(v)
	if err != nil {
		return nil, err
	}
	permissionModule := permission.InitModule(module)
	itemModule, err := item.InitModule(v, cache, permissionModule)
	if err != nil {
		return nil, err
	}
	return itemModule, nil
}
