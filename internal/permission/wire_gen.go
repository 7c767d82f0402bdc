// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package permission

import (
	"github.com/simplici7y/s7/internal/permission/internal/service"
	"github.com/simplici7y/s7/internal/user"
)

// Injectors from wire.go:

func InitModule(userModule *user.Module) *Module {
	v := userModule.Svc
	v2 := service.NewPermissionService(v)
	module := &Module{
		Svc: v2,
	}
	return module
}
