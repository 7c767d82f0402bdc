// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package startup

import (
	"github.com/simplici7y/s7/internal/test/ioc"
	"github.com/simplici7y/s7/internal/user"
)

// Injectors from wire.go:

func InitModule() (*user.Module, error) {
	v := testioc.InitDB()
	module, err := user.InitModule(v)
	if err != nil {
		return nil, err
	}
	return module, nil
}
