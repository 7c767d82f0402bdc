// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package user

import (
	"github.com/ego-component/egorm"
	"github.com/simplici7y/s7/internal/user/internal/repository"
	"github.com/simplici7y/s7/internal/user/internal/repository/dao"
	"github.com/simplici7y/s7/internal/user/internal/service"
	"github.com/simplici7y/s7/internal/user/internal/web"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	userDAO := InitUserDAO(db)
	userRepository := repository.NewUserRepository(userDAO)
	v := service.NewUserService(userRepository)
	v2 := web.NewHandler(v)
	module := &Module{
		Svc: v,
		Hdl: v2,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitUserDAO(db *egorm.Component) dao.UserDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}
