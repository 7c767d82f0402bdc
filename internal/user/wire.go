//go:build wireinject

package user

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/simplici7y/s7/internal/user/internal/repository"
	"github.com/simplici7y/s7/internal/user/internal/repository/dao"
	"github.com/simplici7y/s7/internal/user/internal/service"
	"github.com/simplici7y/s7/internal/user/internal/web"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitUserDAO,
		repository.NewUserRepository,
		service.NewUserService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
