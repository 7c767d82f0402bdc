//go:build wireinject

package permission

import (
	"github.com/google/wire"
	"github.com/simplici7y/s7/internal/permission/internal/service"
	"github.com/simplici7y/s7/internal/user"
)

func InitModule(userModule *user.Module) *Module {
	wire.Build(
		service.NewPermissionService,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
