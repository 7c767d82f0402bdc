package permission

import (
	"github.com/simplici7y/s7/internal/permission/internal/service"
)

type Module struct {
	Svc Service
}

type Service = service.Service
