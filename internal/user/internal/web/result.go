package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/simplici7y/s7/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateUsernameResult = ginx.Result{
		Code: errs.DuplicateUsername.Code,
		Msg:  errs.DuplicateUsername.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
)
