package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/simplici7y/s7/internal/item/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.NotFound.Code,
		Msg:  errs.NotFound.Msg,
	}
	duplicatePermalinkResult = ginx.Result{
		Code: errs.DuplicatePermalink.Code,
		Msg:  errs.DuplicatePermalink.Msg,
	}
	itemReferencedResult = ginx.Result{
		Code: errs.ItemReferenced.Code,
		Msg:  errs.ItemReferenced.Msg,
	}
	pageRedirectResult = ginx.Result{
		Code: errs.PageRedirect.Code,
		Msg:  errs.PageRedirect.Msg,
	}
)
