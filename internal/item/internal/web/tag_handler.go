// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/service"
)

var _ ginx.Handler = &TagHandler{}

type TagHandler struct {
	svc service.TagService
}

func NewTagHandler(svc service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

func (h *TagHandler) PublicRoutes(server *gin.Engine) {
	tags := server.Group("/tags")
	tags.POST("/list", ginx.B[ListTagsReq](h.List))
}

func (h *TagHandler) PrivateRoutes(server *gin.Engine) {
	tags := server.Group("/tags")
	tags.POST("/save", ginx.BS[SaveTagReq](h.Save))
	tags.POST("/attach", ginx.BS[AttachTagReq](h.Attach))
	tags.POST("/detach", ginx.BS[AttachTagReq](h.Detach))
}

func (h *TagHandler) List(ctx *ginx.Context, req ListTagsReq) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = service.PageSize
	}
	ts, err := h.svc.List(ctx, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ts, func(idx int, src domain.Tag) TagVO {
			return newTagVO(src)
		}),
	}, nil
}

func (h *TagHandler) Save(ctx *ginx.Context, req SaveTagReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, sess.Claims().Uid, domain.Tag{Name: req.Name})
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrInvalidName), errors.Is(err, service.ErrDuplicateTag):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *TagHandler) Attach(ctx *ginx.Context, req AttachTagReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Attach(ctx, sess.Claims().Uid, req.ItemId, req.TagId)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *TagHandler) Detach(ctx *ginx.Context, req AttachTagReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Detach(ctx, sess.Claims().Uid, req.ItemId, req.TagId)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
