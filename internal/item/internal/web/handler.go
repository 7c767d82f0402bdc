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

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.ItemService
	ssSvc service.ScreenshotService
}

func NewHandler(svc service.ItemService, ssSvc service.ScreenshotService) *Handler {
	return &Handler{svc: svc, ssSvc: ssSvc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	items := server.Group("/items")
	items.POST("/list", ginx.B[ListItemsReq](h.List))
	items.POST("/detail", ginx.B[IdReq](h.Detail))
	items.POST("/view", ginx.B[PermalinkReq](h.View))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	items := server.Group("/items")
	items.POST("/save", ginx.BS[SaveItemReq](h.Save))
	items.POST("/update", ginx.BS[UpdateItemReq](h.Update))
	items.POST("/delete", ginx.BS[IdReq](h.Delete))
	items.POST("/mine", ginx.BS[ListItemsReq](h.Mine))

	ss := server.Group("/screenshots")
	ss.POST("/save", ginx.BS[SaveScreenshotReq](h.SaveScreenshot))
	ss.POST("/delete", ginx.BS[IdReq](h.DeleteScreenshot))
}

func (h *Handler) List(ctx *ginx.Context, req ListItemsReq) (ginx.Result, error) {
	return h.list(ctx, domain.ItemQuery{
		Search: req.Search,
		Tag:    req.Tag,
		TcId:   req.TcId,
		Uid:    req.Uid,
		Order:  domain.ParseOrder(req.Order),
	}, req.Page)
}

// Mine 自己的投稿，没发版本的也一并列出来
func (h *Handler) Mine(ctx *ginx.Context, req ListItemsReq, sess session.Session) (ginx.Result, error) {
	return h.list(ctx, domain.ItemQuery{
		Search:            req.Search,
		Uid:               sess.Claims().Uid,
		IncludeUnreleased: true,
		Order:             domain.ParseOrder(req.Order),
	}, req.Page)
}

func (h *Handler) list(ctx *ginx.Context, q domain.ItemQuery, page int) (ginx.Result, error) {
	its, total, err := h.svc.List(ctx, q, page)
	if errors.Is(err, service.ErrPageOutOfRange) {
		return pageRedirectResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ItemsList{
			Total: total,
			Items: slice.Map(its, func(idx int, src domain.Item) ItemVO {
				return newItemVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	d, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrItemNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newItemDetailVO(d)}, nil
}

// View permalink 是对外的稳定地址
func (h *Handler) View(ctx *ginx.Context, req PermalinkReq) (ginx.Result, error) {
	d, err := h.svc.DetailByPermalink(ctx, req.Permalink)
	if errors.Is(err, service.ErrItemNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newItemDetailVO(d)}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveItemReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Item{
		Uid:     sess.Claims().Uid,
		Name:    req.Name,
		Body:    req.Body,
		Byline:  req.Byline,
		Topnote: req.Topnote,
		TcId:    req.TcId,
	}, req.Tags)
	switch {
	case errors.Is(err, service.ErrInvalidName), errors.Is(err, service.ErrInvalidTc):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrDuplicatePermalink):
		return duplicatePermalinkResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx, sess.Claims().Uid, domain.Item{
		Id:      req.Id,
		Name:    req.Name,
		Body:    req.Body,
		Byline:  req.Byline,
		Topnote: req.Topnote,
		TcId:    req.TcId,
	})
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrItemCycle), errors.Is(err, service.ErrInvalidTc):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrItemReferenced):
		return itemReferencedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SaveScreenshot(ctx *ginx.Context, req SaveScreenshotReq, sess session.Session) (ginx.Result, error) {
	id, err := h.ssSvc.Create(ctx, sess.Claims().Uid, domain.Screenshot{
		ItemId: req.ItemId,
		Title:  req.Title,
		File:   req.File,
	})
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) DeleteScreenshot(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.ssSvc.Delete(ctx, sess.Claims().Uid, req.Id)
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
