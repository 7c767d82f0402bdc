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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/service"
)

var _ ginx.Handler = &VersionHandler{}

type VersionHandler struct {
	svc service.VersionService
}

func NewVersionHandler(svc service.VersionService) *VersionHandler {
	return &VersionHandler{svc: svc}
}

func (h *VersionHandler) PublicRoutes(server *gin.Engine) {
	versions := server.Group("/versions")
	// 下载不要求登录，登录了就记在账上
	versions.POST("/download", ginx.B[IdReq](h.Download))
}

func (h *VersionHandler) PrivateRoutes(server *gin.Engine) {
	versions := server.Group("/versions")
	versions.POST("/publish", ginx.BS[PublishVersionReq](h.Publish))
	versions.POST("/delete", ginx.BS[IdReq](h.Delete))

	dls := server.Group("/downloads")
	dls.POST("/delete", ginx.BS[IdReq](h.DeleteDownload))
}

func (h *VersionHandler) Publish(ctx *ginx.Context, req PublishVersionReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Publish(ctx, sess.Claims().Uid, domain.Version{
		ItemId: req.ItemId,
		Name:   req.Name,
		Body:   req.Body,
		File:   req.File,
		Link:   req.Link,
	})
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrPermissionDenied):
		return permissionDeniedResult, nil
	case errors.Is(err, service.ErrVersionUndownloadable):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *VersionHandler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
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

func (h *VersionHandler) Download(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	var uid int64
	// 拿不到会话就当匿名
	if sess, err := session.Get(ctx); err == nil {
		uid = sess.Claims().Uid
	}
	id, err := h.svc.Download(ctx, req.Id, uid)
	if errors.Is(err, service.ErrItemNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *VersionHandler) DeleteDownload(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteDownload(ctx, sess.Claims().Uid, req.Id)
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
