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

var _ ginx.Handler = &ReviewHandler{}

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) PublicRoutes(server *gin.Engine) {
	reviews := server.Group("/reviews")
	reviews.POST("/list", ginx.B[ListReviewsReq](h.List))
}

func (h *ReviewHandler) PrivateRoutes(server *gin.Engine) {
	reviews := server.Group("/reviews")
	reviews.POST("/save", ginx.BS[SaveReviewReq](h.Save))
	reviews.POST("/delete", ginx.BS[IdReq](h.Delete))
}

func (h *ReviewHandler) List(ctx *ginx.Context, req ListReviewsReq) (ginx.Result, error) {
	rs, total, err := h.svc.List(ctx, req.ItemId, req.Page)
	if errors.Is(err, service.ErrPageOutOfRange) {
		return pageRedirectResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReviewsList{
			Total: total,
			Reviews: slice.Map(rs, func(idx int, src domain.Review) ReviewVO {
				return newReviewVO(src)
			}),
		},
	}, nil
}

func (h *ReviewHandler) Save(ctx *ginx.Context, req SaveReviewReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Review{
		VersionId: req.VersionId,
		Uid:       sess.Claims().Uid,
		Title:     req.Title,
		Body:      req.Body,
		Rating:    req.Rating,
	})
	switch {
	case errors.Is(err, service.ErrInvalidRating):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrItemNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *ReviewHandler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
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
