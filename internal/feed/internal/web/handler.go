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
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/simplici7y/s7/internal/item"
)

const contentType = "application/rss+xml; charset=utf-8"

type Handler struct {
	itemSvc   item.ItemService
	reviewSvc item.ReviewService
	// baseURL 订阅条目里链接的前缀
	baseURL string
	logger  *elog.Component
}

func NewHandler(itemSvc item.ItemService, reviewSvc item.ReviewService, baseURL string) *Handler {
	return &Handler{
		itemSvc:   itemSvc,
		reviewSvc: reviewSvc,
		baseURL:   baseURL,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	feeds := server.Group("/feeds")
	feeds.GET("/items", h.Items)
	feeds.GET("/reviews", h.Reviews)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

// Items 最近有版本更新的投稿
func (h *Handler) Items(ctx *gin.Context) {
	its, _, err := h.itemSvc.List(ctx, item.ItemQuery{}, 1)
	if err != nil {
		h.logger.Error("渲染 items 订阅失败", elog.FieldErr(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	h.render(ctx, rssChannel{
		Title:       "Simplici7y - Items",
		Link:        h.baseURL + "/items",
		Description: "最新更新的投稿",
		Items: slice.Map(its, func(idx int, src item.Item) rssItem {
			return rssItem{
				Title:       src.Name,
				Link:        fmt.Sprintf("%s/items/%s", h.baseURL, src.Permalink),
				Description: src.Body,
				Guid:        fmt.Sprintf("%s/items/%s", h.baseURL, src.Permalink),
				PubDate:     src.VersionCreatedAt.Format(time.RFC1123Z),
			}
		}),
	})
}

// Reviews 全站最新评论
func (h *Handler) Reviews(ctx *gin.Context) {
	rs, _, err := h.reviewSvc.List(ctx, 0, 1)
	if err != nil {
		h.logger.Error("渲染 reviews 订阅失败", elog.FieldErr(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}
	h.render(ctx, rssChannel{
		Title:       "Simplici7y - Reviews",
		Link:        h.baseURL + "/reviews",
		Description: "最新评论",
		Items: slice.Map(rs, func(idx int, src item.Review) rssItem {
			return rssItem{
				Title:       fmt.Sprintf("%s (%d/5)", src.Title, src.Rating),
				Link:        fmt.Sprintf("%s/reviews/%d", h.baseURL, src.Id),
				Description: src.Body,
				Guid:        fmt.Sprintf("%s/reviews/%d", h.baseURL, src.Id),
				PubDate:     src.Ctime.Format(time.RFC1123Z),
			}
		}),
	})
}

func (h *Handler) render(ctx *gin.Context, ch rssChannel) {
	data, err := xml.Marshal(rss{Version: "2.0", Channel: ch})
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	ctx.Data(http.StatusOK, contentType, append([]byte(xml.Header), data...))
}
