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

//go:build e2e

package integration

import (
	"context"
	"time"

	"github.com/simplici7y/s7/internal/item/internal/errs"
	"github.com/simplici7y/s7/internal/item/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *HandlerTestSuite) TestReviewRatingBounds() {
	t := s.T()
	id := s.createItem(uid, "Rated Map")
	vid := s.publishVersion(uid, id)

	for _, rating := range []int{0, 6, -1} {
		code, res := postReq[int64](t, s.server, otherUid, "/reviews/save", web.SaveReviewReq{
			VersionId: vid,
			Title:     "越界评分",
			Rating:    rating,
		})
		require.Equal(t, 200, code)
		assert.Equal(t, errs.InvalidInput.Code, res.Code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, it.ReviewsCount)

	// 边界值 1 和 5 都合法
	for _, rating := range []int{1, 5} {
		code, res := postReq[int64](t, s.server, otherUid, "/reviews/save", web.SaveReviewReq{
			VersionId: vid,
			Title:     "边界评分",
			Body:      "评论正文",
			Rating:    rating,
		})
		require.Equal(t, 200, code)
		require.Equal(t, 0, res.Code)
	}
	it, err = s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, it.ReviewsCount)
	// 平均 (1+5)/2，加权是总和
	assert.Equal(t, float64(3), it.RatingAverage)
	assert.Equal(t, 6, it.RatingWeighted)
	_, reviewsCount := s.userCounters(otherUid)
	assert.Equal(t, 2, reviewsCount)
}

func (s *HandlerTestSuite) TestReviewDelete() {
	t := s.T()
	id := s.createItem(uid, "Discussed Map")
	vid := s.publishVersion(uid, id)
	code, res := postReq[int64](t, s.server, otherUid, "/reviews/save", web.SaveReviewReq{
		VersionId: vid,
		Title:     "不错",
		Body:      "很好玩",
		Rating:    4,
	})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	rid := res.Data

	// 投稿所有者不能删别人的评论
	code, delRes := postReq[any](t, s.server, uid, "/reviews/delete", web.IdReq{Id: rid})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, delRes.Code)

	// 评论作者自己可以
	code, delRes = postReq[any](t, s.server, otherUid, "/reviews/delete", web.IdReq{Id: rid})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, delRes.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, it.ReviewsCount)
	assert.Equal(t, float64(0), it.RatingAverage)
	assert.Equal(t, 0, it.RatingWeighted)
	_, reviewsCount := s.userCounters(otherUid)
	assert.Equal(t, 0, reviewsCount)
}

func (s *HandlerTestSuite) TestReviewList() {
	t := s.T()
	id := s.createItem(uid, "Reviewed Map")
	vid := s.publishVersion(uid, id)
	for i := 1; i <= 3; i++ {
		code, res := postReq[int64](t, s.server, otherUid, "/reviews/save", web.SaveReviewReq{
			VersionId: vid,
			Title:     "评论",
			Body:      "正文",
			Rating:    i,
		})
		require.Equal(t, 200, code)
		require.Equal(t, 0, res.Code)
	}

	// 按 item 过滤，最新的在前
	code, res := postReq[web.ReviewsList](t, s.server, 0, "/reviews/list", web.ListReviewsReq{ItemId: id, Page: 1})
	require.Equal(t, 200, code)
	require.Equal(t, int64(3), res.Data.Total)
	assert.Equal(t, 3, res.Data.Reviews[0].Rating)

	// 页码越界
	code, outRes := postReq[any](t, s.server, 0, "/reviews/list", web.ListReviewsReq{ItemId: id, Page: 9})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PageRedirect.Code, outRes.Code)
}
