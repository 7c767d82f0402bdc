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

func (s *HandlerTestSuite) TestTagLifecycle() {
	t := s.T()

	// 普通用户建不了词表
	code, res := postReq[int64](t, s.server, uid, "/tags/save", web.SaveTagReq{Name: "Solo Play"})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, res.Code)

	code, res = postReq[int64](t, s.server, adminUid, "/tags/save", web.SaveTagReq{Name: "Solo Play"})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	tagId := res.Data

	itemId := s.createItem(uid, "Tagged Map")
	s.publishVersion(uid, itemId)

	// 路人打不了标签
	code, attachRes := postReq[any](t, s.server, otherUid, "/tags/attach", web.AttachTagReq{ItemId: itemId, TagId: tagId})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, attachRes.Code)

	code, attachRes = postReq[any](t, s.server, uid, "/tags/attach", web.AttachTagReq{ItemId: itemId, TagId: tagId})
	require.Equal(t, 200, code)
	require.Equal(t, 0, attachRes.Code)
	// 重复打同一个标签是幂等的
	code, attachRes = postReq[any](t, s.server, uid, "/tags/attach", web.AttachTagReq{ItemId: itemId, TagId: tagId})
	require.Equal(t, 200, code)
	require.Equal(t, 0, attachRes.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	tag, err := s.tagDAO.GetByPermalink(ctx, "solo-play")
	require.NoError(t, err)
	assert.Equal(t, 1, tag.Count)

	// 标签过滤目录
	code, listRes := postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Tag: "solo-play"})
	require.Equal(t, 200, code)
	require.Equal(t, int64(1), listRes.Data.Total)
	assert.Equal(t, "tagged-map", listRes.Data.Items[0].Permalink)

	// 不存在的标签给空目录
	code, listRes = postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Tag: "no-such-tag"})
	require.Equal(t, 200, code)
	assert.Equal(t, int64(0), listRes.Data.Total)

	code, detachRes := postReq[any](t, s.server, uid, "/tags/detach", web.AttachTagReq{ItemId: itemId, TagId: tagId})
	require.Equal(t, 200, code)
	require.Equal(t, 0, detachRes.Code)
	tag, err = s.tagDAO.GetByPermalink(ctx, "solo-play")
	require.NoError(t, err)
	assert.Equal(t, 0, tag.Count)
}

func (s *HandlerTestSuite) TestTagList() {
	t := s.T()
	for _, name := range []string{"Maps", "Physics", "Scenery"} {
		code, res := postReq[int64](t, s.server, adminUid, "/tags/save", web.SaveTagReq{Name: name})
		require.Equal(t, 200, code)
		require.Equal(t, 0, res.Code)
	}
	// 投稿时直接带标签，不认识的 permalink 跳过
	code, saveRes := postReq[int64](t, s.server, uid, "/items/save", web.SaveItemReq{
		Name: "Multi Tag Map",
		Body: "投稿简介",
		Tags: []string{"physics", "no-such-tag"},
	})
	require.Equal(t, 200, code)
	require.Equal(t, 0, saveRes.Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	tag, err := s.tagDAO.GetByPermalink(ctx, "physics")
	require.NoError(t, err)
	assert.Equal(t, 1, tag.Count)

	// 被引用多的排前面
	code, listRes := postReq[[]web.TagVO](t, s.server, 0, "/tags/list", web.ListTagsReq{})
	require.Equal(t, 200, code)
	require.Len(t, listRes.Data, 3)
	assert.Equal(t, "physics", listRes.Data[0].Permalink)
	assert.Equal(t, 1, listRes.Data[0].Count)
}
