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
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
	"github.com/simplici7y/s7/internal/item/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *HandlerTestSuite) TestPublishValidation() {
	t := s.T()
	id := s.createItem(uid, "Empty Release")

	// file 和 link 都没有
	code, res := postReq[int64](t, s.server, uid, "/versions/publish", web.PublishVersionReq{
		ItemId: id,
		Name:   "1.0",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.InvalidInput.Code, res.Code)

	// 路人发不了
	code, res = postReq[int64](t, s.server, otherUid, "/versions/publish", web.PublishVersionReq{
		ItemId: id,
		Name:   "1.0",
		Link:   "https://files.example.com/a.zip",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, res.Code)

	// 只有 file 也行
	code, res = postReq[int64](t, s.server, uid, "/versions/publish", web.PublishVersionReq{
		ItemId: id,
		Name:   "1.0",
		File:   "versions/abc123",
	})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	assert.True(t, res.Data > 0)
}

func (s *HandlerTestSuite) TestVersionCreatedAtFollowsLatest() {
	t := s.T()
	id := s.createItem(uid, "Versioned Map")
	v1 := s.publishVersion(uid, id)
	time.Sleep(time.Millisecond * 10)
	v2 := s.publishVersion(uid, id)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	ver2, err := s.verDAO.GetById(ctx, v2)
	require.NoError(t, err)
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	require.True(t, it.VersionCreatedAt.Valid)
	assert.Equal(t, ver2.Ctime, it.VersionCreatedAt.Int64)

	// 删掉最新版本，回落到剩下的最大时间
	code, res := postReq[any](t, s.server, uid, "/versions/delete", web.IdReq{Id: v2})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	ver1, err := s.verDAO.GetById(ctx, v1)
	require.NoError(t, err)
	it, err = s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	require.True(t, it.VersionCreatedAt.Valid)
	assert.Equal(t, ver1.Ctime, it.VersionCreatedAt.Int64)

	// 一个不剩就回到未发布
	code, res = postReq[any](t, s.server, uid, "/versions/delete", web.IdReq{Id: v1})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	it, err = s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.False(t, it.VersionCreatedAt.Valid)
}

func (s *HandlerTestSuite) TestDownloadCounters() {
	t := s.T()
	id := s.createItem(uid, "Popular Map")
	vid := s.publishVersion(uid, id)

	// 匿名下载
	code, res := postReq[int64](t, s.server, 0, "/versions/download", web.IdReq{Id: vid})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	anonDl := res.Data

	// 登录下载
	code, res = postReq[int64](t, s.server, otherUid, "/versions/download", web.IdReq{Id: vid})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	v, err := s.verDAO.GetById(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, 2, v.DownloadsCount)
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, it.DownloadsCount)

	var dls []dao.Download
	err = s.db.WithContext(ctx).Where("version_id = ?", vid).Order("id ASC").Find(&dls).Error
	require.NoError(t, err)
	require.Len(t, dls, 2)
	assert.False(t, dls[0].Uid.Valid)
	require.True(t, dls[1].Uid.Valid)
	assert.Equal(t, int64(otherUid), dls[1].Uid.Int64)

	// 普通用户清不掉下载记录
	code, delRes := postReq[any](t, s.server, uid, "/downloads/delete", web.IdReq{Id: anonDl})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, delRes.Code)

	// 管理员可以，两级计数一起回退
	code, delRes = postReq[any](t, s.server, adminUid, "/downloads/delete", web.IdReq{Id: anonDl})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, delRes.Code)
	v, err = s.verDAO.GetById(ctx, vid)
	require.NoError(t, err)
	assert.Equal(t, 1, v.DownloadsCount)
	it, err = s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, it.DownloadsCount)
}

func (s *HandlerTestSuite) TestVersionDeleteCascadesDownloads() {
	t := s.T()
	id := s.createItem(uid, "Cascade Map")
	vid := s.publishVersion(uid, id)
	for i := 0; i < 3; i++ {
		code, res := postReq[int64](t, s.server, 0, "/versions/download", web.IdReq{Id: vid})
		require.Equal(t, 200, code)
		require.Equal(t, 0, res.Code)
	}

	code, res := postReq[any](t, s.server, uid, "/versions/delete", web.IdReq{Id: vid})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, it.DownloadsCount)
	var cnt int64
	err = s.db.WithContext(ctx).Model(&dao.Download{}).Where("version_id = ?", vid).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}
