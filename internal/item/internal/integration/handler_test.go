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
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/simplici7y/s7/internal/item/internal/errs"
	"github.com/simplici7y/s7/internal/item/internal/integration/startup"
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
	"github.com/simplici7y/s7/internal/item/internal/web"
	"github.com/simplici7y/s7/internal/test"
	testioc "github.com/simplici7y/s7/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	// 普通用户，投稿的所有者
	uid = 123
	// 另一个普通用户
	otherUid = 456
	// 管理员
	adminUid = 789
)

type HandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	db      *egorm.Component
	itemDAO dao.ItemDAO
	verDAO  dao.VersionDAO
	tagDAO  dao.TagDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	// 带 x-uid 头就算登录，不带就是匿名
	server.Use(func(ctx *gin.Context) {
		uidStr := ctx.GetHeader("x-uid")
		if uidStr == "" {
			return
		}
		u, er := strconv.ParseInt(uidStr, 10, 64)
		if er != nil {
			return
		}
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: u}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.VerHdl.PublicRoutes(server.Engine)
	module.ReviewHdl.PublicRoutes(server.Engine)
	module.TagHdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	module.VerHdl.PrivateRoutes(server.Engine)
	module.ReviewHdl.PrivateRoutes(server.Engine)
	module.TagHdl.PrivateRoutes(server.Engine)

	s.server = server
	s.db = testioc.InitDB()
	s.itemDAO = dao.NewGORMItemDAO(s.db)
	s.verDAO = dao.NewGORMVersionDAO(s.db)
	s.tagDAO = dao.NewGORMTagDAO(s.db)
}

func (s *HandlerTestSuite) SetupTest() {
	s.createUser(uid, "owner", false)
	s.createUser(otherUid, "bystander", false)
	s.createUser(adminUid, "admin", true)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"items", "versions", "downloads", "reviews",
		"screenshots", "tags", "item_tags", "users",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) createUser(id int64, username string, admin bool) {
	err := s.db.Exec(
		"INSERT INTO `users`(`id`,`username`,`display_name`,`admin`,`items_count`,`reviews_count`,`ctime`,`utime`) VALUES(?,?,?,?,0,0,123,123)",
		id, username, username, admin).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) createItem(asUid int64, name string) int64 {
	code, res := postReq[int64](s.T(), s.server, asUid, "/items/save", web.SaveItemReq{
		Name: name,
		Body: "投稿简介",
	})
	require.Equal(s.T(), 200, code)
	require.Equal(s.T(), 0, res.Code)
	require.True(s.T(), res.Data > 0)
	return res.Data
}

func (s *HandlerTestSuite) publishVersion(asUid, itemId int64) int64 {
	code, res := postReq[int64](s.T(), s.server, asUid, "/versions/publish", web.PublishVersionReq{
		ItemId: itemId,
		Name:   "1.0",
		Body:   "发布说明",
		Link:   "https://files.example.com/a.zip",
	})
	require.Equal(s.T(), 200, code)
	require.Equal(s.T(), 0, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) userCounters(id int64) (itemsCount, reviewsCount int) {
	var res struct {
		ItemsCount   int
		ReviewsCount int
	}
	err := s.db.Table("users").Where("id = ?", id).
		Select("items_count", "reviews_count").Scan(&res).Error
	require.NoError(s.T(), err)
	return res.ItemsCount, res.ReviewsCount
}

func postReq[T any](t *testing.T, server *egin.Component, asUid int64, path string, body any) (int, test.Result[T]) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	if asUid > 0 {
		req.Header.Set("x-uid", strconv.FormatInt(asUid, 10))
	}
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.MustScan()
}

func (s *HandlerTestSuite) TestSave() {
	t := s.T()
	id := s.createItem(uid, "Marathon Rubicon")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "marathon-rubicon", it.Permalink)
	assert.Equal(t, int64(uid), it.Uid)
	assert.False(t, it.VersionCreatedAt.Valid)
	itemsCount, _ := s.userCounters(uid)
	assert.Equal(t, 1, itemsCount)

	// 同名投稿切出同一个 permalink，撞唯一索引
	code, res := postReq[int64](t, s.server, otherUid, "/items/save", web.SaveItemReq{
		Name: "Marathon Rubicon",
		Body: "另一个",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.DuplicatePermalink.Code, res.Code)

	// 切不出 permalink 的名字
	code, res = postReq[int64](t, s.server, uid, "/items/save", web.SaveItemReq{
		Name: "???",
		Body: "名字全是标点",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.InvalidInput.Code, res.Code)
}

func (s *HandlerTestSuite) TestUpdateKeepsPermalink() {
	t := s.T()
	id := s.createItem(uid, "Cool Map")
	code, res := postReq[any](t, s.server, uid, "/items/update", web.UpdateItemReq{
		Id:   id,
		Name: "Very Cool Map",
		Body: "改了名字",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, res.Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Very Cool Map", it.Name)
	// 建号后 permalink 不再变
	assert.Equal(t, "cool-map", it.Permalink)
}

func (s *HandlerTestSuite) TestUpdatePermission() {
	t := s.T()
	id := s.createItem(uid, "Guarded Map")

	// 路人改不了
	code, res := postReq[any](t, s.server, otherUid, "/items/update", web.UpdateItemReq{
		Id:   id,
		Name: "Hijacked",
		Body: "x",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, res.Code)

	// 管理员可以
	code, res = postReq[any](t, s.server, adminUid, "/items/update", web.UpdateItemReq{
		Id:   id,
		Name: "Moderated",
		Body: "x",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, res.Code)
}

func (s *HandlerTestSuite) TestDeletePermissionAndCounters() {
	t := s.T()
	id := s.createItem(uid, "Doomed Map")
	s.publishVersion(uid, id)

	// 路人删不掉，什么都不会变
	code, res := postReq[any](t, s.server, otherUid, "/items/delete", web.IdReq{Id: id})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, res.Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	_, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	itemsCount, _ := s.userCounters(uid)
	assert.Equal(t, 1, itemsCount)

	// 所有者删掉，计数回退
	code, res = postReq[any](t, s.server, uid, "/items/delete", web.IdReq{Id: id})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, res.Code)
	_, err = s.itemDAO.GetById(ctx, id)
	assert.ErrorIs(t, err, dao.ErrDataNotFound)
	itemsCount, _ = s.userCounters(uid)
	assert.Equal(t, 0, itemsCount)
	// 版本也一起没了
	vs, err := s.verDAO.ListByItem(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func (s *HandlerTestSuite) TestDeleteReferencedTc() {
	t := s.T()
	tcId := s.createItem(uid, "Big Conversion")
	childId := s.createItem(uid, "Child Map")
	code, res := postReq[any](t, s.server, uid, "/items/update", web.UpdateItemReq{
		Id:   childId,
		Name: "Child Map",
		Body: "投稿简介",
		TcId: tcId,
	})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)

	// 还有子项引用着，删不掉
	code, res = postReq[any](t, s.server, uid, "/items/delete", web.IdReq{Id: tcId})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.ItemReferenced.Code, res.Code)

	// 解开引用之后就可以了
	code, res = postReq[any](t, s.server, uid, "/items/update", web.UpdateItemReq{
		Id:   childId,
		Name: "Child Map",
		Body: "投稿简介",
	})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	code, res = postReq[any](t, s.server, uid, "/items/delete", web.IdReq{Id: tcId})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, res.Code)
}

func (s *HandlerTestSuite) TestTcCycle() {
	t := s.T()
	aId := s.createItem(uid, "Pack A")
	bId := s.createItem(uid, "Pack B")
	code, res := postReq[any](t, s.server, uid, "/items/update", web.UpdateItemReq{
		Id:   aId,
		Name: "Pack A",
		Body: "投稿简介",
		TcId: bId,
	})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)

	// B 再指回 A 就成环了
	code, res = postReq[any](t, s.server, uid, "/items/update", web.UpdateItemReq{
		Id:   bId,
		Name: "Pack B",
		Body: "投稿简介",
		TcId: aId,
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.InvalidInput.Code, res.Code)
}

func (s *HandlerTestSuite) TestCatalogHidesUnreleased() {
	t := s.T()
	id := s.createItem(uid, "Work In Progress")

	// 没发版本，公开目录看不到
	code, res := postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1})
	require.Equal(t, 200, code)
	assert.Equal(t, int64(0), res.Data.Total)

	// 作者自己能看到
	code, res = postReq[web.ItemsList](t, s.server, uid, "/items/mine", web.ListItemsReq{Page: 1})
	require.Equal(t, 200, code)
	assert.Equal(t, int64(1), res.Data.Total)

	// 发了版本就进目录
	s.publishVersion(uid, id)
	code, res = postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1})
	require.Equal(t, 200, code)
	require.Equal(t, int64(1), res.Data.Total)
	assert.Equal(t, "work-in-progress", res.Data.Items[0].Permalink)
}

func (s *HandlerTestSuite) TestCatalogOrders() {
	t := s.T()
	oldId := s.createItem(uid, "Old Faithful")
	s.publishVersion(uid, oldId)
	time.Sleep(time.Millisecond * 10)
	newId := s.createItem(uid, "New Hotness")
	s.publishVersion(uid, newId)

	// 默认按最新版本时间
	code, res := postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1})
	require.Equal(t, 200, code)
	require.Equal(t, int64(2), res.Data.Total)
	assert.Equal(t, "new-hotness", res.Data.Items[0].Permalink)

	code, res = postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Order: "old"})
	require.Equal(t, 200, code)
	assert.Equal(t, "old-faithful", res.Data.Items[0].Permalink)

	// 不认识的 key 回落到默认排序
	code, res = postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Order: "worst"})
	require.Equal(t, 200, code)
	assert.Equal(t, "new-hotness", res.Data.Items[0].Permalink)

	// 给老投稿灌两次下载，popular 就把它顶上去
	vs, err := s.verDAO.ListByItem(context.Background(), oldId)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	for i := 0; i < 2; i++ {
		code, dlRes := postReq[int64](t, s.server, 0, "/versions/download", web.IdReq{Id: vs[0].Id})
		require.Equal(t, 200, code)
		require.Equal(t, 0, dlRes.Code)
	}
	code, res = postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Order: "popular"})
	require.Equal(t, 200, code)
	assert.Equal(t, "old-faithful", res.Data.Items[0].Permalink)
	code, res = postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Order: "unpopular"})
	require.Equal(t, 200, code)
	assert.Equal(t, "new-hotness", res.Data.Items[0].Permalink)
}

func (s *HandlerTestSuite) TestCatalogSearch() {
	t := s.T()
	aId := s.createItem(uid, "Rubicon Saga")
	s.publishVersion(uid, aId)
	bId := s.createItem(uid, "Quiet Lava")
	s.publishVersion(uid, bId)

	// 大小写不敏感的子串匹配
	code, res := postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Search: "RUBI"})
	require.Equal(t, 200, code)
	require.Equal(t, int64(1), res.Data.Total)
	assert.Equal(t, "rubicon-saga", res.Data.Items[0].Permalink)
}

func (s *HandlerTestSuite) TestCatalogPageOutOfRange() {
	t := s.T()
	id := s.createItem(uid, "Lonely Map")
	s.publishVersion(uid, id)

	code, res := postReq[any](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 5})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PageRedirect.Code, res.Code)

	// 空目录的第一页不算越界
	code, listRes := postReq[web.ItemsList](t, s.server, 0, "/items/list", web.ListItemsReq{Page: 1, Search: "不存在"})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, listRes.Code)
	assert.Equal(t, int64(0), listRes.Data.Total)
}

func (s *HandlerTestSuite) TestDetailByPermalink() {
	t := s.T()
	id := s.createItem(uid, "Detail Map")
	s.publishVersion(uid, id)

	code, res := postReq[web.ItemDetailVO](t, s.server, 0, "/items/view", web.PermalinkReq{Permalink: "detail-map"})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	assert.Equal(t, id, res.Data.Item.Id)
	assert.Len(t, res.Data.Versions, 1)

	code, notFound := postReq[any](t, s.server, 0, "/items/view", web.PermalinkReq{Permalink: "no-such-map"})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.NotFound.Code, notFound.Code)
}

func (s *HandlerTestSuite) TestScreenshots() {
	t := s.T()
	id := s.createItem(uid, "Pretty Map")

	// 路人传不了
	code, res := postReq[int64](t, s.server, otherUid, "/screenshots/save", web.SaveScreenshotReq{
		ItemId: id,
		Title:  "全景",
		File:   "screenshots/abc",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.PermissionDenied.Code, res.Code)

	code, res = postReq[int64](t, s.server, uid, "/screenshots/save", web.SaveScreenshotReq{
		ItemId: id,
		Title:  "全景",
		File:   "screenshots/abc",
	})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	it, err := s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, it.ScreenshotsCount)

	code, delRes := postReq[any](t, s.server, uid, "/screenshots/delete", web.IdReq{Id: res.Data})
	require.Equal(t, 200, code)
	assert.Equal(t, 0, delRes.Code)
	it, err = s.itemDAO.GetById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, it.ScreenshotsCount)
}

func TestItemHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
