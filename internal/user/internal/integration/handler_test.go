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
	"net/http"
	"strconv"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/simplici7y/s7/internal/test"
	testioc "github.com/simplici7y/s7/internal/test/ioc"
	"github.com/simplici7y/s7/internal/user/internal/errs"
	"github.com/simplici7y/s7/internal/user/internal/integration/startup"
	"github.com/simplici7y/s7/internal/user/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
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
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) signup(username string) int64 {
	code, res := s.post(0, "/users/signup", web.SignupReq{
		Username:    username,
		DisplayName: username,
	})
	require.Equal(s.T(), 200, code)
	require.Equal(s.T(), 0, res.Code)
	id, ok := res.Data.(float64)
	require.True(s.T(), ok)
	return int64(id)
}

func (s *HandlerTestSuite) post(asUid int64, path string, body any) (int, test.Result[any]) {
	s.T().Helper()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	if asUid > 0 {
		req.Header.Set("x-uid", strconv.FormatInt(asUid, 10))
	}
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.MustScan()
}

func (s *HandlerTestSuite) TestSignup() {
	t := s.T()
	id := s.signup("durandal")
	assert.True(t, id > 0)

	// 用户名唯一
	code, res := s.post(0, "/users/signup", web.SignupReq{
		Username:    "durandal",
		DisplayName: "别人",
	})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.DuplicateUsername.Code, res.Code)
}

func (s *HandlerTestSuite) TestProfileAndEdit() {
	t := s.T()
	id := s.signup("tycho")

	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	req.Header.Set("x-uid", strconv.FormatInt(id, 10))
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	profile := recorder.MustScan()
	assert.Equal(t, "tycho", profile.Data.Username)

	code, res := s.post(id, "/users/profile", web.EditReq{DisplayName: "Tycho"})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)

	// 改的是展示名，username 不动
	code, detail := s.post(0, "/users/detail", web.DetailReq{Username: "tycho"})
	require.Equal(t, 200, code)
	require.Equal(t, 0, detail.Code)
	m, ok := detail.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Tycho", m["displayName"])
}

func (s *HandlerTestSuite) TestDetailNotFound() {
	t := s.T()
	code, res := s.post(0, "/users/detail", web.DetailReq{Username: "nobody"})
	require.Equal(t, 200, code)
	assert.Equal(t, errs.UserNotFound.Code, res.Code)
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	s.signup("alpha")
	bId := s.signup("beta")
	// 手动把 beta 的投稿数抬上去，目录按 items_count 降序
	err := s.db.Exec("UPDATE `users` SET `items_count` = 3 WHERE `id` = ?", bId).Error
	require.NoError(t, err)

	code, res := s.post(0, "/users/list", web.ListReq{Offset: 0, Limit: 10})
	require.Equal(t, 200, code)
	require.Equal(t, 0, res.Code)
	m, ok := res.Data.(map[string]any)
	require.True(t, ok)
	users, ok := m["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 2)
	first, ok := users[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "beta", first["username"])
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
