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
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/nird-project/nird/internal/solution/internal/integration/startup"
	"github.com/nird-project/nird/internal/solution/internal/repository/dao"
	"github.com/nird-project/nird/internal/solution/internal/web"
	"github.com/nird-project/nird/internal/test"
	testioc "github.com/nird-project/nird/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(4081)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.SolutionDAO
	role   string
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": s.role},
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMSolutionDAO(s.db)
	s.role = "teacher"
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `solutions`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `solutions`").Error
	require.NoError(s.T(), err)
	s.role = "teacher"
}

func (s *HandlerTestSuite) seed() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	rows := []dao.Solution{
		{
			Id: 1, Name: "Linux Mint", Category: "os",
			Cost: "free", Difficulty: 3, Rating: 4.5,
			Advantages: sqlx.JsonColumn[[]string]{Valid: true, Val: []string{"léger"}},
			Comparison: sqlx.JsonColumn[dao.Comparison]{
				Valid: true,
				Val:   dao.Comparison{CostPerDevice: 0, CO2Impact: 0.01, MaintenanceTime: 2},
			},
		},
		{
			Id: 2, Name: "LibreOffice", Category: "office",
			Cost: "free", Difficulty: 1, Rating: 4.8,
			Comparison: sqlx.JsonColumn[dao.Comparison]{
				Valid: true,
				Val:   dao.Comparison{CostPerDevice: 0, CO2Impact: 0.005, MaintenanceTime: 1},
			},
		},
		{
			Id: 3, Name: "Nextcloud Pro", Category: "storage",
			Cost: "freemium", Difficulty: 4, Rating: 4.2,
		},
	}
	for _, row := range rows {
		require.NoError(s.T(), s.db.WithContext(ctx).Create(&row).Error)
	}
}

func (s *HandlerTestSuite) TestList() {
	s.seed()
	testCases := []struct {
		name      string
		req       web.ListReq
		wantNames []string
		wantBiz   int
	}{
		{
			// 评分高的在前
			name:      "不带筛选",
			req:       web.ListReq{},
			wantNames: []string{"LibreOffice", "Linux Mint", "Nextcloud Pro"},
		},
		{
			name:      "按分类",
			req:       web.ListReq{Category: "os"},
			wantNames: []string{"Linux Mint"},
		},
		{
			name:      "按难度上限",
			req:       web.ListReq{MaxDifficulty: 3},
			wantNames: []string{"LibreOffice", "Linux Mint"},
		},
		{
			name:      "按费用",
			req:       web.ListReq{Cost: "freemium"},
			wantNames: []string{"Nextcloud Pro"},
		},
		{
			name:    "非法分类",
			req:     web.ListReq{Category: "games"},
			wantBiz: 503002,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/solution/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.SolutionList]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			if tc.wantBiz != 0 {
				return
			}
			require.Equal(t, len(tc.wantNames), res.Data.Total)
			for idx, name := range tc.wantNames {
				assert.Equal(t, name, res.Data.Solutions[idx].Name)
			}
		})
	}
}

func (s *HandlerTestSuite) TestDetail() {
	s.seed()
	// 上一轮测试可能留下缓存
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := testioc.InitCache().Delete(ctx, "solution:detail:1")
	require.NoError(s.T(), err)
	testCases := []struct {
		name    string
		id      int64
		wantBiz int
	}{
		{name: "存在", id: 1},
		{name: "不存在", id: 999, wantBiz: 503003},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/solution/detail", iox.NewJSONReader(web.DetailReq{Id: tc.id}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Solution]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			if tc.wantBiz == 0 {
				assert.Equal(t, "Linux Mint", res.Data.Name)
				assert.Equal(t, []string{"léger"}, res.Data.Advantages)
			}
		})
	}
}

func (s *HandlerTestSuite) TestCompare() {
	s.seed()
	testCases := []struct {
		name    string
		req     web.CompareReq
		wantBiz int
		wantLen int
	}{
		{
			name:    "两个方案",
			req:     web.CompareReq{SolutionIds: []int64{1, 2}},
			wantLen: 2,
		},
		{
			name:    "只有一个",
			req:     web.CompareReq{SolutionIds: []int64{1}},
			wantBiz: 503002,
		},
		{
			name:    "一个都没有",
			req:     web.CompareReq{},
			wantBiz: 503002,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/solution/compare", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[[]web.ComparisonRow]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			if tc.wantBiz == 0 {
				require.Len(t, res.Data, tc.wantLen)
				assert.Equal(t, "Linux Mint", res.Data[0].Name)
				assert.InDelta(t, 0.01, res.Data[0].CO2Impact, 0.0001)
			}
		})
	}
}

func (s *HandlerTestSuite) TestSave() {
	testCases := []struct {
		name    string
		role    string
		req     web.SaveReq
		wantBiz int
		after   func(t *testing.T)
	}{
		{
			name: "教师可以保存",
			role: "teacher",
			req: web.SaveReq{Solution: web.Solution{
				Name:     "GIMP",
				Category: "multimedia",
				Metrics:  web.Metrics{Cost: "free", Difficulty: 2, Rating: 4.1},
			}},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				ss, err := s.dao.List(ctx, "multimedia", 0, "")
				require.NoError(t, err)
				require.Len(t, ss, 1)
				assert.Equal(t, "GIMP", ss[0].Name)
				assert.True(t, ss[0].Ctime > 0)
			},
		},
		{
			name: "学生不允许",
			role: "student",
			req: web.SaveReq{Solution: web.Solution{
				Name:     "GIMP",
				Category: "multimedia",
				Metrics:  web.Metrics{Cost: "free", Difficulty: 2},
			}},
			wantBiz: 503004,
			after:   func(t *testing.T) {},
		},
		{
			name: "非法分类",
			role: "head",
			req: web.SaveReq{Solution: web.Solution{
				Name:     "GIMP",
				Category: "games",
				Metrics:  web.Metrics{Cost: "free", Difficulty: 2},
			}},
			wantBiz: 503002,
			after:   func(t *testing.T) {},
		},
		{
			name: "难度越界",
			role: "head",
			req: web.SaveReq{Solution: web.Solution{
				Name:     "GIMP",
				Category: "multimedia",
				Metrics:  web.Metrics{Cost: "free", Difficulty: 6},
			}},
			wantBiz: 503002,
			after:   func(t *testing.T) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			s.role = tc.role
			req, err := http.NewRequest(http.MethodPost,
				"/solution/save", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `solutions`").Error
			require.NoError(t, err)
		})
	}
}

func TestSolutionHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
