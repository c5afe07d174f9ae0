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
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/nird-project/nird/internal/gamification/internal/event"
	"github.com/nird-project/nird/internal/gamification/internal/integration/startup"
	"github.com/nird-project/nird/internal/gamification/internal/repository/dao"
	"github.com/nird-project/nird/internal/gamification/internal/web"
	"github.com/nird-project/nird/internal/test"
	testioc "github.com/nird-project/nird/internal/test/ioc"
	"github.com/nird-project/nird/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.GamificationDAO

	uid   int64
	alice user.User
	bob   user.User
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMGamificationDAO(s.db)

	userSvc := user.InitService(s.db, testioc.InitCache())
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	s.alice, err = userSvc.Signup(ctx, user.User{
		Name:     "Alice Bernard",
		Email:    "alice@ecole-jaures.fr",
		Password: "hello#world123",
		Role:     "teacher",
		Establishment: user.Establishment{
			Name: "École Jean Jaurès",
			Type: "primary",
			City: "Nantes",
		},
	})
	require.NoError(s.T(), err)
	s.bob, err = userSvc.Signup(ctx, user.User{
		Name:     "Bob Moreau",
		Email:    "bob@ecole-jaures.fr",
		Password: "hello#world123",
		Role:     "student",
	})
	require.NoError(s.T(), err)
	s.uid = s.alice.Id

	// 消费其他模块的加分事件
	module.C.Start(context.Background())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"profiles", "points_logs", "user_badges"} {
		require.NoError(s.T(), s.db.Exec("DROP TABLE `"+table+"`").Error)
	}
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `users`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"profiles", "points_logs", "user_badges"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *HandlerTestSuite) TestProfileFresh() {
	s.uid = s.alice.Id
	req, err := http.NewRequest(http.MethodPost, "/gamification/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(s.T(), "Alice Bernard", res.Data.Name)
	assert.Equal(s.T(), "École Jean Jaurès", res.Data.Establishment)
	assert.Equal(s.T(), uint64(0), res.Data.Points)
	assert.Equal(s.T(), "apprentice", res.Data.Level)
	assert.Empty(s.T(), res.Data.Badges)
	require.NotNil(s.T(), res.Data.NextLevel)
	assert.Equal(s.T(), "warrior", res.Data.NextLevel.Level)
	assert.Equal(s.T(), uint64(100), res.Data.NextLevel.PointsNeeded)
}

func (s *HandlerTestSuite) TestAddPoints() {
	s.uid = s.alice.Id
	add := func(points uint64) web.AddPointsResult {
		req, err := http.NewRequest(http.MethodPost,
			"/gamification/points", iox.NewJSONReader(web.AddPointsReq{
				Points: points,
				Action: "Présentation NIRD",
			}))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.AddPointsResult]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), 200, recorder.Code)
		return recorder.MustScan().Data
	}

	res := add(60)
	assert.Equal(s.T(), uint64(60), res.Points)
	assert.Equal(s.T(), "apprentice", res.Level)

	// 跨过 100 分门槛升级
	res = add(60)
	assert.Equal(s.T(), uint64(120), res.Points)
	assert.Equal(s.T(), "warrior", res.Level)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p, err := s.dao.FindProfileByUid(ctx, s.alice.Id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uint64(120), p.Points)

	// 零分是非法输入
	req, err := http.NewRequest(http.MethodPost,
		"/gamification/points", iox.NewJSONReader(web.AddPointsReq{Points: 0}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.AddPointsResult]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 505002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestEarnBadge() {
	s.uid = s.alice.Id
	earn := func(key string) test.Result[web.EarnBadgeResult] {
		req, err := http.NewRequest(http.MethodPost,
			"/gamification/badges", iox.NewJSONReader(web.EarnBadgeReq{BadgeKey: key}))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.EarnBadgeResult]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), 200, recorder.Code)
		return recorder.MustScan()
	}

	res := earn("pingouin")
	require.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), "Pingouin d'Or", res.Data.Badge.Name)
	assert.Equal(s.T(), uint64(100), res.Data.TotalPoints)
	assert.Equal(s.T(), "warrior", res.Data.Level)

	// 重复领取报错，积分也不会重复加
	res = earn("pingouin")
	assert.Equal(s.T(), 505004, res.Code)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	p, err := s.dao.FindProfileByUid(ctx, s.alice.Id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uint64(100), p.Points)

	// 不存在的徽章
	res = earn("licorne")
	assert.Equal(s.T(), 505003, res.Code)

	// 个人主页里能看到徽章
	req, err := http.NewRequest(http.MethodPost, "/gamification/profile", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	profile := recorder.MustScan().Data
	require.Len(s.T(), profile.Badges, 1)
	assert.Equal(s.T(), "pingouin", profile.Badges[0].Key)
	assert.True(s.T(), profile.Badges[0].EarnedAt > 0)
}

func (s *HandlerTestSuite) TestLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// alice 200 分一个徽章，bob 也是 200 分，uid 小的排前面
	_, err := s.dao.AddPoints(ctx, dao.PointsLog{
		Key: "seed-alice", Uid: s.alice.Id, Change: 200,
	})
	require.NoError(s.T(), err)
	_, err = s.dao.AddPoints(ctx, dao.PointsLog{
		Key: "seed-bob", Uid: s.bob.Id, Change: 200,
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.dao.InsertBadge(ctx, dao.UserBadge{
		Uid:      s.alice.Id,
		BadgeKey: "eclaireur",
		Name:     "Éclaireur",
	}))
	// 上一个用例可能留下了缓存
	_, err = testioc.InitCache().Delete(ctx, "gamification:leaderboard")
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/gamification/leaderboard", iox.NewJSONReader(web.LeaderboardReq{Limit: 10}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Leaderboard]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan().Data
	require.Equal(s.T(), 2, res.Total)
	assert.Equal(s.T(), 1, res.Entries[0].Rank)
	assert.Equal(s.T(), "Alice Bernard", res.Entries[0].Name)
	assert.Equal(s.T(), "École Jean Jaurès", res.Entries[0].Establishment)
	assert.Equal(s.T(), uint64(200), res.Entries[0].Points)
	assert.Equal(s.T(), "warrior", res.Entries[0].Level)
	assert.Equal(s.T(), 1, res.Entries[0].BadgesCount)
	assert.Equal(s.T(), "Bob Moreau", res.Entries[1].Name)
	assert.Equal(s.T(), 0, res.Entries[1].BadgesCount)

	// 超出上限的 limit 直接拒绝
	req, err = http.NewRequest(http.MethodPost,
		"/gamification/leaderboard", iox.NewJSONReader(web.LeaderboardReq{Limit: 1000}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Leaderboard]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 505002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestPointsEventConsumed() {
	// 别的模块发一条加分事件，消费者落库
	producer, err := testioc.InitMQ().Producer(event.PointsEventName)
	require.NoError(s.T(), err)
	evt := event.PointsEvent{
		Key:    "evt-diag-1",
		Uid:    s.bob.Id,
		Points: 50,
		Biz:    "diagnostic",
		Action: "提交诊断",
	}
	data, err := json.Marshal(evt)
	require.NoError(s.T(), err)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err = producer.Produce(ctx, &mq.Message{Value: data})
	require.NoError(s.T(), err)

	require.Eventually(s.T(), func() bool {
		findCtx, findCancel := context.WithTimeout(context.Background(), time.Second)
		defer findCancel()
		p, err := s.dao.FindProfileByUid(findCtx, s.bob.Id)
		return err == nil && p.Points == 50
	}, 3*time.Second, 100*time.Millisecond)

	// 同一个 key 重投不会重复加分
	_, err = producer.Produce(ctx, &mq.Message{Value: data})
	require.NoError(s.T(), err)
	time.Sleep(500 * time.Millisecond)
	findCtx, findCancel := context.WithTimeout(context.Background(), time.Second)
	defer findCancel()
	p, err := s.dao.FindProfileByUid(findCtx, s.bob.Id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), uint64(50), p.Points)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
