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
	"time"

	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/nird-project/nird/internal/forum/internal/event"
	"github.com/nird-project/nird/internal/forum/internal/integration/startup"
	"github.com/nird-project/nird/internal/forum/internal/repository/dao"
	"github.com/nird-project/nird/internal/forum/internal/web"
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
	dao    dao.ForumDAO

	// uid 当前请求的登录用户，各个用例自己切换
	uid    int64
	author user.User
	other  user.User
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()
	s.dao = dao.NewGORMForumDAO(s.db)

	userSvc := user.InitService(s.db, testioc.InitCache())
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	s.author, err = userSvc.Signup(ctx, user.User{
		Name:     "Marie Curie",
		Email:    "marie@lycee-pasteur.fr",
		Password: "hello#world123",
		Role:     "teacher",
		Establishment: user.Establishment{
			Name: "Lycée Pasteur",
			Type: "high",
			City: "Lille",
		},
	})
	require.NoError(s.T(), err)
	s.other, err = userSvc.Signup(ctx, user.User{
		Name:     "Paul Martin",
		Email:    "paul@college-hugo.fr",
		Password: "hello#world123",
		Role:     "student",
	})
	require.NoError(s.T(), err)
	s.uid = s.author.Id

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"posts", "comments", "user_likes"} {
		require.NoError(s.T(), s.db.Exec("DROP TABLE `"+table+"`").Error)
	}
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `users`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"posts", "comments", "user_likes"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *HandlerTestSuite) TestCreatePost() {
	s.uid = s.author.Id
	req, err := http.NewRequest(http.MethodPost,
		"/forum/create", iox.NewJSONReader(web.CreatePostReq{
			Title:    "Migration Linux réussie",
			Content:  "Retour d'expérience après six mois.",
			Category: "success-story",
			Tags:     []string{"linux", "migration"},
			Metrics: web.Metrics{
				ComputersSaved: 15,
				MoneySaved:     5000,
				CO2Reduced:     1.2,
			},
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(s.T(), id > 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	saved, err := s.dao.FindPostById(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.author.Id, saved.Uid)
	assert.Equal(s.T(), "Migration Linux réussie", saved.Title)
	assert.Equal(s.T(), "success-story", saved.Category)
	assert.Equal(s.T(), []string{"linux", "migration"}, saved.Tags.Val)
	assert.Equal(s.T(), int64(5000), saved.Metrics.Val.MoneySaved)
	assert.False(s.T(), saved.Pinned)
	assert.True(s.T(), saved.Ctime > 0)

	// 发帖加分事件
	consumer, err := testioc.InitMQ().Consumer(event.PointsEventName, "test-forum-post")
	require.NoError(s.T(), err)
	defer consumer.Close()
	msgCtx, msgCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer msgCancel()
	msg, err := consumer.Consume(msgCtx)
	require.NoError(s.T(), err)
	var evt event.PointsEvent
	require.NoError(s.T(), json.Unmarshal(msg.Value, &evt))
	assert.Equal(s.T(), s.author.Id, evt.Uid)
	assert.Equal(s.T(), uint64(30), evt.Points)
	assert.Equal(s.T(), "forum", evt.Biz)
}

func (s *HandlerTestSuite) TestCreatePostInvalid() {
	s.uid = s.author.Id
	testCases := []struct {
		name string
		req  web.CreatePostReq
	}{
		{
			name: "空标题",
			req:  web.CreatePostReq{Content: "内容", Category: "help"},
		},
		{
			name: "空内容",
			req:  web.CreatePostReq{Title: "标题", Category: "help"},
		},
		{
			name: "非法分类",
			req:  web.CreatePostReq{Title: "标题", Content: "内容", Category: "gossip"},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/forum/create", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, 504002, recorder.MustScan().Code)
		})
	}
}

func (s *HandlerTestSuite) TestListPosts() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// 一条旧的置顶公告，两条普通帖
	_, err := s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.other.Id,
		Title:    "Règles du forum",
		Content:  "Bienvenue à tous.",
		Category: "announcement",
		Pinned:   true,
		Ctime:    100,
		Utime:    100,
	})
	require.NoError(s.T(), err)
	_, err = s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.author.Id,
		Title:    "Besoin d'aide LibreOffice",
		Content:  "Comment convertir mes fichiers docx ?",
		Category: "help",
		Tags:     sqlx.JsonColumn[[]string]{Val: []string{"libreoffice"}, Valid: true},
		Ctime:    200,
		Utime:    200,
	})
	require.NoError(s.T(), err)
	_, err = s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.author.Id,
		Title:    "Tutoriel Nextcloud",
		Content:  "Installation pas à pas.",
		Category: "tutorial",
		Tags:     sqlx.JsonColumn[[]string]{Val: []string{"nextcloud", "stockage"}, Valid: true},
		Ctime:    300,
		Utime:    300,
	})
	require.NoError(s.T(), err)

	testCases := []struct {
		name   string
		req    web.ListReq
		total  int
		first  string
		code   int
	}{
		{
			name:  "全部帖子置顶在前",
			req:   web.ListReq{},
			total: 3,
			first: "Règles du forum",
		},
		{
			name:  "按分类过滤",
			req:   web.ListReq{Category: "help"},
			total: 1,
			first: "Besoin d'aide LibreOffice",
		},
		{
			name:  "按标签过滤",
			req:   web.ListReq{Tags: []string{"nextcloud"}},
			total: 1,
			first: "Tutoriel Nextcloud",
		},
		{
			name:  "关键字搜索",
			req:   web.ListReq{Keyword: "docx"},
			total: 1,
			first: "Besoin d'aide LibreOffice",
		},
		{
			name: "非法分类",
			req:  web.ListReq{Category: "gossip"},
			code: 504002,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/forum/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.PostList]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			if tc.code != 0 {
				assert.Equal(t, tc.code, res.Code)
				return
			}
			require.Equal(t, tc.total, res.Data.Total)
			assert.Equal(t, tc.first, res.Data.Posts[0].Title)
		})
	}

	// 作者信息回填
	req, err := http.NewRequest(http.MethodPost,
		"/forum/list", iox.NewJSONReader(web.ListReq{Category: "tutorial"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PostList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	posts := recorder.MustScan().Data.Posts
	require.Len(s.T(), posts, 1)
	assert.Equal(s.T(), "Marie Curie", posts[0].Author.Name)
	assert.Equal(s.T(), "teacher", posts[0].Author.Role)
	assert.Equal(s.T(), "Lycée Pasteur", posts[0].Author.Establishment)
}

func (s *HandlerTestSuite) TestDetail() {
	s.uid = s.author.Id
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	postId, err := s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.other.Id,
		Title:    "Tutoriel GIMP",
		Content:  "Les bases de la retouche.",
		Category: "tutorial",
	})
	require.NoError(s.T(), err)
	_, err = s.dao.InsertComment(ctx, dao.Comment{
		PostId:  postId,
		Uid:     s.author.Id,
		Content: "Très utile, merci !",
	})
	require.NoError(s.T(), err)
	_, err = s.dao.LikeToggle(ctx, postId, s.author.Id)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/forum/detail", iox.NewJSONReader(web.DetailReq{Id: postId}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PostDetail]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(s.T(), "Tutoriel GIMP", res.Data.Post.Title)
	assert.Equal(s.T(), "Paul Martin", res.Data.Post.Author.Name)
	assert.Equal(s.T(), int64(1), res.Data.Post.LikeCnt)
	assert.Equal(s.T(), int64(1), res.Data.Post.CommentCnt)
	assert.True(s.T(), res.Data.Liked)
	require.Len(s.T(), res.Data.Comments, 1)
	assert.Equal(s.T(), "Marie Curie", res.Data.Comments[0].Author.Name)

	// 不存在的帖子
	req, err = http.NewRequest(http.MethodPost,
		"/forum/detail", iox.NewJSONReader(web.DetailReq{Id: postId + 100}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.PostDetail]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 504003, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestUpdatePost() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	postId, err := s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.author.Id,
		Title:    "Titre initial",
		Content:  "Contenu initial",
		Category: "help",
	})
	require.NoError(s.T(), err)

	// 作者本人可以改
	s.uid = s.author.Id
	req, err := http.NewRequest(http.MethodPost,
		"/forum/update", iox.NewJSONReader(web.UpdatePostReq{
			Id:       postId,
			Title:    "Titre corrigé",
			Content:  "Contenu corrigé",
			Category: "tutorial",
			Tags:     []string{"maj"},
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), 0, recorder.MustScan().Code)
	saved, err := s.dao.FindPostById(ctx, postId)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Titre corrigé", saved.Title)
	assert.Equal(s.T(), "tutorial", saved.Category)
	assert.Equal(s.T(), []string{"maj"}, saved.Tags.Val)

	// 别人不行
	s.uid = s.other.Id
	req, err = http.NewRequest(http.MethodPost,
		"/forum/update", iox.NewJSONReader(web.UpdatePostReq{
			Id:       postId,
			Title:    "Piratage",
			Content:  "Piratage",
			Category: "help",
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 504004, recorder.MustScan().Code)

	// 不存在的帖子
	s.uid = s.author.Id
	req, err = http.NewRequest(http.MethodPost,
		"/forum/update", iox.NewJSONReader(web.UpdatePostReq{
			Id:       postId + 100,
			Title:    "X",
			Content:  "X",
			Category: "help",
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 504003, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestDeletePost() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	postId, err := s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.author.Id,
		Title:    "À supprimer",
		Content:  "Contenu",
		Category: "help",
	})
	require.NoError(s.T(), err)
	_, err = s.dao.InsertComment(ctx, dao.Comment{
		PostId:  postId,
		Uid:     s.other.Id,
		Content: "Un commentaire",
	})
	require.NoError(s.T(), err)
	_, err = s.dao.LikeToggle(ctx, postId, s.other.Id)
	require.NoError(s.T(), err)

	// 别人删不掉
	s.uid = s.other.Id
	req, err := http.NewRequest(http.MethodPost,
		"/forum/delete", iox.NewJSONReader(web.DeletePostReq{Id: postId}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 504004, recorder.MustScan().Code)

	// 作者删，连评论和点赞一起没了
	s.uid = s.author.Id
	req, err = http.NewRequest(http.MethodPost,
		"/forum/delete", iox.NewJSONReader(web.DeletePostReq{Id: postId}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), 0, recorder.MustScan().Code)

	_, err = s.dao.FindPostById(ctx, postId)
	assert.ErrorIs(s.T(), err, dao.ErrDataNotFound)
	comments, err := s.dao.FindCommentsByPostId(ctx, postId)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), comments)
	liked, err := s.dao.Liked(ctx, postId, s.other.Id)
	require.NoError(s.T(), err)
	assert.False(s.T(), liked)
}

func (s *HandlerTestSuite) TestLike() {
	s.uid = s.author.Id
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	postId, err := s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.other.Id,
		Title:    "Un post",
		Content:  "Contenu",
		Category: "help",
	})
	require.NoError(s.T(), err)

	like := func() web.LikeResult {
		req, err := http.NewRequest(http.MethodPost,
			"/forum/like", iox.NewJSONReader(web.LikeReq{Id: postId}))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.LikeResult]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), 200, recorder.Code)
		return recorder.MustScan().Data
	}

	res := like()
	assert.True(s.T(), res.Liked)
	assert.Equal(s.T(), int64(1), res.LikeCnt)

	// 再点一次取消
	res = like()
	assert.False(s.T(), res.Liked)
	assert.Equal(s.T(), int64(0), res.LikeCnt)

	// 不存在的帖子
	req, err := http.NewRequest(http.MethodPost,
		"/forum/like", iox.NewJSONReader(web.LikeReq{Id: postId + 100}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.LikeResult]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 504003, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestComment() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	postId, err := s.dao.InsertPost(ctx, dao.Post{
		Uid:      s.author.Id,
		Title:    "Un post",
		Content:  "Contenu",
		Category: "help",
	})
	require.NoError(s.T(), err)

	// 评论
	s.uid = s.other.Id
	req, err := http.NewRequest(http.MethodPost,
		"/forum/comment/create", iox.NewJSONReader(web.CreateCommentReq{
			PostId:  postId,
			Content: "Bonne question !",
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	commentId := recorder.MustScan().Data
	require.True(s.T(), commentId > 0)
	post, err := s.dao.FindPostById(ctx, postId)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), post.CommentCnt)

	// 评论加分事件
	consumer, err := testioc.InitMQ().Consumer(event.PointsEventName, "test-forum-comment")
	require.NoError(s.T(), err)
	defer consumer.Close()
	msgCtx, msgCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer msgCancel()
	msg, err := consumer.Consume(msgCtx)
	require.NoError(s.T(), err)
	var evt event.PointsEvent
	require.NoError(s.T(), json.Unmarshal(msg.Value, &evt))
	assert.Equal(s.T(), s.other.Id, evt.Uid)
	assert.Equal(s.T(), uint64(10), evt.Points)

	// 空内容
	req, err = http.NewRequest(http.MethodPost,
		"/forum/comment/create", iox.NewJSONReader(web.CreateCommentReq{PostId: postId}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 504002, recorder.MustScan().Code)

	// 评论不存在的帖子
	req, err = http.NewRequest(http.MethodPost,
		"/forum/comment/create", iox.NewJSONReader(web.CreateCommentReq{
			PostId:  postId + 100,
			Content: "x",
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 504003, recorder.MustScan().Code)

	// 别人删不掉评论
	s.uid = s.author.Id
	req, err = http.NewRequest(http.MethodPost,
		"/forum/comment/delete", iox.NewJSONReader(web.DeleteCommentReq{Id: commentId}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	del := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(del, req)
	require.Equal(s.T(), 200, del.Code)
	assert.Equal(s.T(), 504004, del.MustScan().Code)

	// 作者删评论，计数器回落
	s.uid = s.other.Id
	req, err = http.NewRequest(http.MethodPost,
		"/forum/comment/delete", iox.NewJSONReader(web.DeleteCommentReq{Id: commentId}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	del = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(del, req)
	require.Equal(s.T(), 200, del.Code)
	require.Equal(s.T(), 0, del.MustScan().Code)
	post, err = s.dao.FindPostById(ctx, postId)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), post.CommentCnt)

	// 删不存在的评论
	req, err = http.NewRequest(http.MethodPost,
		"/forum/comment/delete", iox.NewJSONReader(web.DeleteCommentReq{Id: commentId + 100}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	del = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(del, req)
	require.Equal(s.T(), 200, del.Code)
	assert.Equal(s.T(), 504005, del.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
