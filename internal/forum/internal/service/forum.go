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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/nird-project/nird/internal/forum/internal/domain"
	"github.com/nird-project/nird/internal/forum/internal/event"
	"github.com/nird-project/nird/internal/forum/internal/repository"
	"github.com/nird-project/nird/internal/user"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPostNotFound    = errors.New("帖子不存在")
	ErrCommentNotFound = errors.New("评论不存在")
	// ErrNotAuthor 修改和删除只有作者本人可以
	ErrNotAuthor = errors.New("不是作者本人")
)

const (
	postPoints    = 30
	commentPoints = 10
)

//go:generate mockgen -source=./forum.go -package=svcmocks -destination=mocks/forum.mock.go Service
type Service interface {
	ListPosts(ctx context.Context, category domain.Category, tags []string, keyword string) ([]domain.Post, error)
	// Detail uid 为 0 表示未登录，点赞状态按未点赞返回
	Detail(ctx context.Context, postId, uid int64) (domain.PostDetail, error)
	CreatePost(ctx context.Context, p domain.Post) (domain.Post, error)
	UpdatePost(ctx context.Context, uid int64, p domain.Post) error
	DeletePost(ctx context.Context, uid, postId int64) error
	LikeToggle(ctx context.Context, uid, postId int64) (bool, int64, error)
	AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error)
	DeleteComment(ctx context.Context, uid, commentId int64) error
}

type forumService struct {
	repo     repository.ForumRepository
	userSvc  user.UserService
	producer event.PointsEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ForumRepository,
	userSvc user.UserService,
	producer event.PointsEventProducer) Service {
	return &forumService{
		repo:     repo,
		userSvc:  userSvc,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *forumService) ListPosts(ctx context.Context,
	category domain.Category, tags []string, keyword string) ([]domain.Post, error) {
	posts, err := s.repo.ListPosts(ctx, category, tags, keyword)
	if err != nil {
		return nil, err
	}
	err = s.fillPostAuthors(ctx, posts)
	return posts, err
}

func (s *forumService) Detail(ctx context.Context, postId, uid int64) (domain.PostDetail, error) {
	var (
		eg       errgroup.Group
		post     domain.Post
		comments []domain.Comment
		liked    bool
	)
	eg.Go(func() error {
		var err error
		post, err = s.repo.FindPostById(ctx, postId)
		if errors.Is(err, repository.ErrDataNotFound) {
			return ErrPostNotFound
		}
		return err
	})
	eg.Go(func() error {
		var err error
		comments, err = s.repo.FindCommentsByPostId(ctx, postId)
		return err
	})
	eg.Go(func() error {
		if uid == 0 {
			return nil
		}
		var err error
		liked, err = s.repo.Liked(ctx, postId, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.PostDetail{}, err
	}

	posts := []domain.Post{post}
	if err := s.fillAuthors(ctx, posts, comments); err != nil {
		return domain.PostDetail{}, err
	}
	return domain.PostDetail{
		Post:     posts[0],
		Comments: comments,
		Liked:    liked,
	}, nil
}

func (s *forumService) CreatePost(ctx context.Context, p domain.Post) (domain.Post, error) {
	id, err := s.repo.CreatePost(ctx, p)
	if err != nil {
		return domain.Post{}, err
	}
	p.Id = id
	s.award(ctx, event.PointsEvent{
		Key:    fmt.Sprintf("post-%d", id),
		Uid:    p.Author.Id,
		Points: postPoints,
		Biz:    "forum",
		BizId:  id,
		Action: "发布帖子",
	})
	return p, nil
}

func (s *forumService) UpdatePost(ctx context.Context, uid int64, p domain.Post) error {
	cur, err := s.repo.FindPostById(ctx, p.Id)
	if errors.Is(err, repository.ErrDataNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if cur.Author.Id != uid {
		return ErrNotAuthor
	}
	return s.repo.UpdatePost(ctx, p)
}

func (s *forumService) DeletePost(ctx context.Context, uid, postId int64) error {
	cur, err := s.repo.FindPostById(ctx, postId)
	if errors.Is(err, repository.ErrDataNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if cur.Author.Id != uid {
		return ErrNotAuthor
	}
	return s.repo.DeletePost(ctx, postId)
}

func (s *forumService) LikeToggle(ctx context.Context, uid, postId int64) (bool, int64, error) {
	_, err := s.repo.FindPostById(ctx, postId)
	if errors.Is(err, repository.ErrDataNotFound) {
		return false, 0, ErrPostNotFound
	}
	if err != nil {
		return false, 0, err
	}
	liked, err := s.repo.LikeToggle(ctx, postId, uid)
	if err != nil {
		return false, 0, err
	}
	post, err := s.repo.FindPostById(ctx, postId)
	if err != nil {
		return false, 0, err
	}
	return liked, post.LikeCnt, nil
}

func (s *forumService) AddComment(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	_, err := s.repo.FindPostById(ctx, c.PostId)
	if errors.Is(err, repository.ErrDataNotFound) {
		return domain.Comment{}, ErrPostNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	id, err := s.repo.CreateComment(ctx, c)
	if err != nil {
		return domain.Comment{}, err
	}
	c.Id = id
	s.award(ctx, event.PointsEvent{
		Key:    fmt.Sprintf("comment-%d", id),
		Uid:    c.Author.Id,
		Points: commentPoints,
		Biz:    "forum",
		BizId:  id,
		Action: "发表评论",
	})
	return c, nil
}

func (s *forumService) DeleteComment(ctx context.Context, uid, commentId int64) error {
	c, err := s.repo.FindCommentById(ctx, commentId)
	if errors.Is(err, repository.ErrDataNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return err
	}
	if c.Author.Id != uid {
		return ErrNotAuthor
	}
	return s.repo.DeleteComment(ctx, commentId)
}

// award 加分和落库不在一个事务里，失败只记日志
func (s *forumService) award(ctx context.Context, evt event.PointsEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送加分事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *forumService) fillPostAuthors(ctx context.Context, posts []domain.Post) error {
	return s.fillAuthors(ctx, posts, nil)
}

// fillAuthors 把作者的展示信息一次性查出来回填
func (s *forumService) fillAuthors(ctx context.Context, posts []domain.Post, comments []domain.Comment) error {
	uids := make([]int64, 0, len(posts)+len(comments))
	for _, p := range posts {
		uids = append(uids, p.Author.Id)
	}
	for _, c := range comments {
		uids = append(uids, c.Author.Id)
	}
	if len(uids) == 0 {
		return nil
	}
	users, err := s.userSvc.FindByIds(ctx, uids)
	if err != nil {
		return err
	}
	byId := slice.ToMap(users, func(u user.User) int64 {
		return u.Id
	})
	for i := range posts {
		if u, ok := byId[posts[i].Author.Id]; ok {
			posts[i].Author = s.toAuthor(u)
		}
	}
	for i := range comments {
		if u, ok := byId[comments[i].Author.Id]; ok {
			comments[i].Author = s.toAuthor(u)
		}
	}
	return nil
}

func (s *forumService) toAuthor(u user.User) domain.Author {
	return domain.Author{
		Id:            u.Id,
		Name:          u.Name,
		Role:          u.Role.String(),
		Establishment: u.Establishment.Name,
	}
}
