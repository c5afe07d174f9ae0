package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/nird-project/nird/internal/forum/internal/domain"
	"github.com/nird-project/nird/internal/forum/internal/repository/dao"
)

var ErrDataNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./post.go -package=repomocks -destination=mocks/post.mock.go ForumRepository
type ForumRepository interface {
	CreatePost(ctx context.Context, p domain.Post) (int64, error)
	UpdatePost(ctx context.Context, p domain.Post) error
	DeletePost(ctx context.Context, id int64) error
	FindPostById(ctx context.Context, id int64) (domain.Post, error)
	ListPosts(ctx context.Context, category domain.Category, tags []string, keyword string) ([]domain.Post, error)

	CreateComment(ctx context.Context, c domain.Comment) (int64, error)
	DeleteComment(ctx context.Context, id int64) error
	FindCommentById(ctx context.Context, id int64) (domain.Comment, error)
	FindCommentsByPostId(ctx context.Context, postId int64) ([]domain.Comment, error)

	LikeToggle(ctx context.Context, postId, uid int64) (bool, error)
	Liked(ctx context.Context, postId, uid int64) (bool, error)
}

type forumRepository struct {
	dao dao.ForumDAO
}

func NewForumRepository(d dao.ForumDAO) ForumRepository {
	return &forumRepository{
		dao: d,
	}
}

func (r *forumRepository) CreatePost(ctx context.Context, p domain.Post) (int64, error) {
	return r.dao.InsertPost(ctx, r.postToEntity(p))
}

func (r *forumRepository) UpdatePost(ctx context.Context, p domain.Post) error {
	return r.dao.UpdatePost(ctx, r.postToEntity(p))
}

func (r *forumRepository) DeletePost(ctx context.Context, id int64) error {
	return r.dao.DeletePost(ctx, id)
}

func (r *forumRepository) FindPostById(ctx context.Context, id int64) (domain.Post, error) {
	p, err := r.dao.FindPostById(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	return r.postToDomain(p), nil
}

func (r *forumRepository) ListPosts(ctx context.Context,
	category domain.Category, tags []string, keyword string) ([]domain.Post, error) {
	ps, err := r.dao.ListPosts(ctx, string(category), tags, keyword)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Post) domain.Post {
		return r.postToDomain(src)
	}), nil
}

func (r *forumRepository) CreateComment(ctx context.Context, c domain.Comment) (int64, error) {
	return r.dao.InsertComment(ctx, dao.Comment{
		PostId:  c.PostId,
		Uid:     c.Author.Id,
		Content: c.Content,
	})
}

func (r *forumRepository) DeleteComment(ctx context.Context, id int64) error {
	return r.dao.DeleteComment(ctx, id)
}

func (r *forumRepository) FindCommentById(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.dao.FindCommentById(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.commentToDomain(c), nil
}

func (r *forumRepository) FindCommentsByPostId(ctx context.Context, postId int64) ([]domain.Comment, error) {
	cs, err := r.dao.FindCommentsByPostId(ctx, postId)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Comment) domain.Comment {
		return r.commentToDomain(src)
	}), nil
}

func (r *forumRepository) LikeToggle(ctx context.Context, postId, uid int64) (bool, error) {
	return r.dao.LikeToggle(ctx, postId, uid)
}

func (r *forumRepository) Liked(ctx context.Context, postId, uid int64) (bool, error) {
	return r.dao.Liked(ctx, postId, uid)
}

func (r *forumRepository) postToEntity(p domain.Post) dao.Post {
	return dao.Post{
		Id:       p.Id,
		Uid:      p.Author.Id,
		Title:    p.Title,
		Content:  p.Content,
		Category: string(p.Category),
		Tags:     sqlx.JsonColumn[[]string]{Valid: true, Val: p.Tags},
		Pinned:   p.Pinned,
		Metrics: sqlx.JsonColumn[dao.Metrics]{
			Valid: true,
			Val: dao.Metrics{
				ComputersSaved: p.Metrics.ComputersSaved,
				MoneySaved:     p.Metrics.MoneySaved,
				CO2Reduced:     p.Metrics.CO2Reduced,
			},
		},
	}
}

func (r *forumRepository) postToDomain(p dao.Post) domain.Post {
	return domain.Post{
		Id:       p.Id,
		Author:   domain.Author{Id: p.Uid},
		Title:    p.Title,
		Content:  p.Content,
		Category: domain.Category(p.Category),
		Tags:     p.Tags.Val,
		Pinned:   p.Pinned,
		Metrics: domain.Metrics{
			ComputersSaved: p.Metrics.Val.ComputersSaved,
			MoneySaved:     p.Metrics.Val.MoneySaved,
			CO2Reduced:     p.Metrics.Val.CO2Reduced,
		},
		LikeCnt:    p.LikeCnt,
		CommentCnt: p.CommentCnt,
		Ctime:      p.Ctime,
		Utime:      p.Utime,
	}
}

func (r *forumRepository) commentToDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		Id:      c.Id,
		PostId:  c.PostId,
		Author:  domain.Author{Id: c.Uid},
		Content: c.Content,
		Ctime:   c.Ctime,
	}
}
