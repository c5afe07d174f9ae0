package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/nird-project/nird/internal/forum/internal/domain"
	"github.com/nird-project/nird/internal/forum/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/forum")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/forum")
	g.POST("/create", ginx.BS[CreatePostReq](h.CreatePost))
	g.POST("/update", ginx.BS[UpdatePostReq](h.UpdatePost))
	g.POST("/delete", ginx.BS[DeletePostReq](h.DeletePost))
	g.POST("/like", ginx.BS[LikeReq](h.Like))
	g.POST("/comment/create", ginx.BS[CreateCommentReq](h.CreateComment))
	g.POST("/comment/delete", ginx.BS[DeleteCommentReq](h.DeleteComment))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	category := domain.Category(req.Category)
	if req.Category != "" && !category.Valid() {
		return invalidInputResult, nil
	}
	posts, err := h.svc.ListPosts(ctx, category, req.Tags, req.Keyword)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostList{
			Total: len(posts),
			Posts: slice.Map(posts, func(idx int, src domain.Post) Post {
				return h.toPostVO(src)
			}),
		},
	}, nil
}

// Detail 是公开接口，但登录用户能看到自己的点赞状态
func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	var uid int64
	if sess, err := session.Get(ctx); err == nil {
		uid = sess.Claims().Uid
	}
	detail, err := h.svc.Detail(ctx, req.Id, uid)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: PostDetail{
				Post: h.toPostVO(detail.Post),
				Comments: slice.Map(detail.Comments, func(idx int, src domain.Comment) Comment {
					return h.toCommentVO(src)
				}),
				Liked: detail.Liked,
			},
		}, nil
	}
}

func (h *Handler) CreatePost(ctx *ginx.Context, req CreatePostReq, sess session.Session) (ginx.Result, error) {
	category := domain.Category(req.Category)
	if req.Title == "" || req.Content == "" || !category.Valid() {
		return invalidInputResult, nil
	}
	post, err := h.svc.CreatePost(ctx, domain.Post{
		Author:   domain.Author{Id: sess.Claims().Uid},
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Tags:     req.Tags,
		Metrics: domain.Metrics{
			ComputersSaved: req.Metrics.ComputersSaved,
			MoneySaved:     req.Metrics.MoneySaved,
			CO2Reduced:     req.Metrics.CO2Reduced,
		},
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: post.Id,
	}, nil
}

func (h *Handler) UpdatePost(ctx *ginx.Context, req UpdatePostReq, sess session.Session) (ginx.Result, error) {
	category := domain.Category(req.Category)
	if req.Title == "" || req.Content == "" || !category.Valid() {
		return invalidInputResult, nil
	}
	err := h.svc.UpdatePost(ctx, sess.Claims().Uid, domain.Post{
		Id:       req.Id,
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Tags:     req.Tags,
		Metrics: domain.Metrics{
			ComputersSaved: req.Metrics.ComputersSaved,
			MoneySaved:     req.Metrics.MoneySaved,
			CO2Reduced:     req.Metrics.CO2Reduced,
		},
	})
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case errors.Is(err, service.ErrNotAuthor):
		return notAuthorResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{}, nil
	}
}

func (h *Handler) DeletePost(ctx *ginx.Context, req DeletePostReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeletePost(ctx, sess.Claims().Uid, req.Id)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case errors.Is(err, service.ErrNotAuthor):
		return notAuthorResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{}, nil
	}
}

func (h *Handler) Like(ctx *ginx.Context, req LikeReq, sess session.Session) (ginx.Result, error) {
	liked, likeCnt, err := h.svc.LikeToggle(ctx, sess.Claims().Uid, req.Id)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: LikeResult{
				Liked:   liked,
				LikeCnt: likeCnt,
			},
		}, nil
	}
}

func (h *Handler) CreateComment(ctx *ginx.Context, req CreateCommentReq, sess session.Session) (ginx.Result, error) {
	if req.Content == "" {
		return invalidInputResult, nil
	}
	c, err := h.svc.AddComment(ctx, domain.Comment{
		PostId:  req.PostId,
		Author:  domain.Author{Id: sess.Claims().Uid},
		Content: req.Content,
	})
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: c.Id,
		}, nil
	}
}

func (h *Handler) DeleteComment(ctx *ginx.Context, req DeleteCommentReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteComment(ctx, sess.Claims().Uid, req.Id)
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		return commentNotFoundResult, nil
	case errors.Is(err, service.ErrNotAuthor):
		return notAuthorResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{}, nil
	}
}

func (h *Handler) toPostVO(p domain.Post) Post {
	return Post{
		Id: p.Id,
		Author: Author{
			Id:            p.Author.Id,
			Name:          p.Author.Name,
			Role:          p.Author.Role,
			Establishment: p.Author.Establishment,
		},
		Title:    p.Title,
		Content:  p.Content,
		Category: string(p.Category),
		Tags:     p.Tags,
		Pinned:   p.Pinned,
		Metrics: Metrics{
			ComputersSaved: p.Metrics.ComputersSaved,
			MoneySaved:     p.Metrics.MoneySaved,
			CO2Reduced:     p.Metrics.CO2Reduced,
		},
		LikeCnt:    p.LikeCnt,
		CommentCnt: p.CommentCnt,
		Ctime:      p.Ctime,
		Utime:      p.Utime,
	}
}

func (h *Handler) toCommentVO(c domain.Comment) Comment {
	return Comment{
		Id:     c.Id,
		PostId: c.PostId,
		Author: Author{
			Id:            c.Author.Id,
			Name:          c.Author.Name,
			Role:          c.Author.Role,
			Establishment: c.Author.Establishment,
		},
		Content: c.Content,
		Ctime:   c.Ctime,
	}
}
