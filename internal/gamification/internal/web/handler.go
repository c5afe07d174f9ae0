package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/nird-project/nird/internal/gamification/internal/domain"
	"github.com/nird-project/nird/internal/gamification/internal/service"
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

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/gamification")
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/points", ginx.BS[AddPointsReq](h.AddPoints))
	g.POST("/badges", ginx.BS[EarnBadgeReq](h.EarnBadge))
	g.POST("/leaderboard", ginx.B[LeaderboardReq](h.Leaderboard))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	profile, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	res := Profile{
		Name:          profile.Name,
		Role:          profile.Role,
		Establishment: profile.Establishment,
		Points:        profile.Points,
		Level:         profile.Level.String(),
		Badges: slice.Map(profile.Badges, func(idx int, src domain.EarnedBadge) Badge {
			return Badge{
				Key:      src.Key,
				Name:     src.Name,
				Icon:     src.Icon,
				EarnedAt: src.EarnedAt,
			}
		}),
	}
	if profile.Next != nil {
		res.NextLevel = &NextLevel{
			Level:        profile.Next.Level.String(),
			Threshold:    profile.Next.Threshold,
			PointsNeeded: profile.Next.PointsNeeded,
		}
	}
	return ginx.Result{
		Data: res,
	}, nil
}

func (h *Handler) AddPoints(ctx *ginx.Context, req AddPointsReq, sess session.Session) (ginx.Result, error) {
	if req.Points == 0 {
		return invalidInputResult, nil
	}
	total, level, err := h.svc.AddPoints(ctx, sess.Claims().Uid, domain.PointsLog{
		Biz:    "manual",
		Action: req.Action,
		Change: req.Points,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AddPointsResult{
			Points: total,
			Level:  level.String(),
			Action: req.Action,
		},
	}, nil
}

func (h *Handler) EarnBadge(ctx *ginx.Context, req EarnBadgeReq, sess session.Session) (ginx.Result, error) {
	badge, total, level, err := h.svc.EarnBadge(ctx, sess.Claims().Uid, req.BadgeKey)
	switch {
	case errors.Is(err, service.ErrUnknownBadge):
		return unknownBadgeResult, nil
	case errors.Is(err, service.ErrBadgeAlreadyEarned):
		return badgeAlreadyEarnedResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: EarnBadgeResult{
				Badge: Badge{
					Key:  badge.Key,
					Name: badge.Name,
					Icon: badge.Icon,
				},
				TotalPoints: total,
				Level:       level.String(),
			},
		}, nil
	}
}

func (h *Handler) Leaderboard(ctx *ginx.Context, req LeaderboardReq) (ginx.Result, error) {
	if req.Limit < 0 || req.Limit > 100 {
		return invalidInputResult, nil
	}
	entries, err := h.svc.Leaderboard(ctx, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Leaderboard{
			Total: len(entries),
			Entries: slice.Map(entries, func(idx int, src domain.LeaderboardEntry) LeaderboardEntry {
				return LeaderboardEntry{
					Rank:          src.Rank,
					Name:          src.Name,
					Establishment: src.Establishment,
					Points:        src.Points,
					Level:         src.Level.String(),
					BadgesCount:   src.BadgeCnt,
				}
			}),
		},
	}, nil
}
