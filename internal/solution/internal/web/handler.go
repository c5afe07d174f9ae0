package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/nird-project/nird/internal/solution/internal/domain"
	"github.com/nird-project/nird/internal/solution/internal/service"
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
	g := server.Group("/solution")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[DetailReq](h.Detail))
	g.POST("/compare", ginx.B[CompareReq](h.Compare))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/solution")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	category := domain.Category(req.Category)
	cost := domain.Cost(req.Cost)
	if req.Category != "" && !category.Valid() {
		return invalidInputResult, nil
	}
	if req.Cost != "" && !cost.Valid() {
		return invalidInputResult, nil
	}
	ss, err := h.svc.List(ctx, category, req.MaxDifficulty, cost)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SolutionList{
			Total: len(ss),
			Solutions: slice.Map(ss, func(idx int, src domain.Solution) Solution {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrSolutionNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(s),
	}, nil
}

func (h *Handler) Compare(ctx *ginx.Context, req CompareReq) (ginx.Result, error) {
	// 至少两个才有对比的意义
	if len(req.SolutionIds) < 2 {
		return invalidInputResult, nil
	}
	rows, err := h.svc.Compare(ctx, req.SolutionIds)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(rows, func(idx int, src domain.ComparisonRow) ComparisonRow {
			return ComparisonRow{
				Id:              src.Id,
				Name:            src.Name,
				Cost:            string(src.Cost),
				Difficulty:      src.Difficulty,
				Rating:          src.Rating,
				CostPerDevice:   src.CostPerDevice,
				CO2Impact:       src.CO2Impact,
				MaintenanceTime: src.MaintenanceTime,
				Advantages:      src.Advantages,
				Disadvantages:   src.Disadvantages,
			}
		}),
	}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	role := sess.Claims().Get("role").StringOrDefault("")
	if role != "teacher" && role != "head" {
		return forbiddenResult, nil
	}
	sol := req.Solution
	category := domain.Category(sol.Category)
	cost := domain.Cost(sol.Metrics.Cost)
	if sol.Name == "" || !category.Valid() || !cost.Valid() {
		return invalidInputResult, nil
	}
	if sol.Metrics.Difficulty < 1 || sol.Metrics.Difficulty > 5 {
		return invalidInputResult, nil
	}
	if sol.Metrics.Rating < 0 || sol.Metrics.Rating > 5 {
		return invalidInputResult, nil
	}
	id, err := h.svc.Save(ctx, h.toDomain(sol))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) toDomain(vo Solution) domain.Solution {
	return domain.Solution{
		Id:       vo.Id,
		Name:     vo.Name,
		Category: domain.Category(vo.Category),
		Desc: domain.Desc{
			Short: vo.Description.Short,
			Long:  vo.Description.Long,
		},
		Logo:          vo.Logo,
		AlternativeTo: vo.AlternativeTo,
		Metrics: domain.Metrics{
			Cost:        domain.Cost(vo.Metrics.Cost),
			Difficulty:  vo.Metrics.Difficulty,
			Rating:      vo.Metrics.Rating,
			UsedByCount: vo.Metrics.UsedByCount,
		},
		Advantages:    vo.Advantages,
		Disadvantages: vo.Disadvantages,
		Comparison: domain.Comparison{
			CostPerDevice:   vo.Comparison.CostPerDevice,
			CO2Impact:       vo.Comparison.CO2Impact,
			MaintenanceTime: vo.Comparison.MaintenanceTime,
			RequiredRAM:     vo.Comparison.RequiredRAM,
		},
		Resources: domain.Resources{
			OfficialSite:  vo.Resources.OfficialSite,
			Documentation: vo.Resources.Documentation,
			TutorialVideo: vo.Resources.TutorialVideo,
			InstallGuide:  vo.Resources.InstallGuide,
		},
		TargetAudience: domain.TargetAudience{
			EstablishmentTypes: vo.TargetAudience.EstablishmentTypes,
			TechnicalLevels:    vo.TargetAudience.TechnicalLevels,
		},
		Tags: vo.Tags,
	}
}

func (h *Handler) toVO(s domain.Solution) Solution {
	return Solution{
		Id:       s.Id,
		Name:     s.Name,
		Category: string(s.Category),
		Description: Desc{
			Short: s.Desc.Short,
			Long:  s.Desc.Long,
		},
		Logo:          s.Logo,
		AlternativeTo: s.AlternativeTo,
		Metrics: Metrics{
			Cost:        string(s.Metrics.Cost),
			Difficulty:  s.Metrics.Difficulty,
			Rating:      s.Metrics.Rating,
			UsedByCount: s.Metrics.UsedByCount,
		},
		Advantages:    s.Advantages,
		Disadvantages: s.Disadvantages,
		Comparison: Comparison{
			CostPerDevice:   s.Comparison.CostPerDevice,
			CO2Impact:       s.Comparison.CO2Impact,
			MaintenanceTime: s.Comparison.MaintenanceTime,
			RequiredRAM:     s.Comparison.RequiredRAM,
		},
		Resources: Resources{
			OfficialSite:  s.Resources.OfficialSite,
			Documentation: s.Resources.Documentation,
			TutorialVideo: s.Resources.TutorialVideo,
			InstallGuide:  s.Resources.InstallGuide,
		},
		TargetAudience: TargetAudience{
			EstablishmentTypes: s.TargetAudience.EstablishmentTypes,
			TechnicalLevels:    s.TargetAudience.TechnicalLevels,
		},
		Tags: s.Tags,
	}
}
