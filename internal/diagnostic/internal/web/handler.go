package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/nird-project/nird/internal/diagnostic/internal/domain"
	"github.com/nird-project/nird/internal/diagnostic/internal/service"
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
	g := server.Group("/diagnostic")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	answers, ok := h.toAnswers(req.Answers)
	if !ok {
		return invalidInputResult, nil
	}
	d, err := h.svc.Submit(ctx, sess.Claims().Uid, answers)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toVO(d),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ds, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: DiagnosticList{
			Total: len(ds),
			Diagnostics: slice.Map(ds, func(idx int, src domain.Diagnostic) Diagnostic {
				return h.toVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.Detail(ctx, sess.Claims().Uid, req.Id)
	switch {
	case errors.Is(err, service.ErrDiagnosticNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrNotOwner):
		return forbiddenResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{
			Data: h.toVO(d),
		}, nil
	}
}

// toAnswers 边界校验都在这里，通过之后流水线不再做任何校验
func (h *Handler) toAnswers(vo AnswerSetVO) (domain.AnswerSet, bool) {
	estType := domain.EstablishmentType(vo.EstablishmentType)
	os := domain.OS(vo.CurrentOS)
	readiness := domain.Readiness(vo.Readiness)
	if !estType.Valid() || !os.Valid() {
		return domain.AnswerSet{}, false
	}
	if vo.ComputerCount <= 0 || vo.Budget < 0 {
		return domain.AnswerSet{}, false
	}
	// 准备程度是可选字段，目前评分也不用它
	if vo.Readiness != "" && !readiness.Valid() {
		return domain.AnswerSet{}, false
	}
	return domain.AnswerSet{
		EstablishmentType: estType,
		ComputerCount:     vo.ComputerCount,
		CurrentOS:         os,
		Budget:            vo.Budget,
		HasITStaff:        vo.HasITStaff,
		MainConcerns:      vo.MainConcerns,
		Readiness:         readiness,
	}, true
}

func (h *Handler) toVO(d domain.Diagnostic) Diagnostic {
	return Diagnostic{
		Id: d.Id,
		SN: d.SN,
		Answers: AnswerSetVO{
			EstablishmentType: string(d.Answers.EstablishmentType),
			ComputerCount:     d.Answers.ComputerCount,
			CurrentOS:         string(d.Answers.CurrentOS),
			Budget:            d.Answers.Budget,
			HasITStaff:        d.Answers.HasITStaff,
			MainConcerns:      d.Answers.MainConcerns,
			Readiness:         string(d.Answers.Readiness),
		},
		DependencyScore: d.Score,
		PotentialSavings: SavingsVO{
			Money:     d.Savings.Money,
			CO2:       d.Savings.CO2,
			Computers: d.Savings.Computers,
		},
		ActionPlan: slice.Map(d.Plan, func(idx int, src domain.Phase) PhaseVO {
			return PhaseVO{
				Phase:      src.Phase,
				Title:      src.Title,
				Tasks:      src.Tasks,
				Duration:   src.Duration,
				Savings:    src.Savings,
				Difficulty: src.Difficulty,
			}
		}),
		RecommendedSolutions: d.RecommendedSolutions,
		Ctime:                d.Ctime,
	}
}
