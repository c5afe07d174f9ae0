package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/nird-project/nird/internal/diagnostic/internal/domain"
	"github.com/nird-project/nird/internal/diagnostic/internal/repository/dao"
)

var ErrDiagnosticNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./diagnostic.go -package=repomocks -destination=mocks/diagnostic.mock.go DiagnosticRepository
type DiagnosticRepository interface {
	Create(ctx context.Context, d domain.Diagnostic) (int64, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Diagnostic, error)
	FindById(ctx context.Context, id int64) (domain.Diagnostic, error)
}

type diagnosticRepository struct {
	dao dao.DiagnosticDAO
}

func NewDiagnosticRepository(d dao.DiagnosticDAO) DiagnosticRepository {
	return &diagnosticRepository{
		dao: d,
	}
}

func (r *diagnosticRepository) Create(ctx context.Context, d domain.Diagnostic) (int64, error) {
	return r.dao.Create(ctx, r.domainToEntity(d))
}

func (r *diagnosticRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Diagnostic, error) {
	ds, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(ds, func(idx int, src dao.Diagnostic) domain.Diagnostic {
		return r.entityToDomain(src)
	}), nil
}

func (r *diagnosticRepository) FindById(ctx context.Context, id int64) (domain.Diagnostic, error) {
	d, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Diagnostic{}, err
	}
	return r.entityToDomain(d), nil
}

func (r *diagnosticRepository) domainToEntity(d domain.Diagnostic) dao.Diagnostic {
	return dao.Diagnostic{
		Id:  d.Id,
		SN:  d.SN,
		Uid: d.Uid,
		Answers: sqlx.JsonColumn[dao.AnswerSet]{
			Valid: true,
			Val: dao.AnswerSet{
				EstablishmentType: string(d.Answers.EstablishmentType),
				ComputerCount:     d.Answers.ComputerCount,
				CurrentOS:         string(d.Answers.CurrentOS),
				Budget:            d.Answers.Budget,
				HasITStaff:        d.Answers.HasITStaff,
				MainConcerns:      d.Answers.MainConcerns,
				Readiness:         string(d.Answers.Readiness),
			},
		},
		Results: sqlx.JsonColumn[dao.Results]{
			Valid: true,
			Val: dao.Results{
				DependencyScore: d.Score,
				PotentialSavings: dao.Savings{
					Money:     d.Savings.Money,
					CO2:       d.Savings.CO2,
					Computers: d.Savings.Computers,
				},
				ActionPlan: slice.Map(d.Plan, func(idx int, src domain.Phase) dao.Phase {
					return dao.Phase{
						Phase:      src.Phase,
						Title:      src.Title,
						Tasks:      src.Tasks,
						Duration:   src.Duration,
						Savings:    src.Savings,
						Difficulty: src.Difficulty,
					}
				}),
				RecommendedSolutions: d.RecommendedSolutions,
			},
		},
	}
}

func (r *diagnosticRepository) entityToDomain(d dao.Diagnostic) domain.Diagnostic {
	answers := d.Answers.Val
	results := d.Results.Val
	return domain.Diagnostic{
		Id:  d.Id,
		SN:  d.SN,
		Uid: d.Uid,
		Answers: domain.AnswerSet{
			EstablishmentType: domain.EstablishmentType(answers.EstablishmentType),
			ComputerCount:     answers.ComputerCount,
			CurrentOS:         domain.OS(answers.CurrentOS),
			Budget:            answers.Budget,
			HasITStaff:        answers.HasITStaff,
			MainConcerns:      answers.MainConcerns,
			Readiness:         domain.Readiness(answers.Readiness),
		},
		Score: results.DependencyScore,
		Savings: domain.Savings{
			Money:     results.PotentialSavings.Money,
			CO2:       results.PotentialSavings.CO2,
			Computers: results.PotentialSavings.Computers,
		},
		Plan: slice.Map(results.ActionPlan, func(idx int, src dao.Phase) domain.Phase {
			return domain.Phase{
				Phase:      src.Phase,
				Title:      src.Title,
				Tasks:      src.Tasks,
				Duration:   src.Duration,
				Savings:    src.Savings,
				Difficulty: src.Difficulty,
			}
		}),
		RecommendedSolutions: results.RecommendedSolutions,
		Ctime:                d.Ctime,
		Utime:                d.Utime,
	}
}
