package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/nird-project/nird/internal/solution/internal/domain"
	"github.com/nird-project/nird/internal/solution/internal/repository/cache"
	"github.com/nird-project/nird/internal/solution/internal/repository/dao"
)

var ErrSolutionNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./solution.go -package=repomocks -destination=mocks/solution.mock.go SolutionRepository
type SolutionRepository interface {
	Create(ctx context.Context, s domain.Solution) (int64, error)
	List(ctx context.Context, category domain.Category, maxDifficulty int, cost domain.Cost) ([]domain.Solution, error)
	FindById(ctx context.Context, id int64) (domain.Solution, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Solution, error)
}

// CachedSolutionRepository 详情带缓存，列表不缓存
type CachedSolutionRepository struct {
	dao   dao.SolutionDAO
	cache cache.SolutionCache
}

func NewCachedSolutionRepository(d dao.SolutionDAO, c cache.SolutionCache) SolutionRepository {
	return &CachedSolutionRepository{
		dao:   d,
		cache: c,
	}
}

func (r *CachedSolutionRepository) Create(ctx context.Context, s domain.Solution) (int64, error) {
	return r.dao.Insert(ctx, r.domainToEntity(s))
}

func (r *CachedSolutionRepository) List(ctx context.Context,
	category domain.Category, maxDifficulty int, cost domain.Cost) ([]domain.Solution, error) {
	ss, err := r.dao.List(ctx, string(category), maxDifficulty, string(cost))
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.Solution) domain.Solution {
		return r.entityToDomain(src)
	}), nil
}

func (r *CachedSolutionRepository) FindById(ctx context.Context, id int64) (domain.Solution, error) {
	s, err := r.cache.Get(ctx, id)
	if err == nil {
		return s, nil
	}
	se, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Solution{}, err
	}
	s = r.entityToDomain(se)
	// 忽略掉这里的错误
	_ = r.cache.Set(ctx, s)
	return s, nil
}

func (r *CachedSolutionRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Solution, error) {
	ss, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.Solution) domain.Solution {
		return r.entityToDomain(src)
	}), nil
}

func (r *CachedSolutionRepository) domainToEntity(s domain.Solution) dao.Solution {
	return dao.Solution{
		Id:          s.Id,
		Name:        s.Name,
		Category:    string(s.Category),
		Cost:        string(s.Metrics.Cost),
		Difficulty:  s.Metrics.Difficulty,
		Rating:      s.Metrics.Rating,
		UsedByCount: s.Metrics.UsedByCount,
		Logo:        s.Logo,
		Desc: sqlx.JsonColumn[dao.Desc]{
			Valid: true,
			Val:   dao.Desc{Short: s.Desc.Short, Long: s.Desc.Long},
		},
		AlternativeTo: sqlx.JsonColumn[[]string]{Valid: true, Val: s.AlternativeTo},
		Advantages:    sqlx.JsonColumn[[]string]{Valid: true, Val: s.Advantages},
		Disadvantages: sqlx.JsonColumn[[]string]{Valid: true, Val: s.Disadvantages},
		Comparison: sqlx.JsonColumn[dao.Comparison]{
			Valid: true,
			Val: dao.Comparison{
				CostPerDevice:   s.Comparison.CostPerDevice,
				CO2Impact:       s.Comparison.CO2Impact,
				MaintenanceTime: s.Comparison.MaintenanceTime,
				RequiredRAM:     s.Comparison.RequiredRAM,
			},
		},
		Resources: sqlx.JsonColumn[dao.Resources]{
			Valid: true,
			Val: dao.Resources{
				OfficialSite:  s.Resources.OfficialSite,
				Documentation: s.Resources.Documentation,
				TutorialVideo: s.Resources.TutorialVideo,
				InstallGuide:  s.Resources.InstallGuide,
			},
		},
		TargetAudience: sqlx.JsonColumn[dao.TargetAudience]{
			Valid: true,
			Val: dao.TargetAudience{
				EstablishmentTypes: s.TargetAudience.EstablishmentTypes,
				TechnicalLevels:    s.TargetAudience.TechnicalLevels,
			},
		},
		Tags: sqlx.JsonColumn[[]string]{Valid: true, Val: s.Tags},
	}
}

func (r *CachedSolutionRepository) entityToDomain(s dao.Solution) domain.Solution {
	return domain.Solution{
		Id:       s.Id,
		Name:     s.Name,
		Category: domain.Category(s.Category),
		Desc:     domain.Desc{Short: s.Desc.Val.Short, Long: s.Desc.Val.Long},
		Logo:     s.Logo,
		Metrics: domain.Metrics{
			Cost:        domain.Cost(s.Cost),
			Difficulty:  s.Difficulty,
			Rating:      s.Rating,
			UsedByCount: s.UsedByCount,
		},
		AlternativeTo: s.AlternativeTo.Val,
		Advantages:    s.Advantages.Val,
		Disadvantages: s.Disadvantages.Val,
		Comparison: domain.Comparison{
			CostPerDevice:   s.Comparison.Val.CostPerDevice,
			CO2Impact:       s.Comparison.Val.CO2Impact,
			MaintenanceTime: s.Comparison.Val.MaintenanceTime,
			RequiredRAM:     s.Comparison.Val.RequiredRAM,
		},
		Resources: domain.Resources{
			OfficialSite:  s.Resources.Val.OfficialSite,
			Documentation: s.Resources.Val.Documentation,
			TutorialVideo: s.Resources.Val.TutorialVideo,
			InstallGuide:  s.Resources.Val.InstallGuide,
		},
		TargetAudience: domain.TargetAudience{
			EstablishmentTypes: s.TargetAudience.Val.EstablishmentTypes,
			TechnicalLevels:    s.TargetAudience.Val.TechnicalLevels,
		},
		Tags:  s.Tags.Val,
		Ctime: s.Ctime,
		Utime: s.Utime,
	}
}
