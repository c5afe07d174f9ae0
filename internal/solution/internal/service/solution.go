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

	"github.com/ecodeclub/ekit/slice"
	"github.com/nird-project/nird/internal/solution/internal/domain"
	"github.com/nird-project/nird/internal/solution/internal/repository"
)

var ErrSolutionNotFound = repository.ErrSolutionNotFound

//go:generate mockgen -source=./solution.go -package=svcmocks -destination=mocks/solution.mock.go Service
type Service interface {
	List(ctx context.Context, category domain.Category, maxDifficulty int, cost domain.Cost) ([]domain.Solution, error)
	Detail(ctx context.Context, id int64) (domain.Solution, error)
	// Compare 返回对比投影，顺序跟随存储返回
	Compare(ctx context.Context, ids []int64) ([]domain.ComparisonRow, error)
	Save(ctx context.Context, s domain.Solution) (int64, error)
}

type service struct {
	repo repository.SolutionRepository
}

func NewService(repo repository.SolutionRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) List(ctx context.Context,
	category domain.Category, maxDifficulty int, cost domain.Cost) ([]domain.Solution, error) {
	return s.repo.List(ctx, category, maxDifficulty, cost)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Solution, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) Compare(ctx context.Context, ids []int64) ([]domain.ComparisonRow, error) {
	ss, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src domain.Solution) domain.ComparisonRow {
		return domain.ComparisonRow{
			Id:              src.Id,
			Name:            src.Name,
			Cost:            src.Metrics.Cost,
			Difficulty:      src.Metrics.Difficulty,
			Rating:          src.Metrics.Rating,
			CostPerDevice:   src.Comparison.CostPerDevice,
			CO2Impact:       src.Comparison.CO2Impact,
			MaintenanceTime: src.Comparison.MaintenanceTime,
			Advantages:      src.Advantages,
			Disadvantages:   src.Disadvantages,
		}
	}), nil
}

func (s *service) Save(ctx context.Context, sol domain.Solution) (int64, error) {
	return s.repo.Create(ctx, sol)
}
