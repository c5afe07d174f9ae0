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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/nird-project/nird/internal/gamification/internal/domain"
	"github.com/nird-project/nird/internal/gamification/internal/repository/dao"
)

var (
	ErrDuplicatedPointsLog = dao.ErrDuplicatedPointsLog
	ErrDuplicatedBadge     = dao.ErrDuplicatedBadge
)

//go:generate mockgen -source=./gamification.go -package=repomocks -destination=mocks/gamification.mock.go GamificationRepository
type GamificationRepository interface {
	AddPoints(ctx context.Context, uid int64, l domain.PointsLog) (uint64, error)
	// TotalPoints 还没有任何积分的用户返回 0
	TotalPoints(ctx context.Context, uid int64) (uint64, error)
	FindBadgesByUid(ctx context.Context, uid int64) ([]domain.EarnedBadge, error)
	AddBadge(ctx context.Context, uid int64, b domain.Badge) error
	Top(ctx context.Context, limit int) ([]domain.Profile, error)
	BadgeCounts(ctx context.Context, uids []int64) (map[int64]int, error)
}

type gamificationRepository struct {
	dao dao.GamificationDAO
}

func NewGamificationRepository(d dao.GamificationDAO) GamificationRepository {
	return &gamificationRepository{dao: d}
}

func (r *gamificationRepository) AddPoints(ctx context.Context, uid int64, l domain.PointsLog) (uint64, error) {
	return r.dao.AddPoints(ctx, dao.PointsLog{
		Key:    l.Key,
		Uid:    uid,
		Biz:    l.Biz,
		BizId:  l.BizId,
		Action: l.Action,
		Change: l.Change,
	})
}

func (r *gamificationRepository) TotalPoints(ctx context.Context, uid int64) (uint64, error) {
	p, err := r.dao.FindProfileByUid(ctx, uid)
	if errors.Is(err, dao.ErrDataNotFound) {
		return 0, nil
	}
	return p.Points, err
}

func (r *gamificationRepository) FindBadgesByUid(ctx context.Context, uid int64) ([]domain.EarnedBadge, error) {
	bs, err := r.dao.FindBadgesByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(bs, func(idx int, src dao.UserBadge) domain.EarnedBadge {
		return domain.EarnedBadge{
			Key:      src.BadgeKey,
			Name:     src.Name,
			Icon:     src.Icon,
			EarnedAt: src.Ctime,
		}
	}), nil
}

func (r *gamificationRepository) AddBadge(ctx context.Context, uid int64, b domain.Badge) error {
	return r.dao.InsertBadge(ctx, dao.UserBadge{
		Uid:      uid,
		BadgeKey: b.Key,
		Name:     b.Name,
		Icon:     b.Icon,
	})
}

func (r *gamificationRepository) Top(ctx context.Context, limit int) ([]domain.Profile, error) {
	ps, err := r.dao.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Profile) domain.Profile {
		return domain.Profile{
			Uid:    src.Uid,
			Points: src.Points,
		}
	}), nil
}

func (r *gamificationRepository) BadgeCounts(ctx context.Context, uids []int64) (map[int64]int, error) {
	return r.dao.BadgeCounts(ctx, uids)
}
