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

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/nird-project/nird/internal/gamification/internal/domain"
	"github.com/nird-project/nird/internal/gamification/internal/repository"
	"github.com/nird-project/nird/internal/gamification/internal/repository/cache"
	"github.com/nird-project/nird/internal/user"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownBadge       = errors.New("徽章不存在")
	ErrBadgeAlreadyEarned = repository.ErrDuplicatedBadge
	ErrDuplicatedPoints   = repository.ErrDuplicatedPointsLog
)

const defaultLeaderboardLimit = 10

//go:generate mockgen -source=./gamification.go -package=svcmocks -destination=mocks/gamification.mock.go Service
type Service interface {
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	// AddPoints 返回加分后的总分和等级。
	// Key 为空时生成一个，也就是放弃去重
	AddPoints(ctx context.Context, uid int64, l domain.PointsLog) (uint64, domain.Level, error)
	EarnBadge(ctx context.Context, uid int64, key string) (domain.EarnedBadge, uint64, domain.Level, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

type gamificationService struct {
	repo    repository.GamificationRepository
	lbCache cache.LeaderboardCache
	userSvc user.UserService
	cfg     Config
	logger  *elog.Component
}

func NewService(repo repository.GamificationRepository,
	lbCache cache.LeaderboardCache,
	userSvc user.UserService,
	cfg Config) Service {
	return &gamificationService{
		repo:    repo,
		lbCache: lbCache,
		userSvc: userSvc,
		cfg:     cfg,
		logger:  elog.DefaultLogger,
	}
}

func (s *gamificationService) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	var (
		eg     errgroup.Group
		points uint64
		badges []domain.EarnedBadge
		u      user.User
	)
	eg.Go(func() error {
		var err error
		points, err = s.repo.TotalPoints(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		badges, err = s.repo.FindBadgesByUid(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		u, err = s.userSvc.Profile(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Uid:           uid,
		Name:          u.Name,
		Role:          u.Role.String(),
		Establishment: u.Establishment.Name,
		Points:        points,
		Level:         s.cfg.LevelFor(points),
		Badges:        badges,
		Next:          s.cfg.Next(points),
	}, nil
}

func (s *gamificationService) AddPoints(ctx context.Context, uid int64, l domain.PointsLog) (uint64, domain.Level, error) {
	if l.Key == "" {
		l.Key = shortuuid.New()
	}
	total, err := s.repo.AddPoints(ctx, uid, l)
	if err != nil {
		return 0, "", err
	}
	return total, s.cfg.LevelFor(total), nil
}

func (s *gamificationService) EarnBadge(ctx context.Context, uid int64, key string) (domain.EarnedBadge, uint64, domain.Level, error) {
	badge, ok := s.cfg.Badge(key)
	if !ok {
		return domain.EarnedBadge{}, 0, "", ErrUnknownBadge
	}
	err := s.repo.AddBadge(ctx, uid, badge)
	if err != nil {
		return domain.EarnedBadge{}, 0, "", err
	}
	// 徽章落库之后再加分，加分失败徽章也不回滚
	total, level, err := s.AddPoints(ctx, uid, domain.PointsLog{
		Key:    fmt.Sprintf("badge-%d-%s", uid, key),
		Biz:    "badge",
		Action: "获得徽章",
		Change: badge.Points,
	})
	if err != nil {
		s.logger.Error("徽章加分失败",
			elog.FieldErr(err),
			elog.Any("uid", uid),
			elog.Any("badge", key))
		return domain.EarnedBadge{}, 0, "", err
	}
	return domain.EarnedBadge{
		Key:  badge.Key,
		Name: badge.Name,
		Icon: badge.Icon,
	}, total, level, nil
}

func (s *gamificationService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	entries, err := s.lbCache.Get(ctx)
	if err == nil && len(entries) >= limit {
		return entries[:limit], nil
	}

	tops, err := s.repo.Top(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(tops) == 0 {
		return []domain.LeaderboardEntry{}, nil
	}
	uids := make([]int64, 0, len(tops))
	for _, p := range tops {
		uids = append(uids, p.Uid)
	}
	var (
		eg     errgroup.Group
		users  []user.User
		counts map[int64]int
	)
	eg.Go(func() error {
		var err error
		users, err = s.userSvc.FindByIds(ctx, uids)
		return err
	})
	eg.Go(func() error {
		var err error
		counts, err = s.repo.BadgeCounts(ctx, uids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	byId := make(map[int64]user.User, len(users))
	for _, u := range users {
		byId[u.Id] = u
	}
	entries = make([]domain.LeaderboardEntry, 0, len(tops))
	for i, p := range tops {
		u := byId[p.Uid]
		entries = append(entries, domain.LeaderboardEntry{
			Rank:          i + 1,
			Uid:           p.Uid,
			Name:          u.Name,
			Establishment: u.Establishment.Name,
			Points:        p.Points,
			Level:         s.cfg.LevelFor(p.Points),
			BadgeCnt:      counts[p.Uid],
		})
	}
	if err := s.lbCache.Set(ctx, entries); err != nil {
		s.logger.Error("缓存排行榜失败", elog.FieldErr(err))
	}
	return entries, nil
}
