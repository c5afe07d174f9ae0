package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/nird-project/nird/internal/gamification/internal/domain"
)

//go:generate mockgen -source=./leaderboard.go -package=cachemocks -destination=mocks/leaderboard.mock.go LeaderboardCache
type LeaderboardCache interface {
	Get(ctx context.Context) ([]domain.LeaderboardEntry, error)
	Set(ctx context.Context, entries []domain.LeaderboardEntry) error
}

type LeaderboardECache struct {
	cache ecache.Cache
	// 榜单允许短暂落后于真实积分
	expiration time.Duration
}

func NewLeaderboardECache(c ecache.Cache) LeaderboardCache {
	return &LeaderboardECache{
		cache: &ecache.NamespaceCache{
			Namespace: "gamification:",
			C:         c,
		},
		expiration: time.Minute,
	}
}

func (cache *LeaderboardECache) Get(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	err := cache.cache.Get(ctx, cache.key()).JSONScan(&entries)
	return entries, err
}

func (cache *LeaderboardECache) Set(ctx context.Context, entries []domain.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(), data, cache.expiration)
}

func (cache *LeaderboardECache) key() string {
	return "leaderboard"
}
