package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/nird-project/nird/internal/solution/internal/domain"
)

//go:generate mockgen -source=./solution.go -package=cachemocks -destination=mocks/solution.mock.go SolutionCache
type SolutionCache interface {
	Get(ctx context.Context, id int64) (domain.Solution, error)
	Set(ctx context.Context, s domain.Solution) error
}

type SolutionECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewSolutionECache(c ecache.Cache) SolutionCache {
	return &SolutionECache{
		cache: &ecache.NamespaceCache{
			Namespace: "solution:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (cache *SolutionECache) Get(ctx context.Context, id int64) (domain.Solution, error) {
	var s domain.Solution
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&s)
	return s, err
}

func (cache *SolutionECache) Set(ctx context.Context, s domain.Solution) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(s.Id), data, cache.expiration)
}

func (cache *SolutionECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
