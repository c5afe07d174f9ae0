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
	"testing"

	"github.com/nird-project/nird/internal/gamification/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestConfig_LevelFor(t *testing.T) {
	cfg := DefaultConfig()
	testCases := []struct {
		name   string
		points uint64
		want   domain.Level
	}{
		{name: "零分", points: 0, want: domain.LevelApprentice},
		{name: "门槛之下", points: 99, want: domain.LevelApprentice},
		{name: "正好跨过第一道门槛", points: 100, want: domain.LevelWarrior},
		{name: "第二级中段", points: 299, want: domain.LevelWarrior},
		{name: "正好第三级", points: 300, want: domain.LevelGuardian},
		{name: "满级边界", points: 600, want: domain.LevelChampion},
		{name: "远超满级", points: 10000, want: domain.LevelChampion},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cfg.LevelFor(tc.points))
		})
	}
}

func TestConfig_Next(t *testing.T) {
	cfg := DefaultConfig()
	testCases := []struct {
		name   string
		points uint64
		want   *domain.NextLevel
	}{
		{
			name:   "新用户",
			points: 0,
			want: &domain.NextLevel{
				Level:        domain.LevelWarrior,
				Threshold:    100,
				PointsNeeded: 100,
			},
		},
		{
			name:   "差一分升级",
			points: 299,
			want: &domain.NextLevel{
				Level:        domain.LevelGuardian,
				Threshold:    300,
				PointsNeeded: 1,
			},
		},
		{
			name:   "满级之后没有下一级",
			points: 600,
			want:   nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cfg.Next(tc.points))
		})
	}
}

func TestConfig_Badge(t *testing.T) {
	cfg := DefaultConfig()

	badge, ok := cfg.Badge("pingouin")
	assert.True(t, ok)
	assert.Equal(t, "Pingouin d'Or", badge.Name)
	assert.Equal(t, uint64(100), badge.Points)

	_, ok = cfg.Badge("licorne")
	assert.False(t, ok)
}
