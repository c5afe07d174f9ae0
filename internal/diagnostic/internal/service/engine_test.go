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
	"fmt"
	"testing"

	"github.com/nird-project/nird/internal/diagnostic/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Score(t *testing.T) {
	engine := NewEngine(DefaultEngineConfig())
	testCases := []struct {
		name    string
		answers domain.AnswerSet
		want    int
	}{
		{
			name: "典型中学",
			answers: domain.AnswerSet{
				EstablishmentType: domain.EstablishmentMiddle,
				ComputerCount:     50,
				CurrentOS:         domain.OSWindows10,
				Budget:            6000,
				HasITStaff:        false,
				MainConcerns:      []string{"cost", "ecology"},
			},
			// 30 + 25 + 20 + 0(50 没过 50 的门槛) + 10
			want: 85,
		},
		{
			name: "全零",
			answers: domain.AnswerSet{
				ComputerCount: 10,
				CurrentOS:     domain.OSLinux,
				Budget:        100,
				HasITStaff:    true,
			},
			want: 0,
		},
		{
			name: "全部拉满也只有 100",
			answers: domain.AnswerSet{
				ComputerCount: 500,
				CurrentOS:     domain.OSWindows11,
				Budget:        100000,
				HasITStaff:    false,
				MainConcerns:  []string{"a", "b", "c", "d", "e"},
			},
			want: 100,
		},
		{
			name: "预算取高档不叠加",
			answers: domain.AnswerSet{
				ComputerCount: 10,
				CurrentOS:     domain.OSLinux,
				Budget:        5001,
				HasITStaff:    true,
			},
			want: 25,
		},
		{
			name: "预算中档",
			answers: domain.AnswerSet{
				ComputerCount: 10,
				CurrentOS:     domain.OSLinux,
				Budget:        2001,
				HasITStaff:    true,
			},
			want: 15,
		},
		{
			name: "电脑数量中档",
			answers: domain.AnswerSet{
				ComputerCount: 51,
				CurrentOS:     domain.OSLinux,
				HasITStaff:    true,
			},
			want: 10,
		},
		{
			name: "电脑数量高档",
			answers: domain.AnswerSet{
				ComputerCount: 101,
				CurrentOS:     domain.OSLinux,
				HasITStaff:    true,
			},
			want: 15,
		},
		{
			name: "五个关注点也只加 10",
			answers: domain.AnswerSet{
				ComputerCount: 10,
				CurrentOS:     domain.OSLinux,
				HasITStaff:    true,
				MainConcerns:  []string{"a", "b", "c", "d", "e"},
			},
			want: 10,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.Score(tc.answers))
		})
	}
}

func TestEngine_ScoreBounds(t *testing.T) {
	engine := NewEngine(DefaultEngineConfig())
	for count := 0; count <= 200; count += 10 {
		for _, os := range []domain.OS{domain.OSWindows10, domain.OSLinux, domain.OSMix} {
			score := engine.Score(domain.AnswerSet{
				ComputerCount: count,
				CurrentOS:     os,
				Budget:        float64(count) * 100,
				MainConcerns:  make([]string, count%7),
			})
			require.True(t, score >= 0 && score <= 100, "score %d 越界", score)
		}
	}
}

func TestEngine_ScoreMonotonicity(t *testing.T) {
	engine := NewEngine(DefaultEngineConfig())
	base := domain.AnswerSet{
		ComputerCount: 40,
		CurrentOS:     domain.OSMacOS,
		Budget:        1500,
		HasITStaff:    true,
		MainConcerns:  []string{"cost"},
	}
	baseScore := engine.Score(base)

	t.Run("电脑变多分数不降", func(t *testing.T) {
		prev := baseScore
		for _, count := range []int{41, 51, 80, 101, 500} {
			a := base
			a.ComputerCount = count
			cur := engine.Score(a)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
	t.Run("预算变大分数不降", func(t *testing.T) {
		prev := baseScore
		for _, budget := range []float64{1600, 2001, 4000, 5001, 99999} {
			a := base
			a.Budget = budget
			cur := engine.Score(a)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
	t.Run("关注点变多分数不降", func(t *testing.T) {
		prev := baseScore
		for n := 2; n <= 6; n++ {
			a := base
			a.MainConcerns = make([]string, n)
			cur := engine.Score(a)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
	t.Run("换成私有 OS 分数不降", func(t *testing.T) {
		a := base
		a.CurrentOS = domain.OSWindows11
		assert.GreaterOrEqual(t, engine.Score(a), baseScore)
	})
}

func TestEngine_Estimate(t *testing.T) {
	engine := NewEngine(DefaultEngineConfig())
	testCases := []struct {
		name    string
		answers domain.AnswerSet
		want    domain.Savings
	}{
		{
			name:    "50 台",
			answers: domain.AnswerSet{ComputerCount: 50, Budget: 6000},
			// 145×50×3 + 50×50×3
			want: domain.Savings{Money: 29250, CO2: 3.75, Computers: 15},
		},
		{
			name:    "0 台",
			answers: domain.AnswerSet{ComputerCount: 0},
			want:    domain.Savings{Money: 0, CO2: 0, Computers: 0},
		},
		{
			name: "预算不参与计算",
			answers: domain.AnswerSet{
				ComputerCount: 50,
				Budget:        999999,
			},
			want: domain.Savings{Money: 29250, CO2: 3.75, Computers: 15},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Estimate(tc.answers)
			assert.Equal(t, tc.want.Money, got.Money)
			assert.InDelta(t, tc.want.CO2, got.CO2, 0.0001)
			assert.Equal(t, tc.want.Computers, got.Computers)
		})
	}
}

func TestEngine_Plan(t *testing.T) {
	engine := NewEngine(DefaultEngineConfig())
	answers := domain.AnswerSet{ComputerCount: 50}
	savings := engine.Estimate(answers)
	plan := engine.Plan(answers, savings)

	require.Len(t, plan, 3)
	// 顺序固定：Quick Wins -> Transition -> Autonomie
	assert.Equal(t, "Quick Wins (0-3 mois)", plan[0].Title)
	assert.Equal(t, "Transition (3-6 mois)", plan[1].Title)
	assert.Equal(t, "Autonomie (6-12 mois)", plan[2].Title)

	assert.Equal(t, int64(2925), plan[0].Savings)
	assert.Equal(t, int64(8775), plan[1].Savings)
	assert.Equal(t, int64(17550), plan[2].Savings)

	assert.Equal(t, 2, plan[0].Difficulty)
	assert.Equal(t, 3, plan[1].Difficulty)
	assert.Equal(t, 4, plan[2].Difficulty)

	assert.Equal(t, "3 mois", plan[0].Duration)
	assert.Equal(t, "3 mois", plan[1].Duration)
	assert.Equal(t, "6 mois", plan[2].Duration)

	// Phase 2 插值 40% 的电脑数，Phase 3 插值全量
	assert.Contains(t, plan[1].Tasks[0], "20 ordinateurs")
	assert.Contains(t, plan[2].Tasks[0], "50 postes")
}

func TestEngine_PlanShares(t *testing.T) {
	engine := NewEngine(DefaultEngineConfig())
	// 向下取整最多差 2
	for _, count := range []int{0, 1, 3, 7, 33, 50, 101, 999} {
		answers := domain.AnswerSet{ComputerCount: count}
		savings := engine.Estimate(answers)
		plan := engine.Plan(answers, savings)
		total := plan[0].Savings + plan[1].Savings + plan[2].Savings
		require.True(t, savings.Money-total >= 0 && savings.Money-total <= 2,
			"count=%d money=%d 分摊=%d", count, savings.Money, total)
	}
}

func TestEngine_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultEngineConfig())
	answers := domain.AnswerSet{
		EstablishmentType: domain.EstablishmentHigh,
		ComputerCount:     77,
		CurrentOS:         domain.OSMix,
		Budget:            3000,
		MainConcerns:      []string{"cost"},
		Readiness:         domain.ReadinessReady,
	}
	score1, savings1, plan1 := engine.Evaluate(answers)
	score2, savings2, plan2 := engine.Evaluate(answers)
	assert.Equal(t, score1, score2)
	assert.Equal(t, savings1, savings2)
	assert.Equal(t, fmt.Sprintf("%#v", plan1), fmt.Sprintf("%#v", plan2))
}
