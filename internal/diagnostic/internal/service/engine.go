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

	"github.com/nird-project/nird/internal/diagnostic/internal/domain"
)

// EngineConfig 评分和收益估算用到的全部常量。
// 构造时一次性注入，Engine 内部没有任何全局状态
type EngineConfig struct {
	LegacyOSPoints int

	HighBudget       float64
	HighBudgetPoints int
	MidBudget        float64
	MidBudgetPoints  int

	NoITStaffPoints int

	LargeFleet       int
	LargeFleetPoints int
	MidFleet         int
	MidFleetPoints   int

	ConcernPoints int
	ConcernCap    int

	MaxScore int

	// 三年期收益估算
	LicensePerDevice     int64
	MaintenancePerDevice int64
	HorizonYears         int64
	CO2PerDevice         float64
	SavedRatio           float64
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LegacyOSPoints:   30,
		HighBudget:       5000,
		HighBudgetPoints: 25,
		MidBudget:        2000,
		MidBudgetPoints:  15,
		NoITStaffPoints:  20,
		LargeFleet:       100,
		LargeFleetPoints: 15,
		MidFleet:         50,
		MidFleetPoints:   10,
		ConcernPoints:    5,
		ConcernCap:       10,
		MaxScore:         100,

		LicensePerDevice:     145,
		MaintenancePerDevice: 50,
		HorizonYears:         3,
		CO2PerDevice:         0.025,
		SavedRatio:           0.3,
	}
}

// Engine 诊断流水线：回答 -> 依赖分，回答 -> 收益估算，
// (回答, 收益) -> 行动计划。三步都是纯函数，不碰任何外部状态
type Engine struct {
	cfg EngineConfig
}

func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Score 0-100 的依赖分，各项加分后整体封顶
func (e *Engine) Score(answers domain.AnswerSet) int {
	cfg := e.cfg
	score := 0
	if answers.CurrentOS.Legacy() {
		score += cfg.LegacyOSPoints
	}
	// 两档预算互斥，高档优先
	if answers.Budget > cfg.HighBudget {
		score += cfg.HighBudgetPoints
	} else if answers.Budget > cfg.MidBudget {
		score += cfg.MidBudgetPoints
	}
	if !answers.HasITStaff {
		score += cfg.NoITStaffPoints
	}
	if answers.ComputerCount > cfg.LargeFleet {
		score += cfg.LargeFleetPoints
	} else if answers.ComputerCount > cfg.MidFleet {
		score += cfg.MidFleetPoints
	}
	score += min(cfg.ConcernPoints*len(answers.MainConcerns), cfg.ConcernCap)
	return min(score, cfg.MaxScore)
}

// Estimate 收益估算只看电脑数量，刻意不使用预算字段
func (e *Engine) Estimate(answers domain.AnswerSet) domain.Savings {
	cfg := e.cfg
	n := int64(answers.ComputerCount)
	license := cfg.LicensePerDevice * n * cfg.HorizonYears
	maintenance := cfg.MaintenancePerDevice * n * cfg.HorizonYears
	return domain.Savings{
		Money:     license + maintenance,
		CO2:       cfg.CO2PerDevice * float64(n) * float64(cfg.HorizonYears),
		Computers: int(cfg.SavedRatio * float64(answers.ComputerCount)),
	}
}

// Plan 固定三阶段，顺序和难度都不变，只插值电脑数量
func (e *Engine) Plan(answers domain.AnswerSet, savings domain.Savings) []domain.Phase {
	return []domain.Phase{
		{
			Phase: "Phase 1",
			Title: "Quick Wins (0-3 mois)",
			Tasks: []string{
				"Tester Linux sur 5 ordinateurs pilotes",
				"Former 2 enseignants référents",
				"Migrer la suite bureautique vers LibreOffice",
			},
			Duration:   "3 mois",
			Savings:    savings.Money / 10,
			Difficulty: 2,
		},
		{
			Phase: "Phase 2",
			Title: "Transition (3-6 mois)",
			Tasks: []string{
				fmt.Sprintf("Déployer Linux sur %d ordinateurs", int(0.4*float64(answers.ComputerCount))),
				"Sensibiliser élèves et parents",
				"Former l'équipe technique",
			},
			Duration:   "3 mois",
			Savings:    savings.Money * 3 / 10,
			Difficulty: 3,
		},
		{
			Phase: "Phase 3",
			Title: "Autonomie (6-12 mois)",
			Tasks: []string{
				fmt.Sprintf("Migration complète des %d postes", answers.ComputerCount),
				"Créer un club informatique élève",
				"Devenir établissement référent NIRD",
			},
			Duration:   "6 mois",
			Savings:    savings.Money * 6 / 10,
			Difficulty: 4,
		},
	}
}

// Evaluate 一次提交跑完整条流水线
func (e *Engine) Evaluate(answers domain.AnswerSet) (int, domain.Savings, []domain.Phase) {
	score := e.Score(answers)
	savings := e.Estimate(answers)
	plan := e.Plan(answers, savings)
	return score, savings, plan
}
