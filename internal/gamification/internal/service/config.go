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

import "github.com/nird-project/nird/internal/gamification/internal/domain"

type LevelThreshold struct {
	Level     domain.Level
	Threshold uint64
}

// Config 等级门槛和徽章目录，构造时注入，运行期只读
type Config struct {
	// Levels 按门槛从低到高排列，第一级门槛必须是 0
	Levels []LevelThreshold
	Badges []domain.Badge
}

func DefaultConfig() Config {
	return Config{
		Levels: []LevelThreshold{
			{Level: domain.LevelApprentice, Threshold: 0},
			{Level: domain.LevelWarrior, Threshold: 100},
			{Level: domain.LevelGuardian, Threshold: 300},
			{Level: domain.LevelChampion, Threshold: 600},
		},
		Badges: []domain.Badge{
			{Key: "eclaireur", Name: "Éclaireur", Icon: "🔍", Desc: "Diagnostic complété", Points: 50},
			{Key: "curieux", Name: "Curieux", Icon: "📚", Desc: "3 solutions consultées", Points: 30},
			{Key: "ambassadeur", Name: "Ambassadeur", Icon: "👨‍🏫", Desc: "Présentation NIRD à l'équipe", Points: 40},
			{Key: "pilote", Name: "Pilote", Icon: "🧪", Desc: "Installation Linux sur PC pilote", Points: 50},
			{Key: "formateur", Name: "Formateur", Icon: "🎓", Desc: "Formation de collègues", Points: 60},
			{Key: "econome", Name: "Économe", Icon: "💰", Desc: "1000€ économisés", Points: 70},
			{Key: "pingouin", Name: "Pingouin d'Or", Icon: "🐧", Desc: "Migration Linux complète", Points: 100},
			{Key: "ecochampion", Name: "Éco-Champion", Icon: "♻️", Desc: "Reconditionnement de matériel", Points: 80},
		},
	}
}

func (c Config) LevelFor(points uint64) domain.Level {
	level := c.Levels[0].Level
	for _, lt := range c.Levels {
		if points >= lt.Threshold {
			level = lt.Level
		}
	}
	return level
}

func (c Config) Next(points uint64) *domain.NextLevel {
	for _, lt := range c.Levels {
		if points < lt.Threshold {
			return &domain.NextLevel{
				Level:        lt.Level,
				Threshold:    lt.Threshold,
				PointsNeeded: lt.Threshold - points,
			}
		}
	}
	// 满级
	return nil
}

func (c Config) Badge(key string) (domain.Badge, bool) {
	for _, b := range c.Badges {
		if b.Key == key {
			return b, true
		}
	}
	return domain.Badge{}, false
}
