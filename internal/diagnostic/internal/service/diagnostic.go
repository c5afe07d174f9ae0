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
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/nird-project/nird/internal/diagnostic/internal/domain"
	"github.com/nird-project/nird/internal/diagnostic/internal/event"
	"github.com/nird-project/nird/internal/diagnostic/internal/repository"
	"github.com/nird-project/nird/internal/pkg/snowflake"
)

var ErrDiagnosticNotFound = repository.ErrDiagnosticNotFound

// ErrNotOwner 诊断报告只有提交人自己能看
var ErrNotOwner = fmt.Errorf("无权访问该诊断")

// submitPoints 提交一次诊断的奖励积分
const submitPoints = 50

//go:generate mockgen -source=./diagnostic.go -package=svcmocks -destination=mocks/diagnostic.mock.go Service
type Service interface {
	// Submit 跑完整条评分流水线并落库，
	// 加分事件是尽力而为，失败只记日志
	Submit(ctx context.Context, uid int64, answers domain.AnswerSet) (domain.Diagnostic, error)
	List(ctx context.Context, uid int64) ([]domain.Diagnostic, error)
	Detail(ctx context.Context, uid, id int64) (domain.Diagnostic, error)
}

type service struct {
	engine   *Engine
	repo     repository.DiagnosticRepository
	producer event.PointsEventProducer
	snGen    snowflake.Generator
	logger   *elog.Component
}

func NewService(engine *Engine,
	repo repository.DiagnosticRepository,
	producer event.PointsEventProducer,
	snGen snowflake.Generator) Service {
	return &service{
		engine:   engine,
		repo:     repo,
		producer: producer,
		snGen:    snGen,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, uid int64, answers domain.AnswerSet) (domain.Diagnostic, error) {
	score, savings, plan := s.engine.Evaluate(answers)
	sn, err := s.snGen.Generate(snowflake.AppDiagnostic)
	if err != nil {
		return domain.Diagnostic{}, err
	}
	d := domain.Diagnostic{
		SN:      sn.String(),
		Uid:     uid,
		Answers: answers,
		Score:   score,
		Savings: savings,
		Plan:    plan,
		// 推荐逻辑还没接上，始终是空的
		RecommendedSolutions: []int64{},
	}
	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return domain.Diagnostic{}, err
	}
	d.Id = id

	// 和落库不在一个事务里，丢了就丢了
	evt := event.PointsEvent{
		Key:    d.SN,
		Uid:    uid,
		Points: submitPoints,
		Biz:    "diagnostic",
		BizId:  id,
		Action: "提交诊断",
	}
	if e := s.producer.Produce(ctx, evt); e != nil {
		s.logger.Error("发送加分事件失败",
			elog.FieldErr(e),
			elog.Any("event", evt))
	}
	return d, nil
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Diagnostic, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Diagnostic, error) {
	d, err := s.repo.FindById(ctx, id)
	if err != nil {
		return domain.Diagnostic{}, err
	}
	if d.Uid != uid {
		return domain.Diagnostic{}, ErrNotOwner
	}
	return d, nil
}
