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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/nird-project/nird/internal/gamification/internal/domain"
	"github.com/nird-project/nird/internal/gamification/internal/service"
)

type PointsEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPointsEventConsumer(svc service.Service, q mq.MQ) (*PointsEventConsumer, error) {
	groupID := "gamification"
	consumer, err := q.Consumer(PointsEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PointsEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *PointsEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费加分事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PointsEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt PointsEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, _, err = c.svc.AddPoints(ctx, evt.Uid, domain.PointsLog{
		Key:    evt.Key,
		Biz:    evt.Biz,
		BizId:  evt.BizId,
		Action: evt.Action,
		Change: evt.Points,
	})
	// 消息重投导致的重复直接忽略
	if err != nil && !errors.Is(err, service.ErrDuplicatedPoints) {
		c.logger.Error("加分失败",
			elog.FieldErr(err),
			elog.Any("消息体", evt),
		)
	}
	return nil
}

func (c *PointsEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
