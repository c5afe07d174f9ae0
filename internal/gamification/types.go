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

package gamification

import (
	"github.com/nird-project/nird/internal/gamification/internal/domain"
	"github.com/nird-project/nird/internal/gamification/internal/event"
	"github.com/nird-project/nird/internal/gamification/internal/service"
	"github.com/nird-project/nird/internal/gamification/internal/web"
)

type Handler = web.Handler
type Service = service.Service
type Profile = domain.Profile
type Level = domain.Level

type Module struct {
	Hdl *Handler
	Svc Service
	// C 消费其他模块发出来的加分事件，启动时机在 ioc
	C *event.PointsEventConsumer
}
