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

package forum

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/nird-project/nird/internal/forum/internal/event"
	"github.com/nird-project/nird/internal/forum/internal/repository"
	"github.com/nird-project/nird/internal/forum/internal/repository/dao"
	"github.com/nird-project/nird/internal/forum/internal/service"
	"github.com/nird-project/nird/internal/user"
)

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ, userSvc user.UserService) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		producer, err := event.NewPointsEventProducer(q)
		if err != nil {
			panic(err)
		}
		d := dao.NewGORMForumDAO(db)
		r := repository.NewForumRepository(d)
		svc = service.NewService(r, userSvc, producer)
	})
	return svc
}
