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

package solution

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/nird-project/nird/internal/solution/internal/repository"
	"github.com/nird-project/nird/internal/solution/internal/repository/cache"
	"github.com/nird-project/nird/internal/solution/internal/repository/dao"
	"github.com/nird-project/nird/internal/solution/internal/service"
)

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, ec ecache.Cache) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		d := dao.NewGORMSolutionDAO(db)
		c := cache.NewSolutionECache(ec)
		r := repository.NewCachedSolutionRepository(d, c)
		svc = service.NewService(r)
	})
	return svc
}
