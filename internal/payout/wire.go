// Copyright 2024 promohub
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

//go:build wireinject

package payout

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/promohub/promohub/internal/company"
	"github.com/promohub/promohub/internal/payout/internal/event"
	"github.com/promohub/promohub/internal/payout/internal/repository"
	"github.com/promohub/promohub/internal/payout/internal/repository/cache"
	"github.com/promohub/promohub/internal/payout/internal/repository/dao"
	"github.com/promohub/promohub/internal/payout/internal/service"
	"github.com/promohub/promohub/internal/payout/internal/web"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	cache.NewBalanceECache,
	repository.NewPayoutRepository,
	event.NewOrderCompletedConsumer,
	service.NewService,
	web.NewAdminHandler)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, companySvc company.Service) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PayoutDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPayoutGORMDAO(db)
}
