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

package company

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/promohub/promohub/internal/company/internal/repository"
	"github.com/promohub/promohub/internal/company/internal/repository/dao"
	"github.com/promohub/promohub/internal/company/internal/service"
	"github.com/promohub/promohub/internal/company/internal/web"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	repository.NewCompanyRepository,
	service.NewService)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		ServiceSet,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitService(db *egorm.Component) Service {
	wire.Build(ServiceSet)
	return nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CompanyDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCompanyGORMDAO(db)
}
