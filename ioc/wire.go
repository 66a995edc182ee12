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

package ioc

import (
	"github.com/google/wire"
	"github.com/promohub/promohub/internal/company"
	"github.com/promohub/promohub/internal/coupon"
	"github.com/promohub/promohub/internal/invoice"
	"github.com/promohub/promohub/internal/order"
	"github.com/promohub/promohub/internal/payout"
	"github.com/promohub/promohub/internal/pkg/middleware"
	"github.com/promohub/promohub/internal/product"
	"github.com/promohub/promohub/internal/refund"
	"github.com/promohub/promohub/internal/subscription"
	"github.com/promohub/promohub/internal/tax"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, middleware.NewMetricsBuilder)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		tax.InitModule,
		invoice.InitModule,
		coupon.InitModule,
		product.InitModule,
		company.InitModule,
		order.InitModule,
		refund.InitModule,
		payout.InitModule,
		subscription.InitModule,
		wire.FieldsOf(new(*tax.Module), "Svc"),
		wire.FieldsOf(new(*invoice.Module), "Svc"),
		wire.FieldsOf(new(*coupon.Module), "Svc"),
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*company.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "Svc"),
		initGinxServer,
		InitAdminServer,
		initConsumers)
	return new(App), nil
}

func initConsumers(payoutM *payout.Module) []Consumer {
	return []Consumer{payoutM.Consumer}
}
