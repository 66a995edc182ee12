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

package order

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/promohub/promohub/internal/company"
	"github.com/promohub/promohub/internal/coupon"
	"github.com/promohub/promohub/internal/invoice"
	"github.com/promohub/promohub/internal/order/internal/event"
	"github.com/promohub/promohub/internal/order/internal/gateway"
	"github.com/promohub/promohub/internal/order/internal/repository"
	"github.com/promohub/promohub/internal/order/internal/repository/dao"
	"github.com/promohub/promohub/internal/order/internal/service"
	"github.com/promohub/promohub/internal/order/internal/web"
	"github.com/promohub/promohub/internal/pkg/sequencenumber"
	"github.com/promohub/promohub/internal/product"
	"github.com/promohub/promohub/internal/tax"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	InitGateway,
	InitSellerConfig,
	sequencenumber.NewGenerator,
	event.NewOrderCompletedProducer,
	repository.NewOrderRepository,
	service.NewService,
	web.NewHandler,
	web.NewWebhookHandler)

func InitModule(db *egorm.Component, q mq.MQ,
	productSvc product.Service,
	companySvc company.Service,
	couponSvc coupon.Service,
	taxSvc tax.Service,
	invoiceSvc invoice.Service) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitGateway() gateway.Gateway {
	return gateway.NewRazorpayGateway(gateway.Config{
		KeyID:         econf.GetString("razorpay.keyId"),
		KeySecret:     econf.GetString("razorpay.keySecret"),
		WebhookSecret: econf.GetString("razorpay.webhookSecret"),
	})
}

func InitSellerConfig() service.SellerConfig {
	return service.SellerConfig{
		Name:    econf.GetString("seller.name"),
		Address: econf.GetString("seller.address"),
		GSTIN:   econf.GetString("seller.gstin"),
	}
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
