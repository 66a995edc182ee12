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

package order

import (
	"github.com/promohub/promohub/internal/order/internal/domain"
	"github.com/promohub/promohub/internal/order/internal/service"
	"github.com/promohub/promohub/internal/order/internal/web"
)

type (
	Handler        = web.Handler
	WebhookHandler = web.WebhookHandler
	Service        = service.Service
	Order          = domain.Order
	OrderItem      = domain.OrderItem
	Payment        = domain.Payment
	OrderStatus    = domain.OrderStatus
	PaymentStatus  = domain.PaymentStatus
)

const (
	StatusPending   = domain.OrderStatusPending
	StatusCompleted = domain.OrderStatusCompleted
	StatusRefunded  = domain.OrderStatusRefunded

	PaymentStatusSucceeded = domain.PaymentStatusSucceeded
)

var (
	ErrOrderNotFound = service.ErrOrderNotFound
)

type Module struct {
	Hdl        *Handler
	WebhookHdl *WebhookHandler
	Svc        Service
}
