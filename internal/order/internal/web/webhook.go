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

package web

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/promohub/promohub/internal/order/internal/gateway"
	"github.com/promohub/promohub/internal/order/internal/service"
)

// WebhookHandler receives the gateway's asynchronous events. They are
// advisory backstops to the client-driven verify call; the raw-body
// signature check gates all processing.
type WebhookHandler struct {
	svc    service.Service
	gw     gateway.Gateway
	logger *elog.Component
}

func NewWebhookHandler(svc service.Service, gw gateway.Gateway) *WebhookHandler {
	return &WebhookHandler{svc: svc, gw: gw, logger: elog.DefaultLogger}
}

func (h *WebhookHandler) PublicRoutes(server *gin.Engine) {
	server.POST("/webhooks/razorpay", h.Handle)
}

func (h *WebhookHandler) PrivateRoutes(_ *gin.Engine) {}

type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (h *WebhookHandler) Handle(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ginx.Result{Msg: "unreadable body"})
		return
	}
	signature := ctx.GetHeader("X-Razorpay-Signature")
	if !h.gw.VerifyWebhookSignature(body, signature) {
		ctx.JSON(http.StatusBadRequest, ginx.Result{Msg: "invalid signature"})
		return
	}

	var evt webhookEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		ctx.JSON(http.StatusBadRequest, ginx.Result{Msg: "malformed event"})
		return
	}

	entity := evt.Payload.Payment.Entity
	switch evt.Event {
	case "payment.captured", "order.paid":
		err = h.svc.HandleWebhookPaymentCaptured(ctx.Request.Context(), entity.OrderID, entity.ID)
	case "payment.failed":
		err = h.svc.HandlePaymentFailed(ctx.Request.Context(), entity.OrderID, entity.ErrorDescription)
	default:
		// Unknown event types are no-ops, never errors.
		h.logger.Info("ignoring unhandled gateway event", elog.String("event", evt.Event))
	}
	if err != nil {
		h.logger.Error("process gateway webhook failed",
			elog.String("event", evt.Event),
			elog.String("gatewayOrderId", entity.OrderID),
			elog.FieldErr(err))
	}
	// Structurally valid, signature-verified requests are always
	// acknowledged so the gateway stops retrying.
	ctx.JSON(http.StatusOK, ginx.Result{Msg: "received"})
}
