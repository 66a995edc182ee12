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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/promohub/promohub/internal/order/internal/domain"
	"github.com/promohub/promohub/internal/order/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/checkout/calculate", ginx.BS[CalculateSummaryReq](h.CalculateSummary))
	server.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
	server.POST("/payments/verify", ginx.BS[VerifyPaymentReq](h.VerifyPayment))
	g := server.Group("/order")
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	server.POST("/invoices/detail", ginx.BS[InvoiceDetailReq](h.RetrieveInvoice))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CalculateSummary previews the pricing breakdown of a cart. Nothing
// is persisted; checkout recomputes the same numbers server-side.
func (h *Handler) CalculateSummary(ctx *ginx.Context, req CalculateSummaryReq, _ session.Session) (ginx.Result, error) {
	summary, err := h.svc.CalculateSummary(ctx.Request.Context(), h.toCartItems(req.Items), req.CouponCode, req.BuyerState)
	switch {
	case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrInvalidQuantity):
		return invalidInputResult, err
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSummary(summary)}, nil
}

// Checkout persists the order and opens the gateway payment session in
// one request.
func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	order, err := h.svc.CreateOrder(ctx.Request.Context(), domain.CheckoutRequest{
		BuyerID:         uid,
		BuyerName:       req.BuyerName,
		Items:           h.toCartItems(req.Items),
		CouponCode:      req.CouponCode,
		BuyerState:      req.BuyerState,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	})
	switch {
	case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrInvalidQuantity):
		return invalidInputResult, err
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, err
	case err != nil:
		return systemErrorResult, err
	}
	gw, err := h.svc.CreateGatewayOrder(ctx.Request.Context(), uid, order.ID)
	if errors.Is(err, service.ErrGatewayUnavailable) {
		return gatewayUnavailableResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CheckoutResp{
			OrderSN:        order.SN,
			GatewayOrderID: gw.GatewayOrderID,
			Amount:         gw.Amount.String(),
			Currency:       gw.Currency,
			KeyID:          gw.KeyID,
		},
	}, nil
}

// VerifyPayment is the client-driven confirmation after the gateway
// checkout widget collects a payment.
func (h *Handler) VerifyPayment(ctx *ginx.Context, req VerifyPaymentReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.HandlePaymentSuccess(ctx.Request.Context(),
		req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvalidSignature):
		return invalidSignatureResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListByBuyer(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindBySN(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: RetrieveOrderDetailResp{Order: newOrder(order)}}, nil
}

func (h *Handler) RetrieveInvoice(ctx *ginx.Context, req InvoiceDetailReq, sess session.Session) (ginx.Result, error) {
	html, err := h.svc.RenderInvoice(ctx.Request.Context(), sess.Claims().Uid, req.OrderSN)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrInvoiceNotFound):
		return invoiceNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: InvoiceDetailResp{HTML: html}}, nil
}

func (h *Handler) toCartItems(items []CartItem) []domain.CartItem {
	return slice.Map(items, func(idx int, src CartItem) domain.CartItem {
		return domain.CartItem{
			ProductID: src.ProductID,
			Quantity:  src.Quantity,
		}
	})
}
