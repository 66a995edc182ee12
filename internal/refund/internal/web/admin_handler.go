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
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/promohub/promohub/internal/refund/internal/domain"
	"github.com/promohub/promohub/internal/refund/internal/errs"
	"github.com/promohub/promohub/internal/refund/internal/service"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/refunds")
	g.POST("/initiate", ginx.B[InitiateRefundReq](h.Initiate))
	g.POST("/eligibility", ginx.B[EligibilityReq](h.Eligibility))
	g.POST("/list", ginx.B[ListRefundsReq](h.List))
	g.POST("/success", ginx.B[RefundOutcomeReq](h.MarkSucceeded))
	g.POST("/fail", ginx.B[RefundOutcomeReq](h.MarkFailed))
}

func (h *AdminHandler) Initiate(ctx *ginx.Context, req InitiateRefundReq) (ginx.Result, error) {
	amount := decimal.Zero
	if req.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(req.Amount)
		if err != nil || amount.IsNegative() {
			return ginx.Result{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			}, errors.New("invalid refund amount")
		}
	}
	r, err := h.svc.InitiateRefund(ctx, req.OrderID, amount, req.Reason)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case errors.Is(err, service.ErrNotEligible):
		return ginx.Result{
			Code: errs.RefundNotEligible.Code,
			Msg:  err.Error(),
		}, err
	case errors.Is(err, service.ErrAmountExceedsCap):
		return amountExceedsCapResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: InitiateRefundResp{
			Refund: newRefund(r),
			Note:   "Refund recorded but not processed",
		},
	}, nil
}

func (h *AdminHandler) Eligibility(ctx *ginx.Context, req EligibilityReq) (ginx.Result, error) {
	elig, err := h.svc.CheckEligibility(ctx, req.OrderID)
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	resp := EligibilityResp{
		Eligible: elig.Eligible,
		Reason:   elig.Reason,
	}
	if elig.Eligible {
		resp.MaxAmount = elig.MaxAmount.StringFixed(2)
	}
	return ginx.Result{Data: resp}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListRefundsReq) (ginx.Result, error) {
	if req.OrderID > 0 {
		rs, err := h.svc.ListByOrderID(ctx, req.OrderID)
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{Data: newListResp(rs, int64(len(rs)))}, nil
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	rs, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newListResp(rs, total)}, nil
}

func (h *AdminHandler) MarkSucceeded(ctx *ginx.Context, req RefundOutcomeReq) (ginx.Result, error) {
	err := h.svc.HandleRefundSuccess(ctx, req.RefundID)
	switch {
	case errors.Is(err, service.ErrRefundNotFound):
		return refundNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) MarkFailed(ctx *ginx.Context, req RefundOutcomeReq) (ginx.Result, error) {
	err := h.svc.HandleRefundFailed(ctx, req.RefundID)
	switch {
	case errors.Is(err, service.ErrRefundNotFound):
		return refundNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func newListResp(rs []domain.Refund, total int64) ListRefundsResp {
	return ListRefundsResp{
		Total: total,
		Refunds: slice.Map(rs, func(idx int, src domain.Refund) Refund {
			return newRefund(src)
		}),
	}
}
