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
	"github.com/promohub/promohub/internal/payout/internal/domain"
	"github.com/promohub/promohub/internal/payout/internal/service"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payouts")
	g.POST("/create", ginx.B[CreatePayoutReq](h.Create))
	g.POST("/process", ginx.B[ProcessPayoutReq](h.Process))
	g.POST("/list", ginx.B[ListPayoutsReq](h.List))
	g.POST("/balances", ginx.B[VendorBalanceReq](h.VendorBalance))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreatePayoutReq) (ginx.Result, error) {
	netAmount, err := decimal.NewFromString(req.NetAmount)
	if err != nil {
		return invalidInputResult, errors.New("invalid payout amount")
	}
	p, err := h.svc.CreatePayout(ctx, req.CompanyID, netAmount, req.Notes)
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		return invalidInputResult, err
	case errors.Is(err, service.ErrCompanyNotFound):
		return companyNotFoundResult, err
	case errors.Is(err, service.ErrInsufficientBalance):
		return insufficientBalanceResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPayout(p)}, nil
}

func (h *AdminHandler) Process(ctx *ginx.Context, req ProcessPayoutReq) (ginx.Result, error) {
	err := h.svc.ProcessPayout(ctx, req.PayoutID, req.BankReference)
	switch {
	case errors.Is(err, service.ErrPayoutNotFound):
		return payoutNotFoundResult, err
	case errors.Is(err, service.ErrInvalidTransition):
		return invalidTransitionResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListPayoutsReq) (ginx.Result, error) {
	if req.CompanyID > 0 {
		ps, err := h.svc.ListByCompanyID(ctx, req.CompanyID)
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{Data: newListResp(ps, int64(len(ps)))}, nil
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	ps, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newListResp(ps, total)}, nil
}

func (h *AdminHandler) VendorBalance(ctx *ginx.Context, req VendorBalanceReq) (ginx.Result, error) {
	b, err := h.svc.GetVendorBalance(ctx, req.CompanyID)
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		return companyNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newVendorBalance(b)}, nil
}

func newListResp(ps []domain.Payout, total int64) ListPayoutsResp {
	return ListPayoutsResp{
		Total: total,
		Payouts: slice.Map(ps, func(idx int, src domain.Payout) Payout {
			return newPayout(src)
		}),
	}
}
