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
	"github.com/promohub/promohub/internal/subscription/internal/domain"
	"github.com/promohub/promohub/internal/subscription/internal/errs"
	"github.com/promohub/promohub/internal/subscription/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/subscriptions")
	g.POST("", ginx.BS[SubscribeReq](h.Subscribe))
	g.POST("/plans", ginx.W(h.ListPlans))
}

func (h *Handler) Subscribe(ctx *ginx.Context, req SubscribeReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Subscribe(ctx, sess.Claims().Uid, req.PlanID)
	if errors.Is(err, service.ErrSubscriptionsDisabled) {
		return ginx.Result{
			Code: errs.SubscriptionsDisabled.Code,
			Msg:  errs.SubscriptionsDisabled.Msg,
		}, err
	}
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListPlans(ctx *ginx.Context) (ginx.Result, error) {
	plans, err := h.svc.ListPlans(ctx)
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{
		Data: slice.Map(plans, func(idx int, src domain.Plan) Plan {
			return newPlan(src)
		}),
	}, nil
}
