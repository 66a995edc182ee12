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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/promohub/promohub/internal/company/internal/domain"
	"github.com/promohub/promohub/internal/company/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/companies")
	g.POST("/save", ginx.B[SaveCompanyReq](h.Save))
	g.POST("/list", ginx.B[ListCompaniesReq](h.List))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveCompanyReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.Company.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveCompanyResp{ID: id}}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListCompaniesReq) (ginx.Result, error) {
	cs, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCompaniesResp{
			Total: total,
			Companies: slice.Map(cs, func(idx int, src domain.Company) Company {
				return newCompany(src)
			}),
		},
	}, nil
}
