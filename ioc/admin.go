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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/promohub/promohub/internal/company"
	"github.com/promohub/promohub/internal/coupon"
	"github.com/promohub/promohub/internal/payout"
	"github.com/promohub/promohub/internal/pkg/middleware"
	"github.com/promohub/promohub/internal/product"
	"github.com/promohub/promohub/internal/refund"
)

type AdminServer *egin.Component

func InitAdminServer(mb *middleware.MetricsBuilder,
	couponM *coupon.Module,
	productM *product.Module,
	companyM *company.Module,
	refundM *refund.Module,
	payoutM *payout.Module,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(mb.Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "promohub.in")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission())
	couponM.AdminHdl.PrivateRoutes(res.Engine)
	productM.AdminHdl.PrivateRoutes(res.Engine)
	companyM.AdminHdl.PrivateRoutes(res.Engine)
	refundM.AdminHdl.PrivateRoutes(res.Engine)
	payoutM.AdminHdl.PrivateRoutes(res.Engine)
	return res
}

func AdminPermission() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("unauthorized access to admin API", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get("role").StringOrDefault("") != "admin" {
			ctx.AbortWithStatus(http.StatusInternalServerError)
			elog.Error("unauthorized access to admin API, role missing")
			return
		}
	}
}
