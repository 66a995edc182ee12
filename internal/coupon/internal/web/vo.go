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
	"github.com/promohub/promohub/internal/coupon/internal/domain"
	"github.com/shopspring/decimal"
)

type SaveCouponReq struct {
	Coupon Coupon `json:"coupon"`
}

type SaveCouponResp struct {
	ID int64 `json:"id"`
}

type ListCouponsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListCouponsResp struct {
	Total   int64    `json:"total,omitempty"`
	Coupons []Coupon `json:"coupons,omitempty"`
}

type Coupon struct {
	ID            int64  `json:"id,omitempty"`
	Code          string `json:"code"`
	DiscountType  uint8  `json:"discountType"`
	DiscountValue string `json:"discountValue"`
	MinOrderValue string `json:"minOrderValue,omitempty"`
	MaxDiscount   string `json:"maxDiscount,omitempty"`
	UsageLimit    int64  `json:"usageLimit,omitempty"`
	UsedCount     int64  `json:"usedCount,omitempty"`
	ExpiryDate    int64  `json:"expiryDate,omitempty"`
	IsActive      bool   `json:"isActive"`
}

func newCoupon(c domain.Coupon) Coupon {
	res := Coupon{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  c.DiscountType.ToUint8(),
		DiscountValue: c.DiscountValue.String(),
		UsageLimit:    c.UsageLimit,
		UsedCount:     c.UsedCount,
		ExpiryDate:    c.ExpiryDate,
		IsActive:      c.IsActive,
	}
	if !c.MinOrderValue.IsZero() {
		res.MinOrderValue = c.MinOrderValue.String()
	}
	if !c.MaxDiscount.IsZero() {
		res.MaxDiscount = c.MaxDiscount.String()
	}
	return res
}

func (c Coupon) toDomain() domain.Coupon {
	res := domain.Coupon{
		ID:           c.ID,
		Code:         c.Code,
		DiscountType: domain.DiscountType(c.DiscountType),
		UsageLimit:   c.UsageLimit,
		ExpiryDate:   c.ExpiryDate,
		IsActive:     c.IsActive,
	}
	res.DiscountValue, _ = decimal.NewFromString(c.DiscountValue)
	if c.MinOrderValue != "" {
		res.MinOrderValue, _ = decimal.NewFromString(c.MinOrderValue)
	}
	if c.MaxDiscount != "" {
		res.MaxDiscount, _ = decimal.NewFromString(c.MaxDiscount)
	}
	return res
}
