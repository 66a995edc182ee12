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
	"github.com/promohub/promohub/internal/product/internal/domain"
	"github.com/shopspring/decimal"
)

type SaveProductReq struct {
	Product Product `json:"product"`
}

type SaveProductResp struct {
	ID int64 `json:"id"`
}

type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type ProductDetailReq struct {
	ID int64 `json:"id"`
}

type Product struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         string `json:"price"`
	DiscountPrice string `json:"discountPrice,omitempty"`
	CompanyID     int64  `json:"companyId"`
	IsActive      bool   `json:"isActive"`
}

func newProduct(p domain.Product) Product {
	res := Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		CompanyID:   p.CompanyID,
		IsActive:    p.IsActive,
	}
	if p.HasDiscount {
		res.DiscountPrice = p.DiscountPrice.String()
	}
	return res
}

func (p Product) toDomain() domain.Product {
	res := domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CompanyID:   p.CompanyID,
		IsActive:    p.IsActive,
	}
	res.Price, _ = decimal.NewFromString(p.Price)
	if p.DiscountPrice != "" {
		res.DiscountPrice, _ = decimal.NewFromString(p.DiscountPrice)
		res.HasDiscount = true
	}
	return res
}
