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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/promohub/promohub/internal/product/internal/domain"
	"github.com/promohub/promohub/internal/product/internal/repository/dao"
	"github.com/shopspring/decimal"
)

type ProductRepository interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindActiveByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

type productRepository struct {
	dao dao.ProductDAO
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(p))
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p), nil
}

func (r *productRepository) FindActiveByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	ps, err := r.dao.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	res := domain.Product{
		ID:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CompanyID:   p.CompanyId,
		IsActive:    p.IsActive,
		Ctime:       p.Ctime,
		Utime:       p.Utime,
	}
	if p.DiscountPrice.Valid {
		res.DiscountPrice = p.DiscountPrice.Decimal
		res.HasDiscount = true
	}
	return res
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: decimal.NullDecimal{Decimal: p.DiscountPrice, Valid: p.HasDiscount},
		CompanyId:     p.CompanyID,
		IsActive:      p.IsActive,
	}
}
