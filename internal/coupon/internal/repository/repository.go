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
	"github.com/promohub/promohub/internal/coupon/internal/domain"
	"github.com/promohub/promohub/internal/coupon/internal/repository/dao"
	"github.com/shopspring/decimal"

	"database/sql"
)

type CouponRepository interface {
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	IncrementUsedCount(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, error)
	Count(ctx context.Context) (int64, error)
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

type couponRepository struct {
	dao dao.CouponDAO
}

func (r *couponRepository) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) IncrementUsedCount(ctx context.Context, id int64) error {
	return r.dao.IncrementUsedCount(ctx, id)
}

func (r *couponRepository) List(ctx context.Context, offset, limit int) ([]domain.Coupon, error) {
	cs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), nil
}

func (r *couponRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	res := domain.Coupon{
		ID:            c.Id,
		Code:          c.Code,
		DiscountType:  domain.DiscountType(c.DiscountType),
		DiscountValue: c.DiscountValue,
		UsedCount:     c.UsedCount,
		IsActive:      c.IsActive,
		Ctime:         c.Ctime,
		Utime:         c.Utime,
	}
	if c.MinOrderValue.Valid {
		res.MinOrderValue = c.MinOrderValue.Decimal
	}
	if c.MaxDiscount.Valid {
		res.MaxDiscount = c.MaxDiscount.Decimal
	}
	if c.UsageLimit.Valid {
		res.UsageLimit = c.UsageLimit.Int64
	}
	if c.ExpiryDate.Valid {
		res.ExpiryDate = c.ExpiryDate.Int64
	}
	return res
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:            c.ID,
		Code:          c.Code,
		DiscountType:  c.DiscountType.ToUint8(),
		DiscountValue: c.DiscountValue,
		MinOrderValue: decimal.NullDecimal{Decimal: c.MinOrderValue, Valid: !c.MinOrderValue.IsZero()},
		MaxDiscount:   decimal.NullDecimal{Decimal: c.MaxDiscount, Valid: !c.MaxDiscount.IsZero()},
		UsageLimit:    sql.NullInt64{Int64: c.UsageLimit, Valid: c.UsageLimit > 0},
		UsedCount:     c.UsedCount,
		ExpiryDate:    sql.NullInt64{Int64: c.ExpiryDate, Valid: c.ExpiryDate > 0},
		IsActive:      c.IsActive,
	}
}
