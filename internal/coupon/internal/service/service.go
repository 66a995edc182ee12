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

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/promohub/promohub/internal/coupon/internal/domain"
	"github.com/promohub/promohub/internal/coupon/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=./service.go -destination=../../mocks/coupon.mock.go -package=couponmocks Service
type Service interface {
	// Evaluate resolves a coupon code against a subtotal. An unknown,
	// inactive, expired or below-minimum coupon silently yields a zero
	// discount; only storage failures surface as errors.
	Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (domain.Usage, error)
	MarkUsed(ctx context.Context, id int64) error
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error)
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal) (domain.Usage, error) {
	if code == "" {
		return domain.Usage{}, nil
	}
	c, err := s.repo.FindByCode(ctx, strings.ToUpper(code))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Usage{}, nil
	}
	if err != nil {
		return domain.Usage{}, err
	}
	if !s.usable(c, subtotal) {
		return domain.Usage{}, nil
	}
	return domain.Usage{
		Coupon:   c,
		Discount: s.discount(c, subtotal),
		Applied:  true,
	}, nil
}

func (s *service) usable(c domain.Coupon, subtotal decimal.Decimal) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiryDate > 0 && c.ExpiryDate <= time.Now().UnixMilli() {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	if !c.MinOrderValue.IsZero() && subtotal.LessThan(c.MinOrderValue) {
		return false
	}
	return true
}

func (s *service) discount(c domain.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if c.DiscountType == domain.DiscountTypePercentage {
		d := subtotal.Mul(c.DiscountValue.Div(hundred)).Round(2)
		if !c.MaxDiscount.IsZero() && d.GreaterThan(c.MaxDiscount) {
			return c.MaxDiscount
		}
		return d
	}
	// Fixed discounts are not clamped to the subtotal here; the order
	// calculator floors the taxable amount at zero.
	return c.DiscountValue
}

func (s *service) MarkUsed(ctx context.Context, id int64) error {
	return s.repo.IncrementUsedCount(ctx, id)
}

func (s *service) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	c.Code = strings.ToUpper(c.Code)
	return s.repo.Save(ctx, c)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Coupon, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Coupon
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return cs, total, eg.Wait()
}
