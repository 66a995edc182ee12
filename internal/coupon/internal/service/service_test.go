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
	"testing"
	"time"

	"github.com/promohub/promohub/internal/coupon/internal/domain"
	"github.com/promohub/promohub/internal/coupon/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_usable(t *testing.T) {
	svc := &service{}
	future := time.Now().Add(24 * time.Hour).UnixMilli()
	past := time.Now().Add(-24 * time.Hour).UnixMilli()

	testCases := []struct {
		name     string
		coupon   domain.Coupon
		subtotal string
		want     bool
	}{
		{
			name:     "active coupon with no constraints",
			coupon:   domain.Coupon{IsActive: true},
			subtotal: "100",
			want:     true,
		},
		{
			name:     "inactive coupon",
			coupon:   domain.Coupon{IsActive: false},
			subtotal: "100",
			want:     false,
		},
		{
			name:     "expired coupon",
			coupon:   domain.Coupon{IsActive: true, ExpiryDate: past},
			subtotal: "100",
			want:     false,
		},
		{
			name:     "not yet expired coupon",
			coupon:   domain.Coupon{IsActive: true, ExpiryDate: future},
			subtotal: "100",
			want:     true,
		},
		{
			name:     "usage limit reached",
			coupon:   domain.Coupon{IsActive: true, UsageLimit: 5, UsedCount: 5},
			subtotal: "100",
			want:     false,
		},
		{
			name:     "usage limit not reached",
			coupon:   domain.Coupon{IsActive: true, UsageLimit: 5, UsedCount: 4},
			subtotal: "100",
			want:     true,
		},
		{
			name:     "subtotal below minimum order value",
			coupon:   domain.Coupon{IsActive: true, MinOrderValue: d("500")},
			subtotal: "400",
			want:     false,
		},
		{
			name:     "subtotal equal to minimum order value",
			coupon:   domain.Coupon{IsActive: true, MinOrderValue: d("500")},
			subtotal: "500",
			want:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.usable(tc.coupon, d(tc.subtotal)))
		})
	}
}

func TestService_discount(t *testing.T) {
	svc := &service{}

	testCases := []struct {
		name     string
		coupon   domain.Coupon
		subtotal string
		want     string
	}{
		{
			name: "percentage discount",
			coupon: domain.Coupon{
				DiscountType:  domain.DiscountTypePercentage,
				DiscountValue: d("10"),
			},
			subtotal: "1000",
			want:     "100",
		},
		{
			name: "percentage discount capped by max discount",
			coupon: domain.Coupon{
				DiscountType:  domain.DiscountTypePercentage,
				DiscountValue: d("20"),
				MaxDiscount:   d("100"),
			},
			subtotal: "1000",
			want:     "100",
		},
		{
			name: "percentage discount below cap",
			coupon: domain.Coupon{
				DiscountType:  domain.DiscountTypePercentage,
				DiscountValue: d("20"),
				MaxDiscount:   d("100"),
			},
			subtotal: "400",
			want:     "80",
		},
		{
			name: "percentage discount rounded to two decimals",
			coupon: domain.Coupon{
				DiscountType:  domain.DiscountTypePercentage,
				DiscountValue: d("15"),
			},
			subtotal: "99.99",
			want:     "15",
		},
		{
			name: "fixed discount",
			coupon: domain.Coupon{
				DiscountType:  domain.DiscountTypeFixed,
				DiscountValue: d("50"),
			},
			subtotal: "1000",
			want:     "50",
		},
		{
			name: "fixed discount larger than subtotal is not clamped here",
			coupon: domain.Coupon{
				DiscountType:  domain.DiscountTypeFixed,
				DiscountValue: d("500"),
			},
			subtotal: "300",
			want:     "500",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.discount(tc.coupon, d(tc.subtotal))
			assert.True(t, got.Equal(d(tc.want)), "discount = %s", got)
		})
	}
}

type stubRepo struct {
	repository.CouponRepository
	coupon domain.Coupon
	err    error
}

func (s *stubRepo) FindByCode(_ context.Context, code string) (domain.Coupon, error) {
	if s.err != nil {
		return domain.Coupon{}, s.err
	}
	if s.coupon.Code != code {
		return domain.Coupon{}, gorm.ErrRecordNotFound
	}
	return s.coupon, nil
}

func TestService_Evaluate(t *testing.T) {
	t.Run("unknown code yields zero discount without error", func(t *testing.T) {
		svc := NewService(&stubRepo{})
		usage, err := svc.Evaluate(context.Background(), "NOPE", d("1000"))
		require.NoError(t, err)
		assert.False(t, usage.Applied)
		assert.True(t, usage.Discount.IsZero())
	})

	t.Run("lookup upper-cases the supplied code", func(t *testing.T) {
		svc := NewService(&stubRepo{coupon: domain.Coupon{
			ID:            7,
			Code:          "WELCOME10",
			IsActive:      true,
			DiscountType:  domain.DiscountTypePercentage,
			DiscountValue: d("10"),
		}})
		usage, err := svc.Evaluate(context.Background(), "welcome10", d("1000"))
		require.NoError(t, err)
		assert.True(t, usage.Applied)
		assert.Equal(t, int64(7), usage.Coupon.ID)
		assert.True(t, usage.Discount.Equal(d("100")))
	})

	t.Run("ineligible coupon yields zero discount without error", func(t *testing.T) {
		svc := NewService(&stubRepo{coupon: domain.Coupon{
			Code:          "BIGSPEND",
			IsActive:      true,
			DiscountType:  domain.DiscountTypeFixed,
			DiscountValue: d("50"),
			MinOrderValue: d("500"),
		}})
		usage, err := svc.Evaluate(context.Background(), "BIGSPEND", d("400"))
		require.NoError(t, err)
		assert.False(t, usage.Applied)
		assert.True(t, usage.Discount.IsZero())
	})
}
