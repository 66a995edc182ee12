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
	"regexp"
	"testing"
	"time"

	"github.com/promohub/promohub/internal/invoice/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_GenerateNumber(t *testing.T) {
	svc := NewServiceWith(
		func() time.Time { return time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC) },
		func(n int) int { return 42 },
	)
	assert.Equal(t, "INV-2403-0042", svc.GenerateNumber())

	format := regexp.MustCompile(`^INV-\d{4}-\d{4}$`)
	real := NewService()
	for i := 0; i < 10; i++ {
		assert.Regexp(t, format, real.GenerateNumber())
	}
}

func TestService_Render(t *testing.T) {
	svc := NewService()

	base := domain.Data{
		InvoiceNumber: "INV-2403-0042",
		IssuedAt:      time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC).UnixMilli(),
		OrderSN:       "17104987000001abcd",
		BuyerName:     "Test Buyer",
		BuyerState:    "Karnataka",
		SellerName:    "PromoHub Retail Pvt Ltd",
		SellerAddress: "Bengaluru, Karnataka",
		SellerGSTIN:   "29AABCT1332L1ZT",
		Items: []domain.LineItem{
			{Name: "Widget", Quantity: 2, UnitPrice: d("100"), TotalPrice: d("200")},
		},
		Subtotal:    d("200"),
		CGST:        d("18"),
		SGST:        d("18"),
		TotalAmount: d("236"),
	}

	t.Run("intra-state invoice shows CGST and SGST rows only", func(t *testing.T) {
		html, err := svc.Render(base)
		require.NoError(t, err)
		assert.Contains(t, html, "CGST (9%)")
		assert.Contains(t, html, "SGST (9%)")
		assert.NotContains(t, html, "IGST")
		assert.NotContains(t, html, "Discount")
		assert.Contains(t, html, "236.00")
	})

	t.Run("inter-state invoice shows IGST row only", func(t *testing.T) {
		data := base
		data.CGST, data.SGST = decimal.Zero, decimal.Zero
		data.IGST = d("36")
		html, err := svc.Render(data)
		require.NoError(t, err)
		assert.Contains(t, html, "IGST (18%)")
		assert.NotContains(t, html, "CGST")
		assert.NotContains(t, html, "SGST")
	})

	t.Run("discount row appears only when positive", func(t *testing.T) {
		data := base
		data.DiscountAmount = d("20")
		html, err := svc.Render(data)
		require.NoError(t, err)
		assert.Contains(t, html, "Discount")
		assert.Contains(t, html, "-20.00")
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		first, err := svc.Render(base)
		require.NoError(t, err)
		second, err := svc.Render(base)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
