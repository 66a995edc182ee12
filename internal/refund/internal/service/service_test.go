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

	"github.com/promohub/promohub/internal/order"
	"github.com/promohub/promohub/internal/refund/internal/domain"
	"github.com/promohub/promohub/internal/refund/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubOrderSvc struct {
	order.Service
	order    order.Order
	outcomes []bool
}

func (s *stubOrderSvc) FindByID(_ context.Context, id int64) (order.Order, error) {
	if s.order.ID != id {
		return order.Order{}, order.ErrOrderNotFound
	}
	return s.order, nil
}

func (s *stubOrderSvc) ApplyRefundOutcome(_ context.Context, _ int64, fullyRefunded bool) error {
	s.outcomes = append(s.outcomes, fullyRefunded)
	return nil
}

type stubRepo struct {
	repository.RefundRepository
	refunds  map[int64]domain.Refund
	refunded decimal.Decimal
	created  []domain.Refund
	statuses map[int64]domain.RefundStatus
}

func (r *stubRepo) Create(_ context.Context, rf domain.Refund) (int64, error) {
	r.created = append(r.created, rf)
	return int64(len(r.created)), nil
}

func (r *stubRepo) FindByID(_ context.Context, id int64) (domain.Refund, error) {
	rf, ok := r.refunds[id]
	if !ok {
		return domain.Refund{}, gorm.ErrRecordNotFound
	}
	return rf, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id int64, status domain.RefundStatus, _ int64) error {
	if r.statuses == nil {
		r.statuses = map[int64]domain.RefundStatus{}
	}
	r.statuses[id] = status
	return nil
}

func (r *stubRepo) SumSucceededByOrderID(_ context.Context, _ int64) (decimal.Decimal, error) {
	return r.refunded, nil
}

func completedOrder(ageDays int) order.Order {
	return order.Order{
		ID:          42,
		SN:          "sn-42",
		BuyerID:     1,
		TotalAmount: d("1000"),
		Status:      order.StatusCompleted,
		Payment:     order.Payment{ID: 9, OrderID: 42, Status: order.PaymentStatusSucceeded},
		Ctime:       time.Now().Add(-time.Duration(ageDays) * 24 * time.Hour).UnixMilli(),
	}
}

func TestService_CheckEligibility(t *testing.T) {
	testCases := []struct {
		name       string
		order      order.Order
		refunded   string
		wantOK     bool
		wantReason string
		wantMax    string
	}{
		{
			name:     "completed and paid order within the window",
			order:    completedOrder(1),
			refunded: "0",
			wantOK:   true,
			wantMax:  "1000",
		},
		{
			name: "pending order",
			order: func() order.Order {
				o := completedOrder(1)
				o.Status = order.StatusPending
				return o
			}(),
			refunded:   "0",
			wantReason: "Only completed orders can be refunded",
		},
		{
			name: "payment not succeeded",
			order: func() order.Order {
				o := completedOrder(1)
				o.Payment.Status = order.PaymentStatus(3)
				return o
			}(),
			refunded:   "0",
			wantReason: "Order payment was not successful",
		},
		{
			name:       "window expired",
			order:      completedOrder(8),
			refunded:   "0",
			wantReason: "Refund window of 7 days has expired",
		},
		{
			name:       "already fully refunded",
			order:      completedOrder(1),
			refunded:   "1000",
			wantReason: "Order amount has already been fully refunded",
		},
		{
			name:     "partially refunded leaves the remainder",
			order:    completedOrder(1),
			refunded: "300",
			wantOK:   true,
			wantMax:  "700",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&stubRepo{refunded: d(tc.refunded)}, &stubOrderSvc{order: tc.order})
			elig, err := svc.CheckEligibility(context.Background(), 42)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, elig.Eligible)
			assert.Equal(t, tc.wantReason, elig.Reason)
			if tc.wantMax != "" {
				assert.True(t, elig.MaxAmount.Equal(d(tc.wantMax)), "maxAmount = %s", elig.MaxAmount)
			}
		})
	}

	t.Run("unknown order", func(t *testing.T) {
		svc := NewService(&stubRepo{}, &stubOrderSvc{order: completedOrder(1)})
		_, err := svc.CheckEligibility(context.Background(), 999)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_InitiateRefund(t *testing.T) {
	t.Run("defaults to the full remainder", func(t *testing.T) {
		repo := &stubRepo{refunded: d("300")}
		svc := NewService(repo, &stubOrderSvc{order: completedOrder(1)})
		r, err := svc.InitiateRefund(context.Background(), 42, decimal.Zero, "damaged item")
		require.NoError(t, err)
		assert.True(t, r.Amount.Equal(d("700")))
		assert.Equal(t, domain.RefundStatusPending, r.Status)
		require.Len(t, repo.created, 1)
		assert.Equal(t, "damaged item", repo.created[0].Reason)
	})

	t.Run("rejects amounts above the remainder", func(t *testing.T) {
		svc := NewService(&stubRepo{refunded: d("300")}, &stubOrderSvc{order: completedOrder(1)})
		_, err := svc.InitiateRefund(context.Background(), 42, d("700.01"), "")
		assert.ErrorIs(t, err, ErrAmountExceedsCap)
	})

	t.Run("surfaces the eligibility reason", func(t *testing.T) {
		o := completedOrder(1)
		o.Status = order.StatusPending
		svc := NewService(&stubRepo{}, &stubOrderSvc{order: o})
		_, err := svc.InitiateRefund(context.Background(), 42, decimal.Zero, "")
		require.ErrorIs(t, err, ErrNotEligible)
		assert.Contains(t, err.Error(), "Only completed orders can be refunded")
	})
}

func TestService_HandleRefundSuccess(t *testing.T) {
	t.Run("full refund moves order and payment to refunded", func(t *testing.T) {
		repo := &stubRepo{
			refunds:  map[int64]domain.Refund{5: {ID: 5, OrderID: 42, Amount: d("1000"), Status: domain.RefundStatusPending}},
			refunded: d("1000"),
		}
		orderSvc := &stubOrderSvc{order: completedOrder(1)}
		svc := NewService(repo, orderSvc)

		require.NoError(t, svc.HandleRefundSuccess(context.Background(), 5))
		assert.Equal(t, domain.RefundStatusSucceeded, repo.statuses[5])
		require.Len(t, orderSvc.outcomes, 1)
		assert.True(t, orderSvc.outcomes[0])
	})

	t.Run("partial refund marks payment partially refunded", func(t *testing.T) {
		repo := &stubRepo{
			refunds:  map[int64]domain.Refund{5: {ID: 5, OrderID: 42, Amount: d("400"), Status: domain.RefundStatusPending}},
			refunded: d("400"),
		}
		orderSvc := &stubOrderSvc{order: completedOrder(1)}
		svc := NewService(repo, orderSvc)

		require.NoError(t, svc.HandleRefundSuccess(context.Background(), 5))
		require.Len(t, orderSvc.outcomes, 1)
		assert.False(t, orderSvc.outcomes[0])
	})

	t.Run("replay of a succeeded refund is a no-op", func(t *testing.T) {
		repo := &stubRepo{
			refunds:  map[int64]domain.Refund{5: {ID: 5, OrderID: 42, Amount: d("1000"), Status: domain.RefundStatusSucceeded}},
			refunded: d("1000"),
		}
		orderSvc := &stubOrderSvc{order: completedOrder(1)}
		svc := NewService(repo, orderSvc)

		require.NoError(t, svc.HandleRefundSuccess(context.Background(), 5))
		assert.Empty(t, repo.statuses)
		assert.Empty(t, orderSvc.outcomes)
	})

	t.Run("unknown refund", func(t *testing.T) {
		svc := NewService(&stubRepo{refunds: map[int64]domain.Refund{}}, &stubOrderSvc{order: completedOrder(1)})
		err := svc.HandleRefundSuccess(context.Background(), 999)
		assert.ErrorIs(t, err, ErrRefundNotFound)
	})
}
