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

	"github.com/promohub/promohub/internal/company"
	"github.com/promohub/promohub/internal/payout/internal/domain"
	"github.com/promohub/promohub/internal/payout/internal/repository/cache"
	repomocks "github.com/promohub/promohub/internal/payout/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubCompanySvc struct {
	company.Service
	companies map[int64]company.Company
}

func (s *stubCompanySvc) FindByID(_ context.Context, id int64) (company.Company, error) {
	c, ok := s.companies[id]
	if !ok {
		return company.Company{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func newCompanySvc() company.Service {
	return &stubCompanySvc{companies: map[int64]company.Company{
		100: {ID: 100, Name: "Acme Ltd", CommissionRate: d("10")},
	}}
}

func TestCalculatePayout(t *testing.T) {
	fee, net := CalculatePayout(d("1000"), d("10"))
	assert.True(t, fee.Equal(d("100")), "fee = %s", fee)
	assert.True(t, net.Equal(d("900")), "net = %s", net)
}

func TestService_GetVendorBalance(t *testing.T) {
	t.Run("derives the balance from the ledger on a cache miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().GetCachedBalance(gomock.Any(), int64(100)).
			Return(domain.Balance{}, cache.ErrBalanceNotCached)
		repo.EXPECT().TotalCompletedSales(gomock.Any(), int64(100)).Return(d("10000"), nil)
		repo.EXPECT().TotalCompletedPayouts(gomock.Any(), int64(100)).Return(d("1000"), nil)
		repo.EXPECT().CacheBalance(gomock.Any(), gomock.Any()).Return(nil)

		svc := NewService(repo, newCompanySvc())
		b, err := svc.GetVendorBalance(context.Background(), 100)
		require.NoError(t, err)
		assert.True(t, b.TotalSales.Equal(d("10000")))
		assert.True(t, b.TotalCommission.Equal(d("1000")))
		assert.True(t, b.TotalPaidOut.Equal(d("1000")))
		assert.True(t, b.PendingPayout.Equal(d("8000")))
	})

	t.Run("repeated derivation is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().GetCachedBalance(gomock.Any(), int64(100)).
			Return(domain.Balance{}, cache.ErrBalanceNotCached).Times(2)
		repo.EXPECT().TotalCompletedSales(gomock.Any(), int64(100)).Return(d("10000"), nil).Times(2)
		repo.EXPECT().TotalCompletedPayouts(gomock.Any(), int64(100)).Return(d("1000"), nil).Times(2)
		repo.EXPECT().CacheBalance(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		svc := NewService(repo, newCompanySvc())
		first, err := svc.GetVendorBalance(context.Background(), 100)
		require.NoError(t, err)
		second, err := svc.GetVendorBalance(context.Background(), 100)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("serves the cached balance without touching the ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		cached := domain.Balance{
			CompanyID:       100,
			TotalSales:      d("10000"),
			TotalCommission: d("1000"),
			TotalPaidOut:    d("1000"),
			PendingPayout:   d("8000"),
		}
		repo.EXPECT().GetCachedBalance(gomock.Any(), int64(100)).Return(cached, nil)

		svc := NewService(repo, newCompanySvc())
		b, err := svc.GetVendorBalance(context.Background(), 100)
		require.NoError(t, err)
		assert.Equal(t, cached, b)
	})

	t.Run("pending payout never goes negative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().GetCachedBalance(gomock.Any(), int64(100)).
			Return(domain.Balance{}, cache.ErrBalanceNotCached)
		repo.EXPECT().TotalCompletedSales(gomock.Any(), int64(100)).Return(d("1000"), nil)
		repo.EXPECT().TotalCompletedPayouts(gomock.Any(), int64(100)).Return(d("950"), nil)
		repo.EXPECT().CacheBalance(gomock.Any(), gomock.Any()).Return(nil)

		svc := NewService(repo, newCompanySvc())
		b, err := svc.GetVendorBalance(context.Background(), 100)
		require.NoError(t, err)
		assert.True(t, b.PendingPayout.IsZero(), "pendingPayout = %s", b.PendingPayout)
	})

	t.Run("unknown company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().GetCachedBalance(gomock.Any(), int64(999)).
			Return(domain.Balance{}, cache.ErrBalanceNotCached)

		svc := NewService(repo, newCompanySvc())
		_, err := svc.GetVendorBalance(context.Background(), 999)
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestService_CreatePayout(t *testing.T) {
	newLedgerRepo := func(ctrl *gomock.Controller) *repomocks.MockPayoutRepository {
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().TotalCompletedSales(gomock.Any(), int64(100)).Return(d("10000"), nil)
		repo.EXPECT().TotalCompletedPayouts(gomock.Any(), int64(100)).Return(d("0"), nil)
		return repo
	}

	t.Run("fee inverts the commission split", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newLedgerRepo(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p domain.Payout) (int64, error) {
				assert.True(t, p.NetAmount.Equal(d("900")))
				assert.True(t, p.PlatformFee.Equal(d("100")), "fee = %s", p.PlatformFee)
				assert.True(t, p.GrossAmount.Equal(d("1000")))
				assert.Equal(t, domain.PayoutStatusPending, p.Status)
				return 7, nil
			})

		svc := NewService(repo, newCompanySvc())
		p, err := svc.CreatePayout(context.Background(), 100, d("900"), "march settlement")
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.ID)
		assert.Equal(t, "march settlement", p.Notes)
	})

	t.Run("rejects amounts above the pending balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := newLedgerRepo(ctrl)

		svc := NewService(repo, newCompanySvc())
		_, err := svc.CreatePayout(context.Background(), 100, d("9000.01"), "")
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)

		svc := NewService(repo, newCompanySvc())
		_, err := svc.CreatePayout(context.Background(), 100, d("0"), "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)

		svc := NewService(repo, newCompanySvc())
		_, err := svc.CreatePayout(context.Background(), 999, d("100"), "")
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestService_ProcessPayout(t *testing.T) {
	t.Run("completes a pending payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(7)).
			Return(domain.Payout{ID: 7, CompanyID: 100, Status: domain.PayoutStatusPending}, nil)
		repo.EXPECT().MarkProcessing(gomock.Any(), int64(7)).Return(true, nil)
		repo.EXPECT().MarkCompleted(gomock.Any(), int64(7), "NEFT-123").Return(nil)

		svc := NewService(repo, newCompanySvc())
		require.NoError(t, svc.ProcessPayout(context.Background(), 7, "NEFT-123"))
	})

	t.Run("rejects payouts that are not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(7)).
			Return(domain.Payout{ID: 7, CompanyID: 100, Status: domain.PayoutStatusCompleted}, nil)
		repo.EXPECT().MarkProcessing(gomock.Any(), int64(7)).Return(false, nil)

		svc := NewService(repo, newCompanySvc())
		err := svc.ProcessPayout(context.Background(), 7, "NEFT-123")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockPayoutRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(domain.Payout{}, gorm.ErrRecordNotFound)

		svc := NewService(repo, newCompanySvc())
		err := svc.ProcessPayout(context.Background(), 404, "NEFT-123")
		assert.ErrorIs(t, err, ErrPayoutNotFound)
	})
}
