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

	"github.com/gotomicro/ego/core/elog"
	"github.com/promohub/promohub/internal/company"
	"github.com/promohub/promohub/internal/payout/internal/domain"
	"github.com/promohub/promohub/internal/payout/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrInvalidAmount       = errors.New("payout amount must be positive")
	ErrInsufficientBalance = errors.New("requested amount exceeds the pending payout balance")
	ErrInvalidTransition   = errors.New("payout is not in a processable state")
)

var hundred = decimal.NewFromInt(100)

type Service interface {
	// GetVendorBalance derives the vendor's settlement position from
	// the ledger, serving a cached copy within its TTL.
	GetVendorBalance(ctx context.Context, companyID int64) (domain.Balance, error)
	// CreatePayout records a PENDING settlement of netAmount against
	// the freshly recomputed pending balance. The platform fee inverts
	// the commission split so gross = net + fee keeps the commission
	// proportion: fee = net * rate / (100 - rate).
	CreatePayout(ctx context.Context, companyID int64, netAmount decimal.Decimal, notes string) (domain.Payout, error)
	// ProcessPayout drives PENDING -> PROCESSING -> COMPLETED, or to
	// FAILED with the failure recorded in notes. The processing body
	// is where a disbursement API call will slot in.
	ProcessPayout(ctx context.Context, payoutID int64, bankReference string) error
	FindByID(ctx context.Context, payoutID int64) (domain.Payout, error)
	List(ctx context.Context, offset, limit int) ([]domain.Payout, int64, error)
	ListByCompanyID(ctx context.Context, companyID int64) ([]domain.Payout, error)
}

// CalculatePayout splits a gross amount by the commission rate.
func CalculatePayout(gross, commissionRate decimal.Decimal) (fee, net decimal.Decimal) {
	fee = gross.Mul(commissionRate).Div(hundred).Round(2)
	return fee, gross.Sub(fee)
}

func NewService(repo repository.PayoutRepository, companySvc company.Service) Service {
	return &service{
		repo:       repo,
		companySvc: companySvc,
		logger:     elog.DefaultLogger,
	}
}

type service struct {
	repo       repository.PayoutRepository
	companySvc company.Service
	logger     *elog.Component
}

func (s *service) GetVendorBalance(ctx context.Context, companyID int64) (domain.Balance, error) {
	b, err := s.repo.GetCachedBalance(ctx, companyID)
	if err == nil {
		return b, nil
	}
	b, err = s.computeBalance(ctx, companyID)
	if err != nil {
		return domain.Balance{}, err
	}
	if err := s.repo.CacheBalance(ctx, b); err != nil {
		s.logger.Error("failed to cache vendor balance",
			elog.FieldErr(err),
			elog.Int64("companyId", companyID))
	}
	return b, nil
}

func (s *service) CreatePayout(ctx context.Context, companyID int64, netAmount decimal.Decimal, notes string) (domain.Payout, error) {
	if !netAmount.IsPositive() {
		return domain.Payout{}, ErrInvalidAmount
	}
	c, err := s.findCompany(ctx, companyID)
	if err != nil {
		return domain.Payout{}, err
	}
	// Always recomputed from the ledger, never trusted to the cache.
	b, err := s.computeBalance(ctx, companyID)
	if err != nil {
		return domain.Payout{}, err
	}
	if netAmount.GreaterThan(b.PendingPayout) {
		return domain.Payout{}, ErrInsufficientBalance
	}
	fee := netAmount.Mul(c.CommissionRate).
		Div(hundred.Sub(c.CommissionRate)).Round(2)
	p := domain.Payout{
		CompanyID:   companyID,
		GrossAmount: netAmount.Add(fee),
		PlatformFee: fee,
		NetAmount:   netAmount,
		Status:      domain.PayoutStatusPending,
		Notes:       notes,
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Payout{}, err
	}
	p.ID = id
	return p, nil
}

func (s *service) ProcessPayout(ctx context.Context, payoutID int64, bankReference string) error {
	p, err := s.FindByID(ctx, payoutID)
	if err != nil {
		return err
	}
	ok, err := s.repo.MarkProcessing(ctx, payoutID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidTransition
	}
	if err := s.disburse(ctx, p, bankReference); err != nil {
		if ferr := s.repo.MarkFailed(ctx, payoutID, err.Error()); ferr != nil {
			s.logger.Error("failed to record payout failure",
				elog.FieldErr(ferr),
				elog.Int64("payoutId", payoutID))
		}
		return err
	}
	return s.repo.MarkCompleted(ctx, payoutID, bankReference)
}

// disburse is the future bank-transfer integration point. Settlement
// is currently recorded against the supplied bank reference only.
func (s *service) disburse(_ context.Context, _ domain.Payout, _ string) error {
	return nil
}

func (s *service) FindByID(ctx context.Context, payoutID int64) (domain.Payout, error) {
	p, err := s.repo.FindByID(ctx, payoutID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Payout{}, ErrPayoutNotFound
	}
	return p, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Payout, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Payout
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) ListByCompanyID(ctx context.Context, companyID int64) ([]domain.Payout, error) {
	return s.repo.ListByCompanyID(ctx, companyID)
}

func (s *service) computeBalance(ctx context.Context, companyID int64) (domain.Balance, error) {
	c, err := s.findCompany(ctx, companyID)
	if err != nil {
		return domain.Balance{}, err
	}
	var (
		eg      errgroup.Group
		sales   decimal.Decimal
		paidOut decimal.Decimal
	)
	eg.Go(func() error {
		var err error
		sales, err = s.repo.TotalCompletedSales(ctx, companyID)
		return err
	})
	eg.Go(func() error {
		var err error
		paidOut, err = s.repo.TotalCompletedPayouts(ctx, companyID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Balance{}, err
	}
	commission := sales.Mul(c.CommissionRate).Div(hundred).Round(2)
	pending := sales.Sub(commission).Sub(paidOut)
	if pending.IsNegative() {
		pending = decimal.Zero
	}
	return domain.Balance{
		CompanyID:       companyID,
		TotalSales:      sales,
		TotalCommission: commission,
		TotalPaidOut:    paidOut,
		PendingPayout:   pending,
	}, nil
}

func (s *service) findCompany(ctx context.Context, companyID int64) (company.Company, error) {
	c, err := s.companySvc.FindByID(ctx, companyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return company.Company{}, ErrCompanyNotFound
	}
	return c, err
}
