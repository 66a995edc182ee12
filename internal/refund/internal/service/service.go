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
	"fmt"
	"time"

	"github.com/promohub/promohub/internal/order"
	"github.com/promohub/promohub/internal/refund/internal/domain"
	"github.com/promohub/promohub/internal/refund/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrRefundNotFound   = errors.New("refund not found")
	ErrNotEligible      = errors.New("order is not eligible for refund")
	ErrAmountExceedsCap = errors.New("requested amount exceeds the refundable remainder")
)

// Ineligibility reasons surfaced verbatim to the admin caller.
const (
	reasonNotCompleted  = "Only completed orders can be refunded"
	reasonNotPaid       = "Order payment was not successful"
	reasonWindowExpired = "Refund window of 7 days has expired"
	reasonFullyRefunded = "Order amount has already been fully refunded"
)

const refundWindow = 7 * 24 * time.Hour

//go:generate mockgen -source=./service.go -destination=../../mocks/refund.mock.go -package=refundmocks Service
type Service interface {
	// CheckEligibility applies the refund window and running-total cap.
	// An ineligible order carries a specific human-readable reason.
	CheckEligibility(ctx context.Context, orderID int64) (domain.Eligibility, error)
	// InitiateRefund records a refund request. A zero amount requests
	// the full refundable remainder. Gateway execution is intentionally
	// absent; the refund stays PENDING until reconciled explicitly.
	InitiateRefund(ctx context.Context, orderID int64, amount decimal.Decimal, reason string) (domain.Refund, error)
	// HandleRefundSuccess marks the refund SUCCEEDED and reconciles the
	// order: a fully covered total moves order and payment to REFUNDED,
	// a partial one marks the payment PARTIALLY_REFUNDED.
	HandleRefundSuccess(ctx context.Context, refundID int64) error
	HandleRefundFailed(ctx context.Context, refundID int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Refund, int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]domain.Refund, error)
}

func NewService(repo repository.RefundRepository, orderSvc order.Service) Service {
	return &service{repo: repo, orderSvc: orderSvc}
}

type service struct {
	repo     repository.RefundRepository
	orderSvc order.Service
}

func (s *service) CheckEligibility(ctx context.Context, orderID int64) (domain.Eligibility, error) {
	o, err := s.orderSvc.FindByID(ctx, orderID)
	if errors.Is(err, order.ErrOrderNotFound) {
		return domain.Eligibility{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Eligibility{}, err
	}
	if o.Status != order.StatusCompleted {
		return domain.Eligibility{Reason: reasonNotCompleted}, nil
	}
	if o.Payment.Status != order.PaymentStatusSucceeded {
		return domain.Eligibility{Reason: reasonNotPaid}, nil
	}
	if time.Now().UnixMilli()-o.Ctime > refundWindow.Milliseconds() {
		return domain.Eligibility{Reason: reasonWindowExpired}, nil
	}
	refunded, err := s.repo.SumSucceededByOrderID(ctx, orderID)
	if err != nil {
		return domain.Eligibility{}, err
	}
	remaining := o.TotalAmount.Sub(refunded)
	if !remaining.IsPositive() {
		return domain.Eligibility{Reason: reasonFullyRefunded}, nil
	}
	return domain.Eligibility{Eligible: true, MaxAmount: remaining}, nil
}

func (s *service) InitiateRefund(ctx context.Context, orderID int64, amount decimal.Decimal, reason string) (domain.Refund, error) {
	elig, err := s.CheckEligibility(ctx, orderID)
	if err != nil {
		return domain.Refund{}, err
	}
	if !elig.Eligible {
		return domain.Refund{}, fmt.Errorf("%w: %s", ErrNotEligible, elig.Reason)
	}
	if amount.IsZero() {
		amount = elig.MaxAmount
	}
	if amount.GreaterThan(elig.MaxAmount) {
		return domain.Refund{}, ErrAmountExceedsCap
	}
	r := domain.Refund{
		OrderID: orderID,
		Amount:  amount,
		Reason:  reason,
		Status:  domain.RefundStatusPending,
	}
	id, err := s.repo.Create(ctx, r)
	if err != nil {
		return domain.Refund{}, err
	}
	r.ID = id
	return r, nil
}

func (s *service) HandleRefundSuccess(ctx context.Context, refundID int64) error {
	r, err := s.findRefund(ctx, refundID)
	if err != nil {
		return err
	}
	if r.Status == domain.RefundStatusSucceeded {
		return nil
	}
	now := time.Now().UnixMilli()
	if err := s.repo.UpdateStatus(ctx, refundID, domain.RefundStatusSucceeded, now); err != nil {
		return err
	}
	total, err := s.repo.SumSucceededByOrderID(ctx, r.OrderID)
	if err != nil {
		return err
	}
	o, err := s.orderSvc.FindByID(ctx, r.OrderID)
	if err != nil {
		return err
	}
	return s.orderSvc.ApplyRefundOutcome(ctx, r.OrderID, total.GreaterThanOrEqual(o.TotalAmount))
}

func (s *service) HandleRefundFailed(ctx context.Context, refundID int64) error {
	if _, err := s.findRefund(ctx, refundID); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, refundID, domain.RefundStatusFailed, 0)
}

func (s *service) findRefund(ctx context.Context, refundID int64) (domain.Refund, error) {
	r, err := s.repo.FindByID(ctx, refundID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Refund{}, ErrRefundNotFound
	}
	return r, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Refund, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.Refund
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return rs, total, eg.Wait()
}

func (s *service) ListByOrderID(ctx context.Context, orderID int64) ([]domain.Refund, error) {
	return s.repo.ListByOrderID(ctx, orderID)
}
