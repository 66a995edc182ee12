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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/promohub/promohub/internal/payout/internal/domain"
	"github.com/promohub/promohub/internal/payout/internal/repository/cache"
	"github.com/promohub/promohub/internal/payout/internal/repository/dao"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/payout.mock.go -package=repomocks PayoutRepository
type PayoutRepository interface {
	Create(ctx context.Context, p domain.Payout) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Payout, error)
	List(ctx context.Context, offset, limit int) ([]domain.Payout, error)
	Count(ctx context.Context) (int64, error)
	ListByCompanyID(ctx context.Context, companyID int64) ([]domain.Payout, error)
	MarkProcessing(ctx context.Context, id int64) (bool, error)
	MarkCompleted(ctx context.Context, id int64, bankReference string) error
	MarkFailed(ctx context.Context, id int64, notes string) error
	TotalCompletedSales(ctx context.Context, companyID int64) (decimal.Decimal, error)
	TotalCompletedPayouts(ctx context.Context, companyID int64) (decimal.Decimal, error)
	GetCachedBalance(ctx context.Context, companyID int64) (domain.Balance, error)
	CacheBalance(ctx context.Context, b domain.Balance) error
	InvalidateBalance(ctx context.Context, companyID int64) error
}

func NewPayoutRepository(d dao.PayoutDAO, c cache.BalanceCache) PayoutRepository {
	return &payoutRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

type payoutRepository struct {
	dao    dao.PayoutDAO
	cache  cache.BalanceCache
	logger *elog.Component
}

func (r *payoutRepository) Create(ctx context.Context, p domain.Payout) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(p))
}

func (r *payoutRepository) FindByID(ctx context.Context, id int64) (domain.Payout, error) {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Payout{}, err
	}
	return r.toDomain(p), nil
}

func (r *payoutRepository) List(ctx context.Context, offset, limit int) ([]domain.Payout, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Payout) domain.Payout {
		return r.toDomain(src)
	}), nil
}

func (r *payoutRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *payoutRepository) ListByCompanyID(ctx context.Context, companyID int64) ([]domain.Payout, error) {
	ps, err := r.dao.ListByCompanyId(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Payout) domain.Payout {
		return r.toDomain(src)
	}), nil
}

func (r *payoutRepository) MarkProcessing(ctx context.Context, id int64) (bool, error) {
	return r.dao.MarkProcessing(ctx, id)
}

// MarkCompleted moves money out of the pending balance, so the cached
// balance of the owning company is dropped alongside.
func (r *payoutRepository) MarkCompleted(ctx context.Context, id int64, bankReference string) error {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return err
	}
	if err := r.dao.MarkCompleted(ctx, id, bankReference); err != nil {
		return err
	}
	r.invalidate(ctx, p.CompanyId)
	return nil
}

func (r *payoutRepository) MarkFailed(ctx context.Context, id int64, notes string) error {
	return r.dao.MarkFailed(ctx, id, notes)
}

func (r *payoutRepository) TotalCompletedSales(ctx context.Context, companyID int64) (decimal.Decimal, error) {
	return r.dao.SumCompletedSalesByCompanyId(ctx, companyID)
}

func (r *payoutRepository) TotalCompletedPayouts(ctx context.Context, companyID int64) (decimal.Decimal, error) {
	return r.dao.SumCompletedNetByCompanyId(ctx, companyID)
}

func (r *payoutRepository) GetCachedBalance(ctx context.Context, companyID int64) (domain.Balance, error) {
	return r.cache.Get(ctx, companyID)
}

func (r *payoutRepository) CacheBalance(ctx context.Context, b domain.Balance) error {
	return r.cache.Set(ctx, b)
}

func (r *payoutRepository) InvalidateBalance(ctx context.Context, companyID int64) error {
	return r.cache.Del(ctx, companyID)
}

// Cache invalidation failures degrade to a stale read within the TTL,
// never to a failed write.
func (r *payoutRepository) invalidate(ctx context.Context, companyID int64) {
	if err := r.cache.Del(ctx, companyID); err != nil {
		r.logger.Error("failed to invalidate vendor balance cache",
			elog.FieldErr(err),
			elog.Int64("companyId", companyID))
	}
}

func (r *payoutRepository) toDomain(p dao.Payout) domain.Payout {
	res := domain.Payout{
		ID:          p.Id,
		CompanyID:   p.CompanyId,
		GrossAmount: p.GrossAmount,
		PlatformFee: p.PlatformFee,
		NetAmount:   p.NetAmount,
		Status:      domain.PayoutStatus(p.Status),
		Ctime:       p.Ctime,
		Utime:       p.Utime,
	}
	if p.BankReference.Valid {
		res.BankReference = p.BankReference.String
	}
	if p.Notes.Valid {
		res.Notes = p.Notes.String
	}
	if p.ProcessedAt.Valid {
		res.ProcessedAt = p.ProcessedAt.Int64
	}
	return res
}

func (r *payoutRepository) toEntity(p domain.Payout) dao.Payout {
	return dao.Payout{
		Id:            p.ID,
		CompanyId:     p.CompanyID,
		GrossAmount:   p.GrossAmount,
		PlatformFee:   p.PlatformFee,
		NetAmount:     p.NetAmount,
		Status:        p.Status.ToUint8(),
		BankReference: sql.NullString{String: p.BankReference, Valid: p.BankReference != ""},
		Notes:         sql.NullString{String: p.Notes, Valid: p.Notes != ""},
		ProcessedAt:   sql.NullInt64{Int64: p.ProcessedAt, Valid: p.ProcessedAt > 0},
	}
}
