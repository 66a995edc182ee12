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
	"github.com/promohub/promohub/internal/refund/internal/domain"
	"github.com/promohub/promohub/internal/refund/internal/repository/dao"
	"github.com/shopspring/decimal"
)

type RefundRepository interface {
	Create(ctx context.Context, r domain.Refund) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Refund, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]domain.Refund, error)
	List(ctx context.Context, offset, limit int) ([]domain.Refund, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RefundStatus, processedAt int64) error
	SumSucceededByOrderID(ctx context.Context, orderID int64) (decimal.Decimal, error)
}

func NewRefundRepository(d dao.RefundDAO) RefundRepository {
	return &refundRepository{dao: d}
}

type refundRepository struct {
	dao dao.RefundDAO
}

func (r *refundRepository) Create(ctx context.Context, rf domain.Refund) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(rf))
}

func (r *refundRepository) FindByID(ctx context.Context, id int64) (domain.Refund, error) {
	rf, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Refund{}, err
	}
	return r.toDomain(rf), nil
}

func (r *refundRepository) ListByOrderID(ctx context.Context, orderID int64) ([]domain.Refund, error) {
	rs, err := r.dao.ListByOrderId(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.Refund) domain.Refund {
		return r.toDomain(src)
	}), nil
}

func (r *refundRepository) List(ctx context.Context, offset, limit int) ([]domain.Refund, error) {
	rs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.Refund) domain.Refund {
		return r.toDomain(src)
	}), nil
}

func (r *refundRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *refundRepository) UpdateStatus(ctx context.Context, id int64, status domain.RefundStatus, processedAt int64) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8(), processedAt)
}

func (r *refundRepository) SumSucceededByOrderID(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	return r.dao.SumSucceededByOrderId(ctx, orderID)
}

func (r *refundRepository) toDomain(rf dao.Refund) domain.Refund {
	res := domain.Refund{
		ID:      rf.Id,
		OrderID: rf.OrderId,
		Amount:  rf.Amount,
		Status:  domain.RefundStatus(rf.Status),
		Ctime:   rf.Ctime,
		Utime:   rf.Utime,
	}
	if rf.Reason.Valid {
		res.Reason = rf.Reason.String
	}
	if rf.ProcessedAt.Valid {
		res.ProcessedAt = rf.ProcessedAt.Int64
	}
	return res
}

func (r *refundRepository) toEntity(rf domain.Refund) dao.Refund {
	return dao.Refund{
		Id:          rf.ID,
		OrderId:     rf.OrderID,
		Amount:      rf.Amount,
		Reason:      sql.NullString{String: rf.Reason, Valid: rf.Reason != ""},
		Status:      rf.Status.ToUint8(),
		ProcessedAt: sql.NullInt64{Int64: rf.ProcessedAt, Valid: rf.ProcessedAt > 0},
	}
}
