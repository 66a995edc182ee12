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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
)

const refundStatusSucceeded = 3

type RefundDAO interface {
	Create(ctx context.Context, r Refund) (int64, error)
	FindById(ctx context.Context, id int64) (Refund, error)
	ListByOrderId(ctx context.Context, orderId int64) ([]Refund, error)
	List(ctx context.Context, offset, limit int) ([]Refund, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8, processedAt int64) error
	// SumSucceededByOrderId is the running total capping further
	// refunds against the order amount.
	SumSucceededByOrderId(ctx context.Context, orderId int64) (decimal.Decimal, error)
}

func NewRefundGORMDAO(db *egorm.Component) RefundDAO {
	return &refundGORMDAO{db: db}
}

type refundGORMDAO struct {
	db *egorm.Component
}

func (g *refundGORMDAO) Create(ctx context.Context, r Refund) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := g.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (g *refundGORMDAO) FindById(ctx context.Context, id int64) (Refund, error) {
	var r Refund
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (g *refundGORMDAO) ListByOrderId(ctx context.Context, orderId int64) ([]Refund, error) {
	var rs []Refund
	err := g.db.WithContext(ctx).Where("order_id = ?", orderId).Order("id ASC").Find(&rs).Error
	return rs, err
}

func (g *refundGORMDAO) List(ctx context.Context, offset, limit int) ([]Refund, error) {
	var rs []Refund
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&rs).Error
	return rs, err
}

func (g *refundGORMDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Refund{}).Count(&total).Error
	return total, err
}

func (g *refundGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8, processedAt int64) error {
	updates := map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}
	if processedAt > 0 {
		updates["processed_at"] = processedAt
	}
	return g.db.WithContext(ctx).Model(&Refund{}).Where("id = ?", id).Updates(updates).Error
}

func (g *refundGORMDAO) SumSucceededByOrderId(ctx context.Context, orderId int64) (decimal.Decimal, error) {
	var res decimal.NullDecimal
	err := g.db.WithContext(ctx).Model(&Refund{}).
		Select("SUM(amount)").
		Where("order_id = ? AND status = ?", orderId, refundStatusSucceeded).
		Scan(&res).Error
	if err != nil || !res.Valid {
		return decimal.Zero, err
	}
	return res.Decimal, nil
}

type Refund struct {
	Id          int64           `gorm:"primaryKey;autoIncrement"`
	OrderId     int64           `gorm:"not null;index:idx_refund_order_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Reason      sql.NullString  `gorm:"type:varchar(512)"`
	Status      uint8           `gorm:"type:tinyint unsigned;not null;default:1;comment:1=pending 2=processing 3=succeeded 4=failed"`
	ProcessedAt sql.NullInt64   `gorm:""`
	Ctime       int64
	Utime       int64
}
