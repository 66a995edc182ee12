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

// Status values mirrored here so guards can run inside SQL.
const (
	payoutStatusPending    = 1
	payoutStatusProcessing = 2
	payoutStatusCompleted  = 3
	payoutStatusFailed     = 4

	orderStatusCompleted = 3
)

type PayoutDAO interface {
	Create(ctx context.Context, p Payout) (int64, error)
	FindById(ctx context.Context, id int64) (Payout, error)
	List(ctx context.Context, offset, limit int) ([]Payout, error)
	Count(ctx context.Context) (int64, error)
	ListByCompanyId(ctx context.Context, companyId int64) ([]Payout, error)
	// MarkProcessing reports false when the payout was not PENDING,
	// so a concurrent double-process never advances the state twice.
	MarkProcessing(ctx context.Context, id int64) (bool, error)
	MarkCompleted(ctx context.Context, id int64, bankReference string) error
	MarkFailed(ctx context.Context, id int64, notes string) error
	// SumCompletedSalesByCompanyId aggregates the settled ledger: item
	// totals of this company whose parent order is COMPLETED.
	SumCompletedSalesByCompanyId(ctx context.Context, companyId int64) (decimal.Decimal, error)
	SumCompletedNetByCompanyId(ctx context.Context, companyId int64) (decimal.Decimal, error)
}

func NewPayoutGORMDAO(db *egorm.Component) PayoutDAO {
	return &payoutGORMDAO{db: db}
}

type payoutGORMDAO struct {
	db *egorm.Component
}

func (g *payoutGORMDAO) Create(ctx context.Context, p Payout) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *payoutGORMDAO) FindById(ctx context.Context, id int64) (Payout, error) {
	var p Payout
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *payoutGORMDAO) List(ctx context.Context, offset, limit int) ([]Payout, error) {
	var ps []Payout
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&ps).Error
	return ps, err
}

func (g *payoutGORMDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Payout{}).Count(&total).Error
	return total, err
}

func (g *payoutGORMDAO) ListByCompanyId(ctx context.Context, companyId int64) ([]Payout, error) {
	var ps []Payout
	err := g.db.WithContext(ctx).Where("company_id = ?", companyId).Order("id DESC").Find(&ps).Error
	return ps, err
}

func (g *payoutGORMDAO) MarkProcessing(ctx context.Context, id int64) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Payout{}).
		Where("id = ? AND status = ?", id, payoutStatusPending).
		Updates(map[string]any{
			"status": payoutStatusProcessing,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *payoutGORMDAO) MarkCompleted(ctx context.Context, id int64, bankReference string) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Model(&Payout{}).
		Where("id = ? AND status = ?", id, payoutStatusProcessing).
		Updates(map[string]any{
			"status":         payoutStatusCompleted,
			"bank_reference": bankReference,
			"processed_at":   now,
			"utime":          now,
		}).Error
}

func (g *payoutGORMDAO) MarkFailed(ctx context.Context, id int64, notes string) error {
	return g.db.WithContext(ctx).Model(&Payout{}).
		Where("id = ? AND status = ?", id, payoutStatusProcessing).
		Updates(map[string]any{
			"status": payoutStatusFailed,
			"notes":  notes,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *payoutGORMDAO) SumCompletedSalesByCompanyId(ctx context.Context, companyId int64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := g.db.WithContext(ctx).
		Raw("SELECT SUM(oi.`total_price`) FROM `order_items` AS oi "+
			"JOIN `orders` AS o ON o.`id` = oi.`order_id` "+
			"WHERE oi.`company_id` = ? AND o.`status` = ?",
			companyId, orderStatusCompleted).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (g *payoutGORMDAO) SumCompletedNetByCompanyId(ctx context.Context, companyId int64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := g.db.WithContext(ctx).Model(&Payout{}).
		Select("SUM(`net_amount`)").
		Where("company_id = ? AND status = ?", companyId, payoutStatusCompleted).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

type Payout struct {
	Id            int64           `gorm:"primaryKey;autoIncrement"`
	CompanyId     int64           `gorm:"not null;index:idx_payout_company_id"`
	GrossAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PlatformFee   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status        uint8           `gorm:"type:tinyint unsigned;not null;default:1;comment:1=pending 2=processing 3=completed 4=failed;index:idx_payout_status"`
	BankReference sql.NullString  `gorm:"type:varchar(128)"`
	Notes         sql.NullString  `gorm:"type:varchar(512)"`
	ProcessedAt   sql.NullInt64   `gorm:""`
	Ctime         int64
	Utime         int64
}
