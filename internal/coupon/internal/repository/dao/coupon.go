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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CouponDAO interface {
	Save(ctx context.Context, c Coupon) (int64, error)
	FindByCode(ctx context.Context, code string) (Coupon, error)
	IncrementUsedCount(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]Coupon, error)
	Count(ctx context.Context) (int64, error)
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &couponGORMDAO{db: db}
}

type couponGORMDAO struct {
	db *egorm.Component
}

func (g *couponGORMDAO) Save(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"discount_type", "discount_value", "min_order_value", "max_discount",
			"usage_limit", "expiry_date", "is_active", "utime",
		}),
	}).Create(&c).Error
	return c.Id, err
}

func (g *couponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var c Coupon
	err := g.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return c, err
}

// IncrementUsedCount is a single atomic UPDATE so concurrent applications
// of the same code never lose increments.
func (g *couponGORMDAO) IncrementUsedCount(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Coupon{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count + 1"),
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (g *couponGORMDAO) List(ctx context.Context, offset, limit int) ([]Coupon, error) {
	var cs []Coupon
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&cs).Error
	return cs, err
}

func (g *couponGORMDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Coupon{}).Count(&total).Error
	return total, err
}

type Coupon struct {
	Id            int64               `gorm:"primaryKey;autoIncrement"`
	Code          string              `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code"`
	DiscountType  uint8               `gorm:"type:tinyint unsigned;not null;comment:1=percentage 2=fixed"`
	DiscountValue decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	MinOrderValue decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	MaxDiscount   decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	UsageLimit    sql.NullInt64       `gorm:""`
	UsedCount     int64               `gorm:"not null;default:0"`
	ExpiryDate    sql.NullInt64       `gorm:"comment:unix milli, NULL means no expiry"`
	IsActive      bool                `gorm:"not null;default:true"`
	Ctime         int64
	Utime         int64
}
