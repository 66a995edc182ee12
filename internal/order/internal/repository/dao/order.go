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

// Payment status values mirrored here so status guards can run inside
// SQL without importing the domain package.
const (
	paymentStatusSucceeded = 2
	paymentStatusFailed    = 3
	orderStatusCompleted   = 3
)

type OrderDAO interface {
	// CreateOrder persists the order header, its items and, when
	// couponId is set, the coupon usage increment in one transaction.
	CreateOrder(ctx context.Context, o Order, items []OrderItem, couponId int64) (int64, error)
	FindById(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, buyerId int64, sn string) (Order, error)
	FindItemsByOrderId(ctx context.Context, orderId int64) ([]OrderItem, error)
	ListByBuyer(ctx context.Context, buyerId int64, offset, limit int) ([]Order, error)
	CountByBuyer(ctx context.Context, buyerId int64) (int64, error)

	FindPaymentByOrderId(ctx context.Context, orderId int64) (Payment, error)
	FindPaymentByGatewayOrderId(ctx context.Context, gatewayOrderId string) (Payment, error)
	UpsertPayment(ctx context.Context, p Payment) error
	// MarkPaymentSucceeded flips the payment, completes the order and
	// writes the invoice snapshot atomically. It reports false without
	// error when the payment was already succeeded, so replays never
	// double-create an invoice.
	MarkPaymentSucceeded(ctx context.Context, p Payment, inv Invoice) (bool, error)
	MarkPaymentFailed(ctx context.Context, gatewayOrderId, reason string) error

	FindInvoiceByOrderId(ctx context.Context, orderId int64) (Invoice, error)
	// UpdateOnRefund moves the payment to REFUNDED or PARTIALLY_REFUNDED
	// and, on a full refund, the order to REFUNDED, in one transaction.
	UpdateOnRefund(ctx context.Context, orderId int64, fullyRefunded bool, orderStatus, paymentStatus uint8) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderGORMDAO{db: db}
}

type orderGORMDAO struct {
	db *egorm.Component
}

func (g *orderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem, couponId int64) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if couponId > 0 {
			return tx.Exec("UPDATE `coupons` SET `used_count` = `used_count` + 1, `utime` = ? WHERE `id` = ?",
				now, couponId).Error
		}
		return nil
	})
	return o.Id, err
}

func (g *orderGORMDAO) FindById(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *orderGORMDAO) FindBySN(ctx context.Context, buyerId int64, sn string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("sn = ? AND buyer_id = ?", sn, buyerId).First(&o).Error
	return o, err
}

func (g *orderGORMDAO) FindItemsByOrderId(ctx context.Context, orderId int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", orderId).Order("id ASC").Find(&items).Error
	return items, err
}

func (g *orderGORMDAO) ListByBuyer(ctx context.Context, buyerId int64, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).Where("buyer_id = ?", buyerId).
		Offset(offset).Limit(limit).Order("id DESC").Find(&os).Error
	return os, err
}

func (g *orderGORMDAO) CountByBuyer(ctx context.Context, buyerId int64) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerId).Count(&total).Error
	return total, err
}

func (g *orderGORMDAO) FindPaymentByOrderId(ctx context.Context, orderId int64) (Payment, error) {
	var p Payment
	err := g.db.WithContext(ctx).Where("order_id = ?", orderId).First(&p).Error
	return p, err
}

func (g *orderGORMDAO) FindPaymentByGatewayOrderId(ctx context.Context, gatewayOrderId string) (Payment, error) {
	var p Payment
	err := g.db.WithContext(ctx).Where("gateway_order_id = ?", gatewayOrderId).First(&p).Error
	return p, err
}

// UpsertPayment is keyed by order_id so one internal order never owns
// two payment rows, no matter how many checkout attempts it sees.
func (g *orderGORMDAO) UpsertPayment(ctx context.Context, p Payment) error {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"gateway_order_id", "amount", "status", "utime",
		}),
	}).Create(&p).Error
}

func (g *orderGORMDAO) MarkPaymentSucceeded(ctx context.Context, p Payment, inv Invoice) (bool, error) {
	now := time.Now().UnixMilli()
	var applied bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Payment{}).
			Where("id = ? AND status <> ?", p.Id, paymentStatusSucceeded).
			Updates(map[string]any{
				"status":             paymentStatusSucceeded,
				"gateway_payment_id": p.GatewayPaymentId,
				"gateway_signature":  p.GatewaySignature,
				"paid_at":            now,
				"utime":              now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Replay of an already-succeeded payment.
			return nil
		}
		applied = true
		if err := tx.Model(&Order{}).Where("id = ?", p.OrderId).Updates(map[string]any{
			"status": orderStatusCompleted,
			"utime":  now,
		}).Error; err != nil {
			return err
		}
		inv.OrderId = p.OrderId
		inv.Ctime, inv.Utime = now, now
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).Create(&inv).Error
	})
	return applied, err
}

func (g *orderGORMDAO) MarkPaymentFailed(ctx context.Context, gatewayOrderId, reason string) error {
	return g.db.WithContext(ctx).Model(&Payment{}).
		Where("gateway_order_id = ? AND status <> ?", gatewayOrderId, paymentStatusSucceeded).
		Updates(map[string]any{
			"status":         paymentStatusFailed,
			"failure_reason": reason,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

func (g *orderGORMDAO) FindInvoiceByOrderId(ctx context.Context, orderId int64) (Invoice, error) {
	var inv Invoice
	err := g.db.WithContext(ctx).Where("order_id = ?", orderId).First(&inv).Error
	return inv, err
}

func (g *orderGORMDAO) UpdateOnRefund(ctx context.Context, orderId int64, fullyRefunded bool, orderStatus, paymentStatus uint8) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Payment{}).Where("order_id = ?", orderId).Updates(map[string]any{
			"status": paymentStatus,
			"utime":  now,
		}).Error; err != nil {
			return err
		}
		if !fullyRefunded {
			return nil
		}
		return tx.Model(&Order{}).Where("id = ?", orderId).Updates(map[string]any{
			"status": orderStatus,
			"utime":  now,
		}).Error
	})
}

type Order struct {
	Id              int64               `gorm:"primaryKey;autoIncrement"`
	SN              string              `gorm:"column:sn;type:varchar(64);not null;uniqueIndex:uniq_order_sn"`
	BuyerId         int64               `gorm:"not null;index:idx_order_buyer_id"`
	BuyerName       sql.NullString      `gorm:"type:varchar(256)"`
	CouponId        sql.NullInt64       `gorm:""`
	CouponCode      sql.NullString      `gorm:"type:varchar(64)"`
	Subtotal        decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	DiscountAmount  decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	Cgst            decimal.Decimal     `gorm:"column:cgst;type:decimal(12,2);not null;default:0"`
	Sgst            decimal.Decimal     `gorm:"column:sgst;type:decimal(12,2);not null;default:0"`
	Igst            decimal.Decimal     `gorm:"column:igst;type:decimal(12,2);not null;default:0"`
	TaxAmount       decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	Status          uint8               `gorm:"type:tinyint unsigned;not null;default:1;comment:1=pending 2=processing 3=completed 4=cancelled 5=refunded;index:idx_order_status"`
	BuyerState      sql.NullString      `gorm:"type:varchar(64)"`
	ShippingAddress sql.NullString      `gorm:"type:varchar(512)"`
	BillingAddress  sql.NullString      `gorm:"type:varchar(512)"`
	Ctime           int64
	Utime           int64
}

type OrderItem struct {
	Id            int64               `gorm:"primaryKey;autoIncrement"`
	OrderId       int64               `gorm:"not null;index:idx_order_item_order_id"`
	ProductId     int64               `gorm:"not null"`
	CompanyId     int64               `gorm:"not null;index:idx_order_item_company_id"`
	ProductName   string              `gorm:"type:varchar(256);not null"`
	Quantity      int64               `gorm:"not null"`
	UnitPrice     decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	DiscountPrice decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	TotalPrice    decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	Ctime         int64
	Utime         int64
}

type Payment struct {
	Id               int64           `gorm:"primaryKey;autoIncrement"`
	OrderId          int64           `gorm:"not null;uniqueIndex:uniq_payment_order_id"`
	GatewayOrderId   string          `gorm:"type:varchar(128);not null;uniqueIndex:uniq_payment_gateway_order_id"`
	GatewayPaymentId sql.NullString  `gorm:"type:varchar(128)"`
	GatewaySignature sql.NullString  `gorm:"type:varchar(256)"`
	Status           uint8           `gorm:"type:tinyint unsigned;not null;default:1;comment:1=pending 2=succeeded 3=failed 4=refunded 5=partially refunded"`
	Amount           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaidAt           sql.NullInt64   `gorm:""`
	FailureReason    sql.NullString  `gorm:"type:varchar(512)"`
	Ctime            int64
	Utime            int64
}

type Invoice struct {
	Id             int64           `gorm:"primaryKey;autoIncrement"`
	OrderId        int64           `gorm:"not null;uniqueIndex:uniq_invoice_order_id"`
	InvoiceNumber  string          `gorm:"type:varchar(32);not null;index:idx_invoice_number"`
	BuyerName      sql.NullString  `gorm:"type:varchar(256)"`
	BuyerAddress   sql.NullString  `gorm:"type:varchar(512)"`
	BuyerState     sql.NullString  `gorm:"type:varchar(64)"`
	SellerName     string          `gorm:"type:varchar(256);not null"`
	SellerAddress  string          `gorm:"type:varchar(512);not null"`
	SellerGstin    string          `gorm:"column:seller_gstin;type:varchar(15);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Cgst           decimal.Decimal `gorm:"column:cgst;type:decimal(12,2);not null;default:0"`
	Sgst           decimal.Decimal `gorm:"column:sgst;type:decimal(12,2);not null;default:0"`
	Igst           decimal.Decimal `gorm:"column:igst;type:decimal(12,2);not null;default:0"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Ctime          int64
	Utime          int64
}
