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
	"github.com/promohub/promohub/internal/order/internal/domain"
	"github.com/promohub/promohub/internal/order/internal/repository/dao"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, o domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error)
	CountByBuyer(ctx context.Context, buyerID int64) (int64, error)

	FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	FindPaymentByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error)
	UpsertPayment(ctx context.Context, p domain.Payment) error
	MarkPaymentSucceeded(ctx context.Context, p domain.Payment, inv domain.Invoice) (bool, error)
	MarkPaymentFailed(ctx context.Context, gatewayOrderID, reason string) error

	FindInvoiceByOrderID(ctx context.Context, orderID int64) (domain.Invoice, error)
	UpdateOnRefund(ctx context.Context, orderID int64, fullyRefunded bool) error
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) CreateOrder(ctx context.Context, o domain.Order) (int64, error) {
	items := slice.Map(o.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return r.toItemEntity(src)
	})
	return r.dao.CreateOrder(ctx, r.toEntity(o), items, o.CouponID)
}

// FindByID loads the order with its items and payment row. The payment
// may be absent before the first checkout attempt.
func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.assemble(ctx, o)
}

func (r *orderRepository) FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, buyerID, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.assemble(ctx, o)
}

func (r *orderRepository) assemble(ctx context.Context, o dao.Order) (domain.Order, error) {
	res := r.toDomain(o)
	items, err := r.dao.FindItemsByOrderId(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	res.Items = slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return r.toItemDomain(src)
	})
	p, err := r.dao.FindPaymentByOrderId(ctx, o.Id)
	if err == nil {
		res.Payment = r.toPaymentDomain(p)
	}
	return res, nil
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByBuyer(ctx, buyerID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src)
	}), nil
}

func (r *orderRepository) CountByBuyer(ctx context.Context, buyerID int64) (int64, error) {
	return r.dao.CountByBuyer(ctx, buyerID)
}

func (r *orderRepository) FindPaymentByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	p, err := r.dao.FindPaymentByOrderId(ctx, orderID)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toPaymentDomain(p), nil
}

func (r *orderRepository) FindPaymentByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error) {
	p, err := r.dao.FindPaymentByGatewayOrderId(ctx, gatewayOrderID)
	if err != nil {
		return domain.Payment{}, err
	}
	return r.toPaymentDomain(p), nil
}

func (r *orderRepository) UpsertPayment(ctx context.Context, p domain.Payment) error {
	return r.dao.UpsertPayment(ctx, r.toPaymentEntity(p))
}

func (r *orderRepository) MarkPaymentSucceeded(ctx context.Context, p domain.Payment, inv domain.Invoice) (bool, error) {
	return r.dao.MarkPaymentSucceeded(ctx, r.toPaymentEntity(p), r.toInvoiceEntity(inv))
}

func (r *orderRepository) MarkPaymentFailed(ctx context.Context, gatewayOrderID, reason string) error {
	return r.dao.MarkPaymentFailed(ctx, gatewayOrderID, reason)
}

func (r *orderRepository) FindInvoiceByOrderID(ctx context.Context, orderID int64) (domain.Invoice, error) {
	inv, err := r.dao.FindInvoiceByOrderId(ctx, orderID)
	if err != nil {
		return domain.Invoice{}, err
	}
	return r.toInvoiceDomain(inv), nil
}

func (r *orderRepository) UpdateOnRefund(ctx context.Context, orderID int64, fullyRefunded bool) error {
	paymentStatus := domain.PaymentStatusPartiallyRefunded
	if fullyRefunded {
		paymentStatus = domain.PaymentStatusRefunded
	}
	return r.dao.UpdateOnRefund(ctx, orderID, fullyRefunded,
		domain.OrderStatusRefunded.ToUint8(), paymentStatus.ToUint8())
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	res := domain.Order{
		ID:             o.Id,
		SN:             o.SN,
		BuyerID:        o.BuyerId,
		Subtotal:       o.Subtotal,
		DiscountAmount: o.DiscountAmount,
		CGST:           o.Cgst,
		SGST:           o.Sgst,
		IGST:           o.Igst,
		TaxAmount:      o.TaxAmount,
		TotalAmount:    o.TotalAmount,
		Status:         domain.OrderStatus(o.Status),
		Ctime:          o.Ctime,
		Utime:          o.Utime,
	}
	if o.BuyerName.Valid {
		res.BuyerName = o.BuyerName.String
	}
	if o.CouponId.Valid {
		res.CouponID = o.CouponId.Int64
	}
	if o.CouponCode.Valid {
		res.CouponCode = o.CouponCode.String
	}
	if o.BuyerState.Valid {
		res.BuyerState = o.BuyerState.String
	}
	if o.ShippingAddress.Valid {
		res.ShippingAddress = o.ShippingAddress.String
	}
	if o.BillingAddress.Valid {
		res.BillingAddress = o.BillingAddress.String
	}
	return res
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:              o.ID,
		SN:              o.SN,
		BuyerId:         o.BuyerID,
		BuyerName:       sql.NullString{String: o.BuyerName, Valid: o.BuyerName != ""},
		CouponId:        sql.NullInt64{Int64: o.CouponID, Valid: o.CouponID > 0},
		CouponCode:      sql.NullString{String: o.CouponCode, Valid: o.CouponCode != ""},
		Subtotal:        o.Subtotal,
		DiscountAmount:  o.DiscountAmount,
		Cgst:            o.CGST,
		Sgst:            o.SGST,
		Igst:            o.IGST,
		TaxAmount:       o.TaxAmount,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status.ToUint8(),
		BuyerState:      sql.NullString{String: o.BuyerState, Valid: o.BuyerState != ""},
		ShippingAddress: sql.NullString{String: o.ShippingAddress, Valid: o.ShippingAddress != ""},
		BillingAddress:  sql.NullString{String: o.BillingAddress, Valid: o.BillingAddress != ""},
	}
}

func (r *orderRepository) toItemDomain(i dao.OrderItem) domain.OrderItem {
	res := domain.OrderItem{
		ID:          i.Id,
		OrderID:     i.OrderId,
		ProductID:   i.ProductId,
		CompanyID:   i.CompanyId,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		TotalPrice:  i.TotalPrice,
	}
	if i.DiscountPrice.Valid {
		res.DiscountPrice = i.DiscountPrice.Decimal
		res.HasDiscount = true
	}
	return res
}

func (r *orderRepository) toItemEntity(i domain.OrderItem) dao.OrderItem {
	return dao.OrderItem{
		Id:            i.ID,
		OrderId:       i.OrderID,
		ProductId:     i.ProductID,
		CompanyId:     i.CompanyID,
		ProductName:   i.ProductName,
		Quantity:      i.Quantity,
		UnitPrice:     i.UnitPrice,
		DiscountPrice: decimal.NullDecimal{Decimal: i.DiscountPrice, Valid: i.HasDiscount},
		TotalPrice:    i.TotalPrice,
	}
}

func (r *orderRepository) toPaymentDomain(p dao.Payment) domain.Payment {
	res := domain.Payment{
		ID:             p.Id,
		OrderID:        p.OrderId,
		GatewayOrderID: p.GatewayOrderId,
		Status:         domain.PaymentStatus(p.Status),
		Amount:         p.Amount,
	}
	if p.GatewayPaymentId.Valid {
		res.GatewayPaymentID = p.GatewayPaymentId.String
	}
	if p.GatewaySignature.Valid {
		res.GatewaySignature = p.GatewaySignature.String
	}
	if p.PaidAt.Valid {
		res.PaidAt = p.PaidAt.Int64
	}
	if p.FailureReason.Valid {
		res.FailureReason = p.FailureReason.String
	}
	return res
}

func (r *orderRepository) toPaymentEntity(p domain.Payment) dao.Payment {
	return dao.Payment{
		Id:               p.ID,
		OrderId:          p.OrderID,
		GatewayOrderId:   p.GatewayOrderID,
		GatewayPaymentId: sql.NullString{String: p.GatewayPaymentID, Valid: p.GatewayPaymentID != ""},
		GatewaySignature: sql.NullString{String: p.GatewaySignature, Valid: p.GatewaySignature != ""},
		Status:           p.Status.ToUint8(),
		Amount:           p.Amount,
		PaidAt:           sql.NullInt64{Int64: p.PaidAt, Valid: p.PaidAt > 0},
		FailureReason:    sql.NullString{String: p.FailureReason, Valid: p.FailureReason != ""},
	}
}

func (r *orderRepository) toInvoiceDomain(inv dao.Invoice) domain.Invoice {
	res := domain.Invoice{
		ID:             inv.Id,
		OrderID:        inv.OrderId,
		InvoiceNumber:  inv.InvoiceNumber,
		SellerName:     inv.SellerName,
		SellerAddress:  inv.SellerAddress,
		SellerGSTIN:    inv.SellerGstin,
		Subtotal:       inv.Subtotal,
		DiscountAmount: inv.DiscountAmount,
		CGST:           inv.Cgst,
		SGST:           inv.Sgst,
		IGST:           inv.Igst,
		TotalAmount:    inv.TotalAmount,
		Ctime:          inv.Ctime,
	}
	if inv.BuyerName.Valid {
		res.BuyerName = inv.BuyerName.String
	}
	if inv.BuyerAddress.Valid {
		res.BuyerAddress = inv.BuyerAddress.String
	}
	if inv.BuyerState.Valid {
		res.BuyerState = inv.BuyerState.String
	}
	return res
}

func (r *orderRepository) toInvoiceEntity(inv domain.Invoice) dao.Invoice {
	return dao.Invoice{
		Id:             inv.ID,
		OrderId:        inv.OrderID,
		InvoiceNumber:  inv.InvoiceNumber,
		BuyerName:      sql.NullString{String: inv.BuyerName, Valid: inv.BuyerName != ""},
		BuyerAddress:   sql.NullString{String: inv.BuyerAddress, Valid: inv.BuyerAddress != ""},
		BuyerState:     sql.NullString{String: inv.BuyerState, Valid: inv.BuyerState != ""},
		SellerName:     inv.SellerName,
		SellerAddress:  inv.SellerAddress,
		SellerGstin:    inv.SellerGSTIN,
		Subtotal:       inv.Subtotal,
		DiscountAmount: inv.DiscountAmount,
		Cgst:           inv.CGST,
		Sgst:           inv.SGST,
		Igst:           inv.IGST,
		TotalAmount:    inv.TotalAmount,
	}
}
