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

package domain

import "github.com/shopspring/decimal"

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	OrderStatusPending    OrderStatus = 1
	OrderStatusProcessing OrderStatus = 2
	OrderStatusCompleted  OrderStatus = 3
	OrderStatusCancelled  OrderStatus = 4
	OrderStatusRefunded   OrderStatus = 5
)

type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending           PaymentStatus = 1
	PaymentStatusSucceeded         PaymentStatus = 2
	PaymentStatusFailed            PaymentStatus = 3
	PaymentStatusRefunded          PaymentStatus = 4
	PaymentStatusPartiallyRefunded PaymentStatus = 5
)

// Order is created PENDING and moves to COMPLETED only on a verified
// payment success. A completed order is never mutated again except by
// refund reconciliation.
type Order struct {
	ID              int64
	SN              string
	BuyerID         int64
	BuyerName       string
	Items           []OrderItem
	CouponID        int64
	CouponCode      string
	Subtotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	CGST            decimal.Decimal
	SGST            decimal.Decimal
	IGST            decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	BuyerState      string
	ShippingAddress string
	BillingAddress  string
	Payment         Payment
	Ctime           int64
	Utime           int64
}

// OrderItem snapshots catalog prices at order time; it is immutable
// after creation.
type OrderItem struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	CompanyID     int64
	ProductName   string
	Quantity      int64
	UnitPrice     decimal.Decimal
	DiscountPrice decimal.Decimal
	HasDiscount   bool
	TotalPrice    decimal.Decimal
}

// Payment is 1:1 with an Order, keyed by OrderID. It is updated in
// place on success or failure and never recreated for the same order.
type Payment struct {
	ID               int64
	OrderID          int64
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Status           PaymentStatus
	Amount           decimal.Decimal
	PaidAt           int64
	FailureReason    string
}

// Invoice is the legal snapshot written alongside the payment-success
// transition. Buyer and seller identity are copied in so later profile
// edits never retroactively alter an issued invoice.
type Invoice struct {
	ID             int64
	OrderID        int64
	InvoiceNumber  string
	BuyerName      string
	BuyerAddress   string
	BuyerState     string
	SellerName     string
	SellerAddress  string
	SellerGSTIN    string
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	IGST           decimal.Decimal
	TotalAmount    decimal.Decimal
	Ctime          int64
}

// CartItem is one requested checkout line. Duplicate product ids are
// allowed and produce separate order lines.
type CartItem struct {
	ProductID int64
	Quantity  int64
}

// CheckoutRequest carries everything a checkout needs. BuyerName is a
// snapshot for the eventual invoice; the platform never re-reads the
// buyer profile after checkout.
type CheckoutRequest struct {
	BuyerID         int64
	BuyerName       string
	Items           []CartItem
	CouponCode      string
	BuyerState      string
	ShippingAddress string
	BillingAddress  string
}

// SummaryLine is one resolved cart line carrying the owning company so
// downstream transfer splitting does not re-fetch the catalog.
type SummaryLine struct {
	ProductID      int64
	CompanyID      int64
	ProductName    string
	Quantity       int64
	UnitPrice      decimal.Decimal
	DiscountPrice  decimal.Decimal
	HasDiscount    bool
	CommissionRate decimal.Decimal
	TotalPrice     decimal.Decimal
}

// Summary is the immutable pricing breakdown of a cart. It is a pure
// value with no side effects, safe to recompute for previews and again
// at order creation.
type Summary struct {
	Lines []SummaryLine
	// ItemDiscount aggregates per-line catalog discounts for display.
	// It is already baked into Subtotal and never subtracted again.
	ItemDiscount   decimal.Decimal
	Subtotal       decimal.Decimal
	CouponID       int64
	CouponCode     string
	CouponDiscount decimal.Decimal
	TaxableAmount  decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	IGST           decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	IsIntraState   bool
	BuyerState     string
}

// GatewayOrder is what the client needs to collect a payment.
type GatewayOrder struct {
	GatewayOrderID string
	Amount         decimal.Decimal
	Currency       string
	KeyID          string
}
