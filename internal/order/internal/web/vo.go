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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/promohub/promohub/internal/order/internal/domain"
)

type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type CalculateSummaryReq struct {
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"couponCode,omitempty"`
	BuyerState string     `json:"buyerState,omitempty"`
}

type SummaryLine struct {
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	Quantity      int64  `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	DiscountPrice string `json:"discountPrice,omitempty"`
	TotalPrice    string `json:"totalPrice"`
}

type Summary struct {
	Lines          []SummaryLine `json:"lines"`
	Subtotal       string        `json:"subtotal"`
	ItemDiscount   string        `json:"itemDiscount"`
	CouponCode     string        `json:"couponCode,omitempty"`
	CouponDiscount string        `json:"couponDiscount"`
	TaxableAmount  string        `json:"taxableAmount"`
	CGST           string        `json:"cgst"`
	SGST           string        `json:"sgst"`
	IGST           string        `json:"igst"`
	TaxAmount      string        `json:"taxAmount"`
	TotalAmount    string        `json:"totalAmount"`
	IsIntraState   bool          `json:"isIntraState"`
}

func newSummary(s domain.Summary) Summary {
	return Summary{
		Lines: slice.Map(s.Lines, func(idx int, src domain.SummaryLine) SummaryLine {
			line := SummaryLine{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice.String(),
				TotalPrice:  src.TotalPrice.String(),
			}
			if src.HasDiscount {
				line.DiscountPrice = src.DiscountPrice.String()
			}
			return line
		}),
		Subtotal:       s.Subtotal.String(),
		ItemDiscount:   s.ItemDiscount.String(),
		CouponCode:     s.CouponCode,
		CouponDiscount: s.CouponDiscount.String(),
		TaxableAmount:  s.TaxableAmount.String(),
		CGST:           s.CGST.String(),
		SGST:           s.SGST.String(),
		IGST:           s.IGST.String(),
		TaxAmount:      s.TaxAmount.String(),
		TotalAmount:    s.TotalAmount.String(),
		IsIntraState:   s.IsIntraState,
	}
}

type CheckoutReq struct {
	Items           []CartItem `json:"items"`
	CouponCode      string     `json:"couponCode,omitempty"`
	BuyerName       string     `json:"buyerName,omitempty"`
	BuyerState      string     `json:"buyerState,omitempty"`
	ShippingAddress string     `json:"shippingAddress,omitempty"`
	BillingAddress  string     `json:"billingAddress,omitempty"`
}

type CheckoutResp struct {
	OrderSN        string `json:"orderSN"`
	GatewayOrderID string `json:"gatewayOrderId"`
	Amount         string `json:"amount"`
	Currency       string `json:"currency"`
	KeyID          string `json:"keyId"`
}

type VerifyPaymentReq struct {
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	Signature        string `json:"signature"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type RetrieveOrderDetailReq struct {
	SN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type InvoiceDetailReq struct {
	OrderSN string `json:"orderSN"`
}

type InvoiceDetailResp struct {
	HTML string `json:"html"`
}

type Order struct {
	SN              string      `json:"sn"`
	Status          uint8       `json:"status"`
	Items           []OrderItem `json:"items,omitempty"`
	Subtotal        string      `json:"subtotal"`
	DiscountAmount  string      `json:"discountAmount"`
	CGST            string      `json:"cgst"`
	SGST            string      `json:"sgst"`
	IGST            string      `json:"igst"`
	TaxAmount       string      `json:"taxAmount"`
	TotalAmount     string      `json:"totalAmount"`
	CouponCode      string      `json:"couponCode,omitempty"`
	BuyerState      string      `json:"buyerState,omitempty"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	BillingAddress  string      `json:"billingAddress,omitempty"`
	Payment         Payment     `json:"payment"`
	Ctime           int64       `json:"ctime"`
}

type OrderItem struct {
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	Quantity      int64  `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	DiscountPrice string `json:"discountPrice,omitempty"`
	TotalPrice    string `json:"totalPrice"`
}

type Payment struct {
	GatewayOrderID   string `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID string `json:"gatewayPaymentId,omitempty"`
	Status           uint8  `json:"status,omitempty"`
	Amount           string `json:"amount,omitempty"`
	PaidAt           int64  `json:"paidAt,omitempty"`
	FailureReason    string `json:"failureReason,omitempty"`
}

func newOrder(o domain.Order) Order {
	return Order{
		SN:     o.SN,
		Status: o.Status.ToUint8(),
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			item := OrderItem{
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice.String(),
				TotalPrice:  src.TotalPrice.String(),
			}
			if src.HasDiscount {
				item.DiscountPrice = src.DiscountPrice.String()
			}
			return item
		}),
		Subtotal:        o.Subtotal.String(),
		DiscountAmount:  o.DiscountAmount.String(),
		CGST:            o.CGST.String(),
		SGST:            o.SGST.String(),
		IGST:            o.IGST.String(),
		TaxAmount:       o.TaxAmount.String(),
		TotalAmount:     o.TotalAmount.String(),
		CouponCode:      o.CouponCode,
		BuyerState:      o.BuyerState,
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Payment:         newPayment(o.Payment),
		Ctime:           o.Ctime,
	}
}

func newPayment(p domain.Payment) Payment {
	res := Payment{
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		Status:           p.Status.ToUint8(),
		PaidAt:           p.PaidAt,
		FailureReason:    p.FailureReason,
	}
	if p.ID > 0 {
		res.Amount = p.Amount.String()
	}
	return res
}
