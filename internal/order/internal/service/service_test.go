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
	"testing"
	"time"

	"github.com/promohub/promohub/internal/company"
	"github.com/promohub/promohub/internal/coupon"
	"github.com/promohub/promohub/internal/invoice"
	"github.com/promohub/promohub/internal/order/internal/domain"
	"github.com/promohub/promohub/internal/order/internal/event"
	"github.com/promohub/promohub/internal/order/internal/gateway"
	"github.com/promohub/promohub/internal/order/internal/repository"
	"github.com/promohub/promohub/internal/pkg/sequencenumber"
	"github.com/promohub/promohub/internal/product"
	"github.com/promohub/promohub/internal/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type stubProductSvc struct {
	product.Service
	products []product.Product
}

func (s *stubProductSvc) FindActiveByIDs(_ context.Context, ids []int64) ([]product.Product, error) {
	res := make([]product.Product, 0, len(ids))
	for _, p := range s.products {
		for _, id := range ids {
			if p.ID == id {
				res = append(res, p)
			}
		}
	}
	return res, nil
}

type stubCompanySvc struct {
	company.Service
	companies []company.Company
}

func (s *stubCompanySvc) FindByIDs(_ context.Context, ids []int64) ([]company.Company, error) {
	res := make([]company.Company, 0, len(ids))
	for _, c := range s.companies {
		for _, id := range ids {
			if c.ID == id {
				res = append(res, c)
			}
		}
	}
	return res, nil
}

type stubCouponSvc struct {
	coupon.Service
	usage coupon.Usage
}

func (s *stubCouponSvc) Evaluate(_ context.Context, code string, _ decimal.Decimal) (coupon.Usage, error) {
	if code == "" || !s.usage.Applied {
		return coupon.Usage{}, nil
	}
	return s.usage, nil
}

type stubInvoiceSvc struct {
	invoice.Service
}

func (s *stubInvoiceSvc) GenerateNumber() string {
	return "INV-2403-0042"
}

type stubGateway struct {
	createCalls int
	lastReq     gateway.OrderRequest
	createErr   error
	signatureOK bool
}

func (g *stubGateway) CreateOrder(_ context.Context, req gateway.OrderRequest) (gateway.CreatedOrder, error) {
	g.createCalls++
	g.lastReq = req
	if g.createErr != nil {
		return gateway.CreatedOrder{}, g.createErr
	}
	return gateway.CreatedOrder{ID: "order_TEST", AmountMinor: req.AmountMinor, Currency: req.Currency}, nil
}

func (g *stubGateway) KeyID() string { return "rzp_test_key" }

func (g *stubGateway) VerifyPaymentSignature(_, _, _ string) bool { return g.signatureOK }

func (g *stubGateway) VerifyWebhookSignature(_ []byte, _ string) bool { return true }

type stubProducer struct {
	events []event.OrderCompletedEvent
}

func (p *stubProducer) Produce(_ context.Context, evt event.OrderCompletedEvent) error {
	p.events = append(p.events, evt)
	return nil
}

type stubRepo struct {
	repository.OrderRepository
	orders   map[int64]domain.Order
	payments map[string]domain.Payment

	upserted  []domain.Payment
	succeeded []domain.Invoice
	// applied is what MarkPaymentSucceeded reports, mimicking the
	// row-guard in the real transaction.
	applied bool
}

func (r *stubRepo) FindByID(_ context.Context, id int64) (domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubRepo) FindPaymentByOrderID(_ context.Context, orderID int64) (domain.Payment, error) {
	for _, p := range r.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return domain.Payment{}, gorm.ErrRecordNotFound
}

func (r *stubRepo) FindPaymentByGatewayOrderID(_ context.Context, gatewayOrderID string) (domain.Payment, error) {
	p, ok := r.payments[gatewayOrderID]
	if !ok {
		return domain.Payment{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubRepo) UpsertPayment(_ context.Context, p domain.Payment) error {
	r.upserted = append(r.upserted, p)
	return nil
}

func (r *stubRepo) MarkPaymentSucceeded(_ context.Context, _ domain.Payment, inv domain.Invoice) (bool, error) {
	if !r.applied {
		return false, nil
	}
	r.succeeded = append(r.succeeded, inv)
	return true, nil
}

func newTestService(repo repository.OrderRepository,
	products []product.Product,
	companies []company.Company,
	usage coupon.Usage,
	gw gateway.Gateway,
	producer event.OrderCompletedProducer) Service {
	sn := sequencenumber.NewGeneratorWith(
		func(t time.Time) int64 { return 1710498700000 },
		func() string { return "aaaaaaaaaaaaaaaaaaaaaaaaaaaa" },
	)
	return NewService(repo,
		&stubProductSvc{products: products},
		&stubCompanySvc{companies: companies},
		&stubCouponSvc{usage: usage},
		tax.InitService(),
		&stubInvoiceSvc{},
		gw,
		sn,
		producer,
		SellerConfig{Name: "PromoHub Retail Pvt Ltd", Address: "Bengaluru, Karnataka", GSTIN: "29AABCT1332L1ZT"})
}

func TestService_CalculateSummary(t *testing.T) {
	products := []product.Product{
		{ID: 1, Name: "Widget A", Price: d("100"), CompanyID: 100, IsActive: true},
		{ID: 2, Name: "Widget B", Price: d("50"), DiscountPrice: d("40"), HasDiscount: true, CompanyID: 200, IsActive: true},
	}
	companies := []company.Company{
		{ID: 100, CommissionRate: d("10")},
		{ID: 200, CommissionRate: d("20")},
	}

	t.Run("two item cart with a line level discount", func(t *testing.T) {
		svc := newTestService(&stubRepo{}, products, companies, coupon.Usage{}, &stubGateway{}, &stubProducer{})
		summary, err := svc.CalculateSummary(context.Background(), []domain.CartItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		}, "", "")
		require.NoError(t, err)
		assert.True(t, summary.Subtotal.Equal(d("240")), "subtotal = %s", summary.Subtotal)
		assert.True(t, summary.ItemDiscount.Equal(d("10")), "itemDiscount = %s", summary.ItemDiscount)
		assert.True(t, summary.CGST.Equal(d("21.6")), "cgst = %s", summary.CGST)
		assert.True(t, summary.SGST.Equal(d("21.6")), "sgst = %s", summary.SGST)
		assert.True(t, summary.IGST.IsZero())
		assert.True(t, summary.TotalAmount.Equal(d("283.2")), "total = %s", summary.TotalAmount)
		assert.True(t, summary.IsIntraState)
		require.Len(t, summary.Lines, 2)
		assert.True(t, summary.Lines[1].CommissionRate.Equal(d("20")))
	})

	t.Run("inter-state buyer pays IGST", func(t *testing.T) {
		svc := newTestService(&stubRepo{}, products, companies, coupon.Usage{}, &stubGateway{}, &stubProducer{})
		summary, err := svc.CalculateSummary(context.Background(), []domain.CartItem{
			{ProductID: 1, Quantity: 1},
		}, "", "Maharashtra")
		require.NoError(t, err)
		assert.True(t, summary.IGST.Equal(d("18")))
		assert.True(t, summary.CGST.IsZero())
		assert.False(t, summary.IsIntraState)
	})

	t.Run("empty cart", func(t *testing.T) {
		svc := newTestService(&stubRepo{}, products, companies, coupon.Usage{}, &stubGateway{}, &stubProducer{})
		_, err := svc.CalculateSummary(context.Background(), nil, "", "")
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("zero quantity line", func(t *testing.T) {
		svc := newTestService(&stubRepo{}, products, companies, coupon.Usage{}, &stubGateway{}, &stubProducer{})
		_, err := svc.CalculateSummary(context.Background(), []domain.CartItem{
			{ProductID: 1, Quantity: 0},
		}, "", "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("unknown or inactive product", func(t *testing.T) {
		svc := newTestService(&stubRepo{}, products, companies, coupon.Usage{}, &stubGateway{}, &stubProducer{})
		_, err := svc.CalculateSummary(context.Background(), []domain.CartItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		}, "", "")
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("duplicate product ids become separate lines", func(t *testing.T) {
		svc := newTestService(&stubRepo{}, products, companies, coupon.Usage{}, &stubGateway{}, &stubProducer{})
		summary, err := svc.CalculateSummary(context.Background(), []domain.CartItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 1, Quantity: 2},
		}, "", "")
		require.NoError(t, err)
		require.Len(t, summary.Lines, 2)
		assert.True(t, summary.Subtotal.Equal(d("300")), "subtotal = %s", summary.Subtotal)
	})

	t.Run("coupon discount reduces the taxable amount", func(t *testing.T) {
		usage := coupon.Usage{
			Coupon:   coupon.Coupon{ID: 7, Code: "SAVE40"},
			Discount: d("40"),
			Applied:  true,
		}
		svc := newTestService(&stubRepo{}, products, companies, usage, &stubGateway{}, &stubProducer{})
		summary, err := svc.CalculateSummary(context.Background(), []domain.CartItem{
			{ProductID: 1, Quantity: 2},
		}, "SAVE40", "")
		require.NoError(t, err)
		assert.True(t, summary.CouponDiscount.Equal(d("40")))
		assert.True(t, summary.TaxableAmount.Equal(d("160")))
		assert.True(t, summary.CGST.Equal(d("14.4")))
		assert.True(t, summary.TotalAmount.Equal(d("188.8")), "total = %s", summary.TotalAmount)
		assert.Equal(t, int64(7), summary.CouponID)
	})

	t.Run("fixed coupon larger than subtotal floors the tax base at zero", func(t *testing.T) {
		usage := coupon.Usage{
			Coupon:   coupon.Coupon{ID: 8, Code: "MEGA"},
			Discount: d("500"),
			Applied:  true,
		}
		svc := newTestService(&stubRepo{}, products, companies, usage, &stubGateway{}, &stubProducer{})
		summary, err := svc.CalculateSummary(context.Background(), []domain.CartItem{
			{ProductID: 1, Quantity: 1},
		}, "MEGA", "")
		require.NoError(t, err)
		assert.True(t, summary.TaxableAmount.IsZero())
		assert.True(t, summary.TaxAmount.IsZero())
		assert.True(t, summary.TotalAmount.IsZero())
	})
}

func TestService_CreateGatewayOrder(t *testing.T) {
	companies := []company.Company{
		{ID: 100, CommissionRate: d("10"), RazorpayAccountID: "acc_100"},
		{ID: 200, CommissionRate: d("20")},
		{ID: 300, CommissionRate: d("25"), RazorpayAccountID: "acc_300"},
	}
	order := domain.Order{
		ID:      42,
		SN:      "17104987000001aaaaaaaaaaaaaaaaaa",
		BuyerID: 1,
		Items: []domain.OrderItem{
			{ProductID: 1, CompanyID: 100, TotalPrice: d("200")},
			{ProductID: 2, CompanyID: 100, TotalPrice: d("100")},
			{ProductID: 3, CompanyID: 200, TotalPrice: d("50")},
			{ProductID: 4, CompanyID: 300, TotalPrice: d("80")},
		},
		TotalAmount: d("430"),
		Status:      domain.OrderStatusPending,
	}

	t.Run("accumulates one transfer per company and skips unsplittable vendors", func(t *testing.T) {
		repo := &stubRepo{orders: map[int64]domain.Order{42: order}}
		gw := &stubGateway{}
		svc := newTestService(repo, nil, companies, coupon.Usage{}, gw, &stubProducer{})

		res, err := svc.CreateGatewayOrder(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.Equal(t, "order_TEST", res.GatewayOrderID)
		assert.Equal(t, "INR", res.Currency)
		assert.Equal(t, "rzp_test_key", res.KeyID)

		require.Equal(t, 1, gw.createCalls)
		assert.Equal(t, int64(43000), gw.lastReq.AmountMinor)
		assert.Equal(t, order.SN, gw.lastReq.Receipt)
		// Company 100: (200+100) * 0.90 = 270.00 -> 27000 minor units.
		// Company 200 has no sub-account and is skipped.
		// Company 300: 80 * 0.75 = 60.00 -> 6000 minor units.
		require.Len(t, gw.lastReq.Transfers, 2)
		assert.Equal(t, gateway.Transfer{AccountID: "acc_100", AmountMinor: 27000, Currency: "INR"}, gw.lastReq.Transfers[0])
		assert.Equal(t, gateway.Transfer{AccountID: "acc_300", AmountMinor: 6000, Currency: "INR"}, gw.lastReq.Transfers[1])

		require.Len(t, repo.upserted, 1)
		assert.Equal(t, "order_TEST", repo.upserted[0].GatewayOrderID)
		assert.Equal(t, domain.PaymentStatusPending, repo.upserted[0].Status)
	})

	t.Run("returns the existing gateway order unchanged", func(t *testing.T) {
		repo := &stubRepo{
			orders: map[int64]domain.Order{42: order},
			payments: map[string]domain.Payment{
				"order_EXISTING": {ID: 9, OrderID: 42, GatewayOrderID: "order_EXISTING", Status: domain.PaymentStatusPending, Amount: d("430")},
			},
		}
		gw := &stubGateway{}
		svc := newTestService(repo, nil, companies, coupon.Usage{}, gw, &stubProducer{})

		res, err := svc.CreateGatewayOrder(context.Background(), 1, 42)
		require.NoError(t, err)
		assert.Equal(t, "order_EXISTING", res.GatewayOrderID)
		assert.Equal(t, 0, gw.createCalls)
		assert.Empty(t, repo.upserted)
	})

	t.Run("another buyer cannot open a payment session", func(t *testing.T) {
		repo := &stubRepo{orders: map[int64]domain.Order{42: order}}
		svc := newTestService(repo, nil, companies, coupon.Usage{}, &stubGateway{}, &stubProducer{})
		_, err := svc.CreateGatewayOrder(context.Background(), 2, 42)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("gateway failure surfaces as a checkout failure", func(t *testing.T) {
		repo := &stubRepo{orders: map[int64]domain.Order{42: order}}
		gw := &stubGateway{createErr: assert.AnError}
		svc := newTestService(repo, nil, companies, coupon.Usage{}, gw, &stubProducer{})
		_, err := svc.CreateGatewayOrder(context.Background(), 1, 42)
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
		assert.Empty(t, repo.upserted)
	})
}

func TestService_HandlePaymentSuccess(t *testing.T) {
	order := domain.Order{
		ID:      42,
		SN:      "17104987000001aaaaaaaaaaaaaaaaaa",
		BuyerID: 1,
		Items: []domain.OrderItem{
			{ProductID: 1, CompanyID: 100, TotalPrice: d("200")},
			{ProductID: 2, CompanyID: 300, TotalPrice: d("80")},
		},
		Subtotal:    d("280"),
		CGST:        d("25.2"),
		SGST:        d("25.2"),
		TaxAmount:   d("50.4"),
		TotalAmount: d("330.4"),
		Status:      domain.OrderStatusPending,
	}
	pending := domain.Payment{ID: 9, OrderID: 42, GatewayOrderID: "order_TEST", Status: domain.PaymentStatusPending, Amount: d("330.4")}

	t.Run("verified payment completes order and writes invoice", func(t *testing.T) {
		repo := &stubRepo{
			orders:   map[int64]domain.Order{42: order},
			payments: map[string]domain.Payment{"order_TEST": pending},
			applied:  true,
		}
		producer := &stubProducer{}
		svc := newTestService(repo, nil, nil, coupon.Usage{}, &stubGateway{signatureOK: true}, producer)

		err := svc.HandlePaymentSuccess(context.Background(), "order_TEST", "pay_1", "sig")
		require.NoError(t, err)
		require.Len(t, repo.succeeded, 1)
		inv := repo.succeeded[0]
		assert.Equal(t, "INV-2403-0042", inv.InvoiceNumber)
		assert.Equal(t, "29AABCT1332L1ZT", inv.SellerGSTIN)
		assert.True(t, inv.TotalAmount.Equal(d("330.4")))
		require.Len(t, producer.events, 1)
		assert.Equal(t, order.SN, producer.events[0].OrderSN)
		assert.Equal(t, []int64{100, 300}, producer.events[0].CompanyIDs)
	})

	t.Run("invalid signature is rejected before any write", func(t *testing.T) {
		repo := &stubRepo{
			orders:   map[int64]domain.Order{42: order},
			payments: map[string]domain.Payment{"order_TEST": pending},
			applied:  true,
		}
		svc := newTestService(repo, nil, nil, coupon.Usage{}, &stubGateway{signatureOK: false}, &stubProducer{})
		err := svc.HandlePaymentSuccess(context.Background(), "order_TEST", "pay_1", "bad")
		assert.ErrorIs(t, err, ErrInvalidSignature)
		assert.Empty(t, repo.succeeded)
	})

	t.Run("replay of a succeeded payment is a no-op", func(t *testing.T) {
		done := pending
		done.Status = domain.PaymentStatusSucceeded
		repo := &stubRepo{
			orders:   map[int64]domain.Order{42: order},
			payments: map[string]domain.Payment{"order_TEST": done},
			applied:  true,
		}
		producer := &stubProducer{}
		svc := newTestService(repo, nil, nil, coupon.Usage{}, &stubGateway{signatureOK: true}, producer)

		err := svc.HandlePaymentSuccess(context.Background(), "order_TEST", "pay_1", "sig")
		require.NoError(t, err)
		assert.Empty(t, repo.succeeded)
		assert.Empty(t, producer.events)
	})

	t.Run("concurrent replay caught by the row guard produces no event", func(t *testing.T) {
		repo := &stubRepo{
			orders:   map[int64]domain.Order{42: order},
			payments: map[string]domain.Payment{"order_TEST": pending},
			applied:  false,
		}
		producer := &stubProducer{}
		svc := newTestService(repo, nil, nil, coupon.Usage{}, &stubGateway{signatureOK: true}, producer)

		err := svc.HandlePaymentSuccess(context.Background(), "order_TEST", "pay_1", "sig")
		require.NoError(t, err)
		assert.Empty(t, producer.events)
	})

	t.Run("unknown gateway order", func(t *testing.T) {
		repo := &stubRepo{orders: map[int64]domain.Order{}, payments: map[string]domain.Payment{}}
		svc := newTestService(repo, nil, nil, coupon.Usage{}, &stubGateway{signatureOK: true}, &stubProducer{})
		err := svc.HandlePaymentSuccess(context.Background(), "order_NOPE", "pay_1", "sig")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestService_HandleWebhookPaymentCaptured(t *testing.T) {
	order := domain.Order{
		ID: 42, SN: "sn-42", BuyerID: 1,
		Items:       []domain.OrderItem{{ProductID: 1, CompanyID: 100, TotalPrice: d("100")}},
		TotalAmount: d("118"),
	}
	pending := domain.Payment{ID: 9, OrderID: 42, GatewayOrderID: "order_TEST", Status: domain.PaymentStatusPending, Amount: d("118")}

	repo := &stubRepo{
		orders:   map[int64]domain.Order{42: order},
		payments: map[string]domain.Payment{"order_TEST": pending},
		applied:  true,
	}
	// The webhook path never sees a client signature, so the gateway
	// stub would fail a signature check if it were consulted.
	svc := newTestService(repo, nil, nil, coupon.Usage{}, &stubGateway{signatureOK: false}, &stubProducer{})

	err := svc.HandleWebhookPaymentCaptured(context.Background(), "order_TEST", "pay_1")
	require.NoError(t, err)
	require.Len(t, repo.succeeded, 1)
}
