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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
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
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrProductUnavailable = errors.New("some products are unavailable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvalidSignature   = errors.New("invalid payment signature")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

const currencyINR = "INR"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// SellerConfig is the platform's legal identity, stamped onto every
// invoice.
type SellerConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	GSTIN   string `yaml:"gstin"`
}

//go:generate mockgen -source=./service.go -destination=../../mocks/order.mock.go -package=ordermocks Service
type Service interface {
	// CalculateSummary resolves the cart against live catalog prices and
	// produces the full pricing breakdown. It has no side effects and is
	// used both by the preview endpoint and internally by CreateOrder.
	CalculateSummary(ctx context.Context, items []domain.CartItem, couponCode, buyerState string) (domain.Summary, error)
	// CreateOrder recomputes the summary, then persists the order header,
	// its items and the coupon usage increment in one transaction. The
	// client-supplied totals are never trusted.
	CreateOrder(ctx context.Context, req domain.CheckoutRequest) (domain.Order, error)
	// CreateGatewayOrder opens a payment-collection session, splitting
	// vendor shares into gateway transfers. It is idempotent per order:
	// an existing gateway order id is returned unchanged.
	CreateGatewayOrder(ctx context.Context, buyerID, orderID int64) (domain.GatewayOrder, error)
	// HandlePaymentSuccess verifies the client-returned signature and
	// atomically flips payment, order and invoice state. Replays of an
	// already-succeeded payment are no-ops.
	HandlePaymentSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) error
	// HandleWebhookPaymentCaptured is the webhook backstop for
	// HandlePaymentSuccess. The transport layer has already validated
	// the webhook body signature.
	HandleWebhookPaymentCaptured(ctx context.Context, gatewayOrderID, gatewayPaymentID string) error
	HandlePaymentFailed(ctx context.Context, gatewayOrderID, reason string) error

	ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	// RenderInvoice renders the persisted invoice snapshot of a
	// completed order as an HTML tax document.
	RenderInvoice(ctx context.Context, buyerID int64, orderSN string) (string, error)
	// ApplyRefundOutcome reconciles order and payment status after a
	// refund succeeds. A full refund moves both to REFUNDED; a partial
	// one only marks the payment PARTIALLY_REFUNDED.
	ApplyRefundOutcome(ctx context.Context, orderID int64, fullyRefunded bool) error
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	companySvc company.Service,
	couponSvc coupon.Service,
	taxSvc tax.Service,
	invoiceSvc invoice.Service,
	gw gateway.Gateway,
	snGenerator *sequencenumber.Generator,
	producer event.OrderCompletedProducer,
	seller SellerConfig) Service {
	return &service{
		repo:        repo,
		productSvc:  productSvc,
		companySvc:  companySvc,
		couponSvc:   couponSvc,
		taxSvc:      taxSvc,
		invoiceSvc:  invoiceSvc,
		gw:          gw,
		snGenerator: snGenerator,
		producer:    producer,
		seller:      seller,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	productSvc  product.Service
	companySvc  company.Service
	couponSvc   coupon.Service
	taxSvc      tax.Service
	invoiceSvc  invoice.Service
	gw          gateway.Gateway
	snGenerator *sequencenumber.Generator
	producer    event.OrderCompletedProducer
	seller      SellerConfig
	logger      *elog.Component
}

func (s *service) CalculateSummary(ctx context.Context, items []domain.CartItem, couponCode, buyerState string) (domain.Summary, error) {
	if len(items) == 0 {
		return domain.Summary{}, ErrEmptyCart
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return domain.Summary{}, ErrInvalidQuantity
		}
	}

	productIDs := distinct(slice.Map(items, func(idx int, src domain.CartItem) int64 {
		return src.ProductID
	}))
	products, err := s.productSvc.FindActiveByIDs(ctx, productIDs)
	if err != nil {
		return domain.Summary{}, err
	}
	// Covers both unknown and inactive products. Duplicate product ids
	// in the cart are allowed; the check counts distinct ids only.
	if len(products) != len(productIDs) {
		return domain.Summary{}, ErrProductUnavailable
	}
	productMap := make(map[int64]product.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	companyIDs := distinct(slice.Map(products, func(idx int, src product.Product) int64 {
		return src.CompanyID
	}))
	companies, err := s.companySvc.FindByIDs(ctx, companyIDs)
	if err != nil {
		return domain.Summary{}, err
	}
	companyMap := make(map[int64]company.Company, len(companies))
	for _, c := range companies {
		companyMap[c.ID] = c
	}

	var subtotal, itemDiscount decimal.Decimal
	lines := make([]domain.SummaryLine, 0, len(items))
	for _, it := range items {
		p := productMap[it.ProductID]
		qty := decimal.NewFromInt(it.Quantity)
		total := p.EffectiveUnitPrice().Mul(qty).Round(2)
		lines = append(lines, domain.SummaryLine{
			ProductID:      p.ID,
			CompanyID:      p.CompanyID,
			ProductName:    p.Name,
			Quantity:       it.Quantity,
			UnitPrice:      p.Price,
			DiscountPrice:  p.DiscountPrice,
			HasDiscount:    p.HasDiscount,
			CommissionRate: companyMap[p.CompanyID].CommissionRate,
			TotalPrice:     total,
		})
		subtotal = subtotal.Add(total)
		if p.HasDiscount {
			itemDiscount = itemDiscount.Add(p.Price.Sub(p.DiscountPrice).Mul(qty))
		}
	}
	subtotal = subtotal.Round(2)

	usage, err := s.couponSvc.Evaluate(ctx, couponCode, subtotal)
	if err != nil {
		return domain.Summary{}, err
	}

	// A fixed coupon larger than the subtotal must never drive the tax
	// base negative.
	taxable := subtotal.Sub(usage.Discount)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	bd := s.taxSvc.CalculateGST(taxable, buyerState)

	res := domain.Summary{
		Lines:          lines,
		ItemDiscount:   itemDiscount.Round(2),
		Subtotal:       subtotal,
		CouponDiscount: usage.Discount,
		TaxableAmount:  bd.Subtotal,
		CGST:           bd.CGST,
		SGST:           bd.SGST,
		IGST:           bd.IGST,
		TaxAmount:      bd.TotalTax,
		TotalAmount:    bd.TotalAmount,
		IsIntraState:   bd.IsIntraState,
		BuyerState:     buyerState,
	}
	if usage.Applied {
		res.CouponID = usage.Coupon.ID
		res.CouponCode = usage.Coupon.Code
	}
	return res, nil
}

func (s *service) CreateOrder(ctx context.Context, req domain.CheckoutRequest) (domain.Order, error) {
	summary, err := s.CalculateSummary(ctx, req.Items, req.CouponCode, req.BuyerState)
	if err != nil {
		return domain.Order{}, err
	}
	sn, err := s.snGenerator.Generate(req.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("generate order number failed: %w", err)
	}
	o := domain.Order{
		SN:         sn,
		BuyerID:    req.BuyerID,
		BuyerName:  req.BuyerName,
		CouponID:   summary.CouponID,
		CouponCode: summary.CouponCode,
		Items: slice.Map(summary.Lines, func(idx int, src domain.SummaryLine) domain.OrderItem {
			return domain.OrderItem{
				ProductID:     src.ProductID,
				CompanyID:     src.CompanyID,
				ProductName:   src.ProductName,
				Quantity:      src.Quantity,
				UnitPrice:     src.UnitPrice,
				DiscountPrice: src.DiscountPrice,
				HasDiscount:   src.HasDiscount,
				TotalPrice:    src.TotalPrice,
			}
		}),
		Subtotal:        summary.Subtotal,
		DiscountAmount:  summary.CouponDiscount,
		CGST:            summary.CGST,
		SGST:            summary.SGST,
		IGST:            summary.IGST,
		TaxAmount:       summary.TaxAmount,
		TotalAmount:     summary.TotalAmount,
		Status:          domain.OrderStatusPending,
		BuyerState:      req.BuyerState,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	}
	id, err := s.repo.CreateOrder(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = id
	return o, nil
}

func (s *service) CreateGatewayOrder(ctx context.Context, buyerID, orderID int64) (domain.GatewayOrder, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && o.BuyerID != buyerID) {
		return domain.GatewayOrder{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.GatewayOrder{}, err
	}

	// One gateway order per internal order, ever. Repeated checkout
	// attempts keep reusing the payment row keyed by order id.
	p, err := s.repo.FindPaymentByOrderID(ctx, orderID)
	if err == nil && p.GatewayOrderID != "" {
		return domain.GatewayOrder{
			GatewayOrderID: p.GatewayOrderID,
			Amount:         p.Amount,
			Currency:       currencyINR,
			KeyID:          s.gw.KeyID(),
		}, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.GatewayOrder{}, err
	}

	transfers, err := s.buildTransfers(ctx, o.Items)
	if err != nil {
		return domain.GatewayOrder{}, err
	}
	created, err := s.gw.CreateOrder(ctx, gateway.OrderRequest{
		AmountMinor: toMinorUnits(o.TotalAmount),
		Currency:    currencyINR,
		Receipt:     o.SN,
		Notes:       map[string]any{"orderSN": o.SN},
		Transfers:   transfers,
	})
	if err != nil {
		return domain.GatewayOrder{}, fmt.Errorf("%w: %s", ErrGatewayUnavailable, err.Error())
	}
	err = s.repo.UpsertPayment(ctx, domain.Payment{
		OrderID:        o.ID,
		GatewayOrderID: created.ID,
		Status:         domain.PaymentStatusPending,
		Amount:         o.TotalAmount,
	})
	if err != nil {
		return domain.GatewayOrder{}, err
	}
	return domain.GatewayOrder{
		GatewayOrderID: created.ID,
		Amount:         o.TotalAmount,
		Currency:       currencyINR,
		KeyID:          s.gw.KeyID(),
	}, nil
}

// buildTransfers accumulates one vendor share per company across the
// order lines. Companies without a gateway sub-account are skipped and
// the platform keeps their gross; that is a deliberate fallback, not
// an error. Amounts are minor currency units with fractions rounded
// away before submission.
func (s *service) buildTransfers(ctx context.Context, items []domain.OrderItem) ([]gateway.Transfer, error) {
	companyIDs := distinct(slice.Map(items, func(idx int, src domain.OrderItem) int64 {
		return src.CompanyID
	}))
	companies, err := s.companySvc.FindByIDs(ctx, companyIDs)
	if err != nil {
		return nil, err
	}
	companyMap := make(map[int64]company.Company, len(companies))
	for _, c := range companies {
		companyMap[c.ID] = c
	}

	shares := make(map[int64]decimal.Decimal, len(companies))
	for _, it := range items {
		c, ok := companyMap[it.CompanyID]
		if !ok || c.RazorpayAccountID == "" {
			continue
		}
		vendorShare := it.TotalPrice.Mul(one.Sub(c.CommissionRate.Div(hundred)))
		shares[c.ID] = shares[c.ID].Add(vendorShare)
	}

	transfers := make([]gateway.Transfer, 0, len(shares))
	for _, id := range companyIDs {
		share, ok := shares[id]
		if !ok {
			continue
		}
		transfers = append(transfers, gateway.Transfer{
			AccountID:   companyMap[id].RazorpayAccountID,
			AmountMinor: toMinorUnits(share),
			Currency:    currencyINR,
		})
	}
	return transfers, nil
}

func (s *service) HandlePaymentSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID, signature string) error {
	p, err := s.repo.FindPaymentByGatewayOrderID(ctx, gatewayOrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPaymentNotFound
	}
	if err != nil {
		return err
	}
	if p.Status == domain.PaymentStatusSucceeded {
		return nil
	}
	// Mandatory even for callers that look trustworthy.
	if !s.gw.VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature) {
		return ErrInvalidSignature
	}
	return s.completePayment(ctx, p, gatewayPaymentID, signature)
}

func (s *service) HandleWebhookPaymentCaptured(ctx context.Context, gatewayOrderID, gatewayPaymentID string) error {
	p, err := s.repo.FindPaymentByGatewayOrderID(ctx, gatewayOrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPaymentNotFound
	}
	if err != nil {
		return err
	}
	if p.Status == domain.PaymentStatusSucceeded {
		return nil
	}
	return s.completePayment(ctx, p, gatewayPaymentID, "")
}

func (s *service) completePayment(ctx context.Context, p domain.Payment, gatewayPaymentID, signature string) error {
	o, err := s.repo.FindByID(ctx, p.OrderID)
	if err != nil {
		return err
	}
	p.GatewayPaymentID = gatewayPaymentID
	p.GatewaySignature = signature
	applied, err := s.repo.MarkPaymentSucceeded(ctx, p, s.buildInvoice(o))
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	evt := event.OrderCompletedEvent{
		OrderSN: o.SN,
		BuyerID: o.BuyerID,
		CompanyIDs: distinct(slice.Map(o.Items, func(idx int, src domain.OrderItem) int64 {
			return src.CompanyID
		})),
		TotalAmount: o.TotalAmount.String(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("produce order completed event failed",
			elog.FieldErr(err), elog.String("orderSN", o.SN))
	}
	return nil
}

func (s *service) buildInvoice(o domain.Order) domain.Invoice {
	return domain.Invoice{
		OrderID:        o.ID,
		InvoiceNumber:  s.invoiceSvc.GenerateNumber(),
		BuyerName:      o.BuyerName,
		BuyerAddress:   o.BillingAddress,
		BuyerState:     o.BuyerState,
		SellerName:     s.seller.Name,
		SellerAddress:  s.seller.Address,
		SellerGSTIN:    s.seller.GSTIN,
		Subtotal:       o.Subtotal,
		DiscountAmount: o.DiscountAmount,
		CGST:           o.CGST,
		SGST:           o.SGST,
		IGST:           o.IGST,
		TotalAmount:    o.TotalAmount,
	}
}

func (s *service) HandlePaymentFailed(ctx context.Context, gatewayOrderID, reason string) error {
	return s.repo.MarkPaymentFailed(ctx, gatewayOrderID, reason)
}

func (s *service) ListByBuyer(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByBuyer(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByBuyer(ctx, buyerID)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) FindBySN(ctx context.Context, buyerID int64, sn string) (domain.Order, error) {
	o, err := s.repo.FindBySN(ctx, buyerID, sn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (s *service) RenderInvoice(ctx context.Context, buyerID int64, orderSN string) (string, error) {
	o, err := s.FindBySN(ctx, buyerID, orderSN)
	if err != nil {
		return "", err
	}
	inv, err := s.repo.FindInvoiceByOrderID(ctx, o.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvoiceNotFound
	}
	if err != nil {
		return "", err
	}
	return s.invoiceSvc.Render(invoice.Data{
		InvoiceNumber: inv.InvoiceNumber,
		IssuedAt:      inv.Ctime,
		OrderSN:       o.SN,
		BuyerName:     inv.BuyerName,
		BuyerAddress:  inv.BuyerAddress,
		BuyerState:    inv.BuyerState,
		SellerName:    inv.SellerName,
		SellerAddress: inv.SellerAddress,
		SellerGSTIN:   inv.SellerGSTIN,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) invoice.LineItem {
			return invoice.LineItem{
				Name:       src.ProductName,
				Quantity:   src.Quantity,
				UnitPrice:  src.UnitPrice,
				TotalPrice: src.TotalPrice,
			}
		}),
		Subtotal:       inv.Subtotal,
		DiscountAmount: inv.DiscountAmount,
		CGST:           inv.CGST,
		SGST:           inv.SGST,
		IGST:           inv.IGST,
		TotalAmount:    inv.TotalAmount,
	})
}

func (s *service) ApplyRefundOutcome(ctx context.Context, orderID int64, fullyRefunded bool) error {
	return s.repo.UpdateOnRefund(ctx, orderID, fullyRefunded)
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}
