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
	"bytes"
	"fmt"
	"html/template"
	"math/rand/v2"
	"time"

	"github.com/promohub/promohub/internal/invoice/internal/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=./generator.go -destination=../../mocks/invoice.mock.go -package=invoicemocks Service
type Service interface {
	// GenerateNumber produces a human-readable invoice number of the
	// form INV-{YY}{MM}-{4-digit-random}. Collisions are possible and
	// accepted at back-office volumes; the order id stays the real key.
	GenerateNumber() string
	// Render formats the already-computed invoice amounts into a fixed
	// HTML tax document. It is deterministic for a given Data.
	Render(data domain.Data) (string, error)
}

type NowFunc func() time.Time

type RandFunc func(n int) int

func NewService() Service {
	return NewServiceWith(time.Now, rand.IntN)
}

func NewServiceWith(now NowFunc, randN RandFunc) Service {
	return &invoiceService{now: now, randN: randN}
}

type invoiceService struct {
	now   NowFunc
	randN RandFunc
}

func (s *invoiceService) GenerateNumber() string {
	return fmt.Sprintf("INV-%s-%04d", s.now().Format("0601"), s.randN(10000))
}

func (s *invoiceService) Render(data domain.Data) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render invoice %s failed: %w", data.InvoiceNumber, err)
	}
	return buf.String(), nil
}

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"positive": func(d decimal.Decimal) bool {
		return d.IsPositive()
	},
	"date": func(milli int64) string {
		return time.UnixMilli(milli).Format("02 Jan 2006")
	},
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Tax Invoice {{.InvoiceNumber}}</title></head>
<body>
<h1>Tax Invoice</h1>
<p>Invoice No: {{.InvoiceNumber}}<br>Date: {{date .IssuedAt}}<br>Order No: {{.OrderSN}}</p>
<table>
<tr><td>
<h3>Seller</h3>
<p>{{.SellerName}}<br>{{.SellerAddress}}<br>GSTIN: {{.SellerGSTIN}}</p>
</td><td>
<h3>Bill To</h3>
<p>{{.BuyerName}}{{if .BuyerAddress}}<br>{{.BuyerAddress}}{{end}}{{if .BuyerState}}<br>{{.BuyerState}}{{end}}</p>
</td></tr>
</table>
<table border="1">
<tr><th>Item</th><th>Qty</th><th>Unit Price</th><th>Amount</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{money .UnitPrice}}</td><td>{{money .TotalPrice}}</td></tr>
{{end}}</table>
<table>
<tr><td>Subtotal</td><td>{{money .Subtotal}}</td></tr>
{{if positive .DiscountAmount}}<tr><td>Discount</td><td>-{{money .DiscountAmount}}</td></tr>
{{end}}{{if positive .CGST}}<tr><td>CGST (9%)</td><td>{{money .CGST}}</td></tr>
{{end}}{{if positive .SGST}}<tr><td>SGST (9%)</td><td>{{money .SGST}}</td></tr>
{{end}}{{if positive .IGST}}<tr><td>IGST (18%)</td><td>{{money .IGST}}</td></tr>
{{end}}<tr><td><strong>Total</strong></td><td><strong>{{money .TotalAmount}}</strong></td></tr>
</table>
</body>
</html>
`))
