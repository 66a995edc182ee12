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

// Data is everything a rendered tax invoice needs. All amounts are
// already computed and rounded; rendering formats them losslessly and
// never recalculates.
type Data struct {
	InvoiceNumber string
	IssuedAt      int64
	OrderSN       string

	BuyerName    string
	BuyerAddress string
	BuyerState   string

	SellerName    string
	SellerAddress string
	SellerGSTIN   string

	Items []LineItem

	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	IGST           decimal.Decimal
	TotalAmount    decimal.Decimal
}

type LineItem struct {
	Name       string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
