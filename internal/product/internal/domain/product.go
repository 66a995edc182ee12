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

type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         decimal.Decimal
	DiscountPrice decimal.Decimal
	HasDiscount   bool
	CompanyID     int64
	IsActive      bool
	Ctime         int64
	Utime         int64
}

// EffectiveUnitPrice is the price an order line snapshots: the discount
// price when one is set, the list price otherwise.
func (p Product) EffectiveUnitPrice() decimal.Decimal {
	if p.HasDiscount {
		return p.DiscountPrice
	}
	return p.Price
}
