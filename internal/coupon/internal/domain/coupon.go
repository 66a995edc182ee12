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

type DiscountType uint8

func (t DiscountType) ToUint8() uint8 {
	return uint8(t)
}

const (
	DiscountTypePercentage DiscountType = 1
	DiscountTypeFixed      DiscountType = 2
)

// Coupon codes are stored upper-cased; lookups are exact matches against
// the stored form. Zero-valued MinOrderValue/MaxDiscount/UsageLimit/
// ExpiryDate mean "no constraint".
type Coupon struct {
	ID            int64
	Code          string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinOrderValue decimal.Decimal
	MaxDiscount   decimal.Decimal
	UsageLimit    int64
	UsedCount     int64
	ExpiryDate    int64
	IsActive      bool
	Ctime         int64
	Utime         int64
}

// Usage is the outcome of evaluating a coupon code against a subtotal.
// A code that does not resolve to a usable coupon yields Applied=false
// and a zero discount; non-application is not an error.
type Usage struct {
	Coupon   Coupon
	Discount decimal.Decimal
	Applied  bool
}
