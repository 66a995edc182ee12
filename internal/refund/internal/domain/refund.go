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

type RefundStatus uint8

func (s RefundStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	RefundStatusPending    RefundStatus = 1
	RefundStatusProcessing RefundStatus = 2
	RefundStatusSucceeded  RefundStatus = 3
	RefundStatusFailed     RefundStatus = 4
)

// Refund is a bookkeeping row. Gateway execution is an explicit future
// integration; initiating a refund records it and nothing more.
type Refund struct {
	ID          int64
	OrderID     int64
	Amount      decimal.Decimal
	Reason      string
	Status      RefundStatus
	ProcessedAt int64
	Ctime       int64
	Utime       int64
}

// Eligibility is the outcome of the refund-window and running-total
// checks. Reason and MaxAmount are mutually exclusive: an ineligible
// order carries a reason, an eligible one the refundable remainder.
type Eligibility struct {
	Eligible  bool
	Reason    string
	MaxAmount decimal.Decimal
}
