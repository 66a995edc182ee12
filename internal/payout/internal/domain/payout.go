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

type PayoutStatus uint8

func (s PayoutStatus) ToUint8() uint8 {
	return uint8(s)
}

// No transition leaves COMPLETED or FAILED.
const (
	PayoutStatusPending    PayoutStatus = 1
	PayoutStatusProcessing PayoutStatus = 2
	PayoutStatusCompleted  PayoutStatus = 3
	PayoutStatusFailed     PayoutStatus = 4
)

// Payout is a discrete settlement event. GrossAmount = NetAmount +
// PlatformFee always holds; the running pending balance is derived
// from the ledger at read time, never stored here.
type Payout struct {
	ID            int64
	CompanyID     int64
	GrossAmount   decimal.Decimal
	PlatformFee   decimal.Decimal
	NetAmount     decimal.Decimal
	Status        PayoutStatus
	BankReference string
	Notes         string
	ProcessedAt   int64
	Ctime         int64
	Utime         int64
}

// Balance is the derived settlement position of one vendor.
// PendingPayout = max(0, TotalSales - TotalCommission - TotalPaidOut).
type Balance struct {
	CompanyID       int64           `json:"companyId"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	TotalPaidOut    decimal.Decimal `json:"totalPaidOut"`
	PendingPayout   decimal.Decimal `json:"pendingPayout"`
}
