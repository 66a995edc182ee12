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
	"github.com/promohub/promohub/internal/payout/internal/domain"
)

type CreatePayoutReq struct {
	CompanyID int64  `json:"companyId"`
	NetAmount string `json:"netAmount"`
	Notes     string `json:"notes"`
}

type ProcessPayoutReq struct {
	PayoutID      int64  `json:"payoutId"`
	BankReference string `json:"bankReference"`
}

type ListPayoutsReq struct {
	CompanyID int64 `json:"companyId,omitempty"`
	Offset    int   `json:"offset,omitempty"`
	Limit     int   `json:"limit,omitempty"`
}

type ListPayoutsResp struct {
	Total   int64    `json:"total"`
	Payouts []Payout `json:"payouts"`
}

type VendorBalanceReq struct {
	CompanyID int64 `json:"companyId"`
}

type VendorBalanceResp struct {
	CompanyID       int64  `json:"companyId"`
	TotalSales      string `json:"totalSales"`
	TotalCommission string `json:"totalCommission"`
	TotalPaidOut    string `json:"totalPaidOut"`
	PendingPayout   string `json:"pendingPayout"`
}

type Payout struct {
	ID            int64  `json:"id"`
	CompanyID     int64  `json:"companyId"`
	GrossAmount   string `json:"grossAmount"`
	PlatformFee   string `json:"platformFee"`
	NetAmount     string `json:"netAmount"`
	Status        uint8  `json:"status"`
	BankReference string `json:"bankReference,omitempty"`
	Notes         string `json:"notes,omitempty"`
	ProcessedAt   int64  `json:"processedAt,omitempty"`
	Ctime         int64  `json:"ctime"`
}

func newPayout(p domain.Payout) Payout {
	return Payout{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		GrossAmount:   p.GrossAmount.StringFixed(2),
		PlatformFee:   p.PlatformFee.StringFixed(2),
		NetAmount:     p.NetAmount.StringFixed(2),
		Status:        p.Status.ToUint8(),
		BankReference: p.BankReference,
		Notes:         p.Notes,
		ProcessedAt:   p.ProcessedAt,
		Ctime:         p.Ctime,
	}
}

func newVendorBalance(b domain.Balance) VendorBalanceResp {
	return VendorBalanceResp{
		CompanyID:       b.CompanyID,
		TotalSales:      b.TotalSales.StringFixed(2),
		TotalCommission: b.TotalCommission.StringFixed(2),
		TotalPaidOut:    b.TotalPaidOut.StringFixed(2),
		PendingPayout:   b.PendingPayout.StringFixed(2),
	}
}
