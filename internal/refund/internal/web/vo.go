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
	"github.com/promohub/promohub/internal/refund/internal/domain"
)

type InitiateRefundReq struct {
	OrderID int64  `json:"orderId"`
	Amount  string `json:"amount"`
	Reason  string `json:"reason"`
}

type InitiateRefundResp struct {
	Refund Refund `json:"refund"`
	Note   string `json:"note"`
}

type EligibilityReq struct {
	OrderID int64 `json:"orderId"`
}

type EligibilityResp struct {
	Eligible  bool   `json:"eligible"`
	Reason    string `json:"reason,omitempty"`
	MaxAmount string `json:"maxAmount,omitempty"`
}

type ListRefundsReq struct {
	OrderID int64 `json:"orderId,omitempty"`
	Offset  int   `json:"offset,omitempty"`
	Limit   int   `json:"limit,omitempty"`
}

type ListRefundsResp struct {
	Total   int64    `json:"total"`
	Refunds []Refund `json:"refunds"`
}

type RefundOutcomeReq struct {
	RefundID int64 `json:"refundId"`
}

type Refund struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	Amount      string `json:"amount"`
	Reason      string `json:"reason,omitempty"`
	Status      uint8  `json:"status"`
	ProcessedAt int64  `json:"processedAt,omitempty"`
	Ctime       int64  `json:"ctime"`
}

func newRefund(r domain.Refund) Refund {
	return Refund{
		ID:          r.ID,
		OrderID:     r.OrderID,
		Amount:      r.Amount.StringFixed(2),
		Reason:      r.Reason,
		Status:      r.Status.ToUint8(),
		ProcessedAt: r.ProcessedAt,
		Ctime:       r.Ctime,
	}
}
