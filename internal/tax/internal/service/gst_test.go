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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGSTService_CalculateGST(t *testing.T) {
	svc := NewService("Karnataka")

	testCases := []struct {
		name         string
		subtotal     string
		buyerState   string
		wantCGST     string
		wantSGST     string
		wantIGST     string
		wantTotalTax string
		wantTotal    string
		wantIntra    bool
	}{
		{
			name:         "intra state when buyer state matches seller state",
			subtotal:     "1000",
			buyerState:   "Karnataka",
			wantCGST:     "90",
			wantSGST:     "90",
			wantIGST:     "0",
			wantTotalTax: "180",
			wantTotal:    "1180",
			wantIntra:    true,
		},
		{
			name:         "intra state when buyer state matches case insensitively",
			subtotal:     "1000",
			buyerState:   "karnataka",
			wantCGST:     "90",
			wantSGST:     "90",
			wantIGST:     "0",
			wantTotalTax: "180",
			wantTotal:    "1180",
			wantIntra:    true,
		},
		{
			name:         "intra state when buyer state is absent",
			subtotal:     "500",
			buyerState:   "",
			wantCGST:     "45",
			wantSGST:     "45",
			wantIGST:     "0",
			wantTotalTax: "90",
			wantTotal:    "590",
			wantIntra:    true,
		},
		{
			name:         "inter state when buyer state differs",
			subtotal:     "1000",
			buyerState:   "Maharashtra",
			wantCGST:     "0",
			wantSGST:     "0",
			wantIGST:     "180",
			wantTotalTax: "180",
			wantTotal:    "1180",
			wantIntra:    false,
		},
		{
			name:         "zero subtotal",
			subtotal:     "0",
			buyerState:   "Karnataka",
			wantCGST:     "0",
			wantSGST:     "0",
			wantIGST:     "0",
			wantTotalTax: "0",
			wantTotal:    "0",
			wantIntra:    true,
		},
		{
			// Each half rounds up on its own, so the intra-state tax on
			// 0.06 is one paisa more than the inter-state tax would be.
			name:         "components rounded independently not derived by halving",
			subtotal:     "0.06",
			buyerState:   "",
			wantCGST:     "0.01",
			wantSGST:     "0.01",
			wantIGST:     "0",
			wantTotalTax: "0.02",
			wantTotal:    "0.08",
			wantIntra:    true,
		},
		{
			name:         "inter state rounding of the same amount",
			subtotal:     "0.06",
			buyerState:   "Kerala",
			wantCGST:     "0",
			wantSGST:     "0",
			wantIGST:     "0.01",
			wantTotalTax: "0.01",
			wantTotal:    "0.07",
			wantIntra:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.CalculateGST(decimal.RequireFromString(tc.subtotal), tc.buyerState)
			assert.True(t, got.CGST.Equal(decimal.RequireFromString(tc.wantCGST)), "cgst = %s", got.CGST)
			assert.True(t, got.SGST.Equal(decimal.RequireFromString(tc.wantSGST)), "sgst = %s", got.SGST)
			assert.True(t, got.IGST.Equal(decimal.RequireFromString(tc.wantIGST)), "igst = %s", got.IGST)
			assert.True(t, got.TotalTax.Equal(decimal.RequireFromString(tc.wantTotalTax)), "totalTax = %s", got.TotalTax)
			assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString(tc.wantTotal)), "totalAmount = %s", got.TotalAmount)
			assert.Equal(t, tc.wantIntra, got.IsIntraState)
			assert.True(t, got.CGST.Equal(got.SGST))
		})
	}
}

func TestGSTService_ValidateGSTIN(t *testing.T) {
	svc := NewService("Karnataka")

	testCases := []struct {
		name  string
		gstin string
		want  bool
	}{
		{name: "valid karnataka gstin", gstin: "29AABCT1332L1ZT", want: true},
		{name: "valid maharashtra gstin", gstin: "27AAPFU0939F1ZV", want: true},
		{name: "too short", gstin: "29AABCT1332L1Z", want: false},
		{name: "missing literal Z", gstin: "29AABCT1332L1XT", want: false},
		{name: "lowercase letters rejected", gstin: "29aabct1332l1zt", want: false},
		{name: "entity number zero rejected", gstin: "29AABCT1332L0ZT", want: false},
		{name: "empty", gstin: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.ValidateGSTIN(tc.gstin))
		})
	}
}

func TestGSTService_StateFromGSTIN(t *testing.T) {
	svc := NewService("Karnataka")

	state, ok := svc.StateFromGSTIN("29AABCT1332L1ZT")
	assert.True(t, ok)
	assert.Equal(t, "Karnataka", state)

	state, ok = svc.StateFromGSTIN("07AABCT1332L1ZT")
	assert.True(t, ok)
	assert.Equal(t, "Delhi", state)

	// 25 was never assigned a state code
	_, ok = svc.StateFromGSTIN("25AABCT1332L1ZT")
	assert.False(t, ok)

	_, ok = svc.StateFromGSTIN("not-a-gstin")
	assert.False(t, ok)
}
