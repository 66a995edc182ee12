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
	"regexp"
	"strings"

	"github.com/promohub/promohub/internal/tax/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	cgstRate = decimal.RequireFromString("0.09")
	sgstRate = decimal.RequireFromString("0.09")
	igstRate = decimal.RequireFromString("0.18")

	// 15 chars: state code, PAN, entity number, literal Z, checksum.
	gstinRegexp = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
)

//go:generate mockgen -source=./gst.go -destination=../../mocks/tax.mock.go -package=taxmocks Service
type Service interface {
	CalculateGST(subtotal decimal.Decimal, buyerState string) domain.GSTBreakdown
	ValidateGSTIN(gstin string) bool
	StateFromGSTIN(gstin string) (string, bool)
}

func NewService(sellerState string) Service {
	return &gstService{sellerState: sellerState}
}

type gstService struct {
	sellerState string
}

// CalculateGST rounds every component to 2 decimal places independently.
// CGST and SGST are rounded separately rather than derived by halving a
// rounded total, which can introduce a 0.01 asymmetry that downstream
// invoices rely on reproducing exactly.
func (s *gstService) CalculateGST(subtotal decimal.Decimal, buyerState string) domain.GSTBreakdown {
	isIntraState := buyerState == "" || strings.EqualFold(buyerState, s.sellerState)

	var cgst, sgst, igst decimal.Decimal
	if isIntraState {
		cgst = subtotal.Mul(cgstRate).Round(2)
		sgst = subtotal.Mul(sgstRate).Round(2)
	} else {
		igst = subtotal.Mul(igstRate).Round(2)
	}

	totalTax := cgst.Add(sgst).Add(igst).Round(2)
	return domain.GSTBreakdown{
		Subtotal:     subtotal.Round(2),
		CGST:         cgst,
		SGST:         sgst,
		IGST:         igst,
		TotalTax:     totalTax,
		TotalAmount:  subtotal.Add(totalTax).Round(2),
		IsIntraState: isIntraState,
	}
}

func (s *gstService) ValidateGSTIN(gstin string) bool {
	return gstinRegexp.MatchString(gstin)
}

// StateFromGSTIN maps the 2-digit GSTIN prefix to a state name. Used to
// infer the buyer state on invoices when only a GSTIN is on file.
func (s *gstService) StateFromGSTIN(gstin string) (string, bool) {
	if !s.ValidateGSTIN(gstin) {
		return "", false
	}
	state, ok := stateCodes[gstin[:2]]
	return state, ok
}

var stateCodes = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}
