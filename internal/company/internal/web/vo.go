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
	"github.com/promohub/promohub/internal/company/internal/domain"
	"github.com/shopspring/decimal"
)

type SaveCompanyReq struct {
	Company Company `json:"company"`
}

type SaveCompanyResp struct {
	ID int64 `json:"id"`
}

type ListCompaniesReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListCompaniesResp struct {
	Total     int64     `json:"total,omitempty"`
	Companies []Company `json:"companies,omitempty"`
}

type Company struct {
	ID                int64  `json:"id,omitempty"`
	Name              string `json:"name"`
	GSTIN             string `json:"gstin,omitempty"`
	CommissionRate    string `json:"commissionRate"`
	RazorpayAccountID string `json:"razorpayAccountId,omitempty"`
	BankAccountName   string `json:"bankAccountName,omitempty"`
	BankAccountNumber string `json:"bankAccountNumber,omitempty"`
	BankIFSCCode      string `json:"bankIfscCode,omitempty"`
	BankName          string `json:"bankName,omitempty"`
}

func newCompany(c domain.Company) Company {
	return Company{
		ID:                c.ID,
		Name:              c.Name,
		GSTIN:             c.GSTIN,
		CommissionRate:    c.CommissionRate.String(),
		RazorpayAccountID: c.RazorpayAccountID,
		BankAccountName:   c.BankAccountName,
		BankAccountNumber: c.BankAccountNumber,
		BankIFSCCode:      c.BankIFSCCode,
		BankName:          c.BankName,
	}
}

func (c Company) toDomain() domain.Company {
	res := domain.Company{
		ID:                c.ID,
		Name:              c.Name,
		GSTIN:             c.GSTIN,
		RazorpayAccountID: c.RazorpayAccountID,
		BankAccountName:   c.BankAccountName,
		BankAccountNumber: c.BankAccountNumber,
		BankIFSCCode:      c.BankIFSCCode,
		BankName:          c.BankName,
	}
	res.CommissionRate, _ = decimal.NewFromString(c.CommissionRate)
	return res
}
