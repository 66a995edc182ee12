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

// Company is a vendor whose products the platform promotes and sells.
// CommissionRate is a percentage, e.g. 10 means the platform keeps 10%
// of the vendor's gross sales. RazorpayAccountID, when set, enables
// split-payment transfers straight to the vendor's linked account.
type Company struct {
	ID                int64
	Name              string
	GSTIN             string
	CommissionRate    decimal.Decimal
	RazorpayAccountID string
	BankAccountName   string
	BankAccountNumber string
	BankIFSCCode      string
	BankName          string
	Ctime             int64
	Utime             int64
}
