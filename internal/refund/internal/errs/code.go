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

package errs

var (
	SystemError       = ErrorCode{Code: 507001, Msg: "internal error"}
	InvalidInput      = ErrorCode{Code: 507002, Msg: "invalid request"}
	RefundNotEligible = ErrorCode{Code: 507003, Msg: "order is not eligible for refund"}
	AmountExceedsCap  = ErrorCode{Code: 507004, Msg: "requested amount exceeds the refundable remainder"}
	RefundNotFound    = ErrorCode{Code: 507404, Msg: "refund not found"}
	OrderNotFound     = ErrorCode{Code: 507405, Msg: "order not found"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
