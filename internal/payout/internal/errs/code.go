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
	SystemError         = ErrorCode{Code: 506001, Msg: "internal error"}
	InvalidInput        = ErrorCode{Code: 506002, Msg: "invalid request"}
	InsufficientBalance = ErrorCode{Code: 506003, Msg: "requested amount exceeds the pending payout balance"}
	InvalidTransition   = ErrorCode{Code: 506004, Msg: "payout is not in a processable state"}
	PayoutNotFound      = ErrorCode{Code: 506404, Msg: "payout not found"}
	CompanyNotFound     = ErrorCode{Code: 506405, Msg: "company not found"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
