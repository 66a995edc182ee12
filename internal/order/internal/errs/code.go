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
	SystemError        = ErrorCode{Code: 502001, Msg: "internal error"}
	InvalidInput       = ErrorCode{Code: 502002, Msg: "invalid request"}
	ProductUnavailable = ErrorCode{Code: 502003, Msg: "some products are unavailable"}
	InvalidSignature   = ErrorCode{Code: 502004, Msg: "invalid payment signature"}
	OrderNotFound      = ErrorCode{Code: 502404, Msg: "order not found"}
	InvoiceNotFound    = ErrorCode{Code: 502405, Msg: "invoice not found"}
	GatewayUnavailable = ErrorCode{Code: 502502, Msg: "payment gateway unavailable"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
