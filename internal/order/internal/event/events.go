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

package event

const OrderCompletedEventName = "order_completed_events"

// OrderCompletedEvent is published after the payment-success
// transaction commits. Consumers treat it as advisory; the order row
// is the source of truth.
type OrderCompletedEvent struct {
	OrderSN     string  `json:"orderSN"`
	BuyerID     int64   `json:"buyerId"`
	CompanyIDs  []int64 `json:"companyIds"`
	TotalAmount string  `json:"totalAmount"`
}
