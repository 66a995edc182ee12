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

package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayGateway_VerifyPaymentSignature(t *testing.T) {
	g := NewRazorpayGateway(Config{KeyID: "rzp_test_key", KeySecret: "key-secret", WebhookSecret: "webhook-secret"})

	valid := sign("key-secret", []byte("order_ABC|pay_XYZ"))

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			orderID:   "order_ABC",
			paymentID: "pay_XYZ",
			signature: valid,
			want:      true,
		},
		{
			name:      "signature over a different payment id",
			orderID:   "order_ABC",
			paymentID: "pay_OTHER",
			signature: valid,
			want:      false,
		},
		{
			name:      "signature computed with the webhook secret",
			orderID:   "order_ABC",
			paymentID: "pay_XYZ",
			signature: sign("webhook-secret", []byte("order_ABC|pay_XYZ")),
			want:      false,
		},
		{
			name:      "empty signature",
			orderID:   "order_ABC",
			paymentID: "pay_XYZ",
			signature: "",
			want:      false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.VerifyPaymentSignature(tc.orderID, tc.paymentID, tc.signature))
		})
	}
}

func TestRazorpayGateway_VerifyWebhookSignature(t *testing.T) {
	g := NewRazorpayGateway(Config{KeyID: "rzp_test_key", KeySecret: "key-secret", WebhookSecret: "webhook-secret"})

	body := []byte(`{"event":"payment.captured","payload":{}}`)

	assert.True(t, g.VerifyWebhookSignature(body, sign("webhook-secret", body)))
	assert.False(t, g.VerifyWebhookSignature(body, sign("key-secret", body)))
	assert.False(t, g.VerifyWebhookSignature([]byte(`{"event":"tampered"}`), sign("webhook-secret", body)))
	assert.False(t, g.VerifyWebhookSignature(body, ""))
}
