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
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

// Transfer routes a portion of a captured payment to a connected
// vendor sub-account. Amounts are in minor currency units.
type Transfer struct {
	AccountID   string
	AmountMinor int64
	Currency    string
}

type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]any
	Transfers   []Transfer
}

type CreatedOrder struct {
	ID          string
	AmountMinor int64
	Currency    string
}

//go:generate mockgen -source=./razorpay.go -destination=../../mocks/gateway.mock.go -package=ordermocks Gateway
type Gateway interface {
	// CreateOrder opens a payment-collection session with the gateway.
	// It must be called at most once per internal order; callers enforce
	// that through the payment row keyed by order id.
	CreateOrder(ctx context.Context, req OrderRequest) (CreatedOrder, error)
	KeyID() string
	// VerifyPaymentSignature checks the HMAC-SHA256 the client returns
	// after collecting a payment, computed over "{orderID}|{paymentID}".
	VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool
	// VerifyWebhookSignature checks the HMAC over the raw webhook body
	// using the webhook secret, which is distinct from the key secret.
	VerifyWebhookSignature(body []byte, signature string) bool
}

type Config struct {
	KeyID         string `yaml:"keyId"`
	KeySecret     string `yaml:"keySecret"`
	WebhookSecret string `yaml:"webhookSecret"`
}

func NewRazorpayGateway(cfg Config) Gateway {
	return &razorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
	}
}

type razorpayGateway struct {
	client *razorpay.Client
	cfg    Config
}

func (g *razorpayGateway) CreateOrder(_ context.Context, req OrderRequest) (CreatedOrder, error) {
	data := map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	if len(req.Notes) > 0 {
		data["notes"] = req.Notes
	}
	if len(req.Transfers) > 0 {
		transfers := make([]map[string]interface{}, 0, len(req.Transfers))
		for _, t := range req.Transfers {
			transfers = append(transfers, map[string]interface{}{
				"account":  t.AccountID,
				"amount":   t.AmountMinor,
				"currency": t.Currency,
			})
		}
		data["transfers"] = transfers
	}
	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		return CreatedOrder{}, fmt.Errorf("create gateway order failed: %w", err)
	}
	id, ok := resp["id"].(string)
	if !ok || id == "" {
		return CreatedOrder{}, fmt.Errorf("gateway order response missing id: %v", resp)
	}
	res := CreatedOrder{
		ID:          id,
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
	}
	if amount, ok := resp["amount"].(float64); ok {
		res.AmountMinor = int64(amount)
	}
	if currency, ok := resp["currency"].(string); ok {
		res.Currency = currency
	}
	return res, nil
}

func (g *razorpayGateway) KeyID() string {
	return g.cfg.KeyID
}

func (g *razorpayGateway) VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	payload := fmt.Sprintf("%s|%s", gatewayOrderID, gatewayPaymentID)
	return verifyHMAC([]byte(payload), signature, g.cfg.KeySecret)
}

func (g *razorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	return verifyHMAC(body, signature, g.cfg.WebhookSecret)
}

func verifyHMAC(payload []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
