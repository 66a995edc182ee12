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

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/promohub/promohub/internal/payout/internal/repository"
)

const orderCompletedEvents = "order_completed_events"

// OrderCompletedEvent mirrors the payload the order module publishes
// after a payment-success transaction commits.
type OrderCompletedEvent struct {
	OrderSN     string  `json:"orderSN"`
	BuyerID     int64   `json:"buyerId"`
	CompanyIDs  []int64 `json:"companyIds"`
	TotalAmount string  `json:"totalAmount"`
}

// OrderCompletedConsumer drops the cached vendor balance of every
// company on a completed order, so the next balance read re-derives
// from the ledger.
type OrderCompletedConsumer struct {
	repo     repository.PayoutRepository
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderCompletedConsumer(repo repository.PayoutRepository, q mq.MQ) (*OrderCompletedConsumer, error) {
	groupID := "payout"
	consumer, err := q.Consumer(orderCompletedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderCompletedConsumer{
		repo:     repo,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderCompletedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("failed to consume order completed event", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OrderCompletedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch message: %w", err)
	}

	var evt OrderCompletedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	for _, companyID := range evt.CompanyIDs {
		if err := c.repo.InvalidateBalance(ctx, companyID); err != nil {
			c.logger.Error("failed to invalidate vendor balance cache",
				elog.FieldErr(err),
				elog.Int64("companyId", companyID),
				elog.String("orderSN", evt.OrderSN))
		}
	}
	return nil
}

func (c *OrderCompletedConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
