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

	"github.com/ecodeclub/mq-api"
	"github.com/promohub/promohub/internal/pkg/mqx"
)

//go:generate mockgen -source=./producer.go -destination=../../mocks/producer.mock.go -package=ordermocks OrderCompletedProducer
type OrderCompletedProducer interface {
	Produce(ctx context.Context, evt OrderCompletedEvent) error
}

func NewOrderCompletedProducer(q mq.MQ) (OrderCompletedProducer, error) {
	return mqx.NewGeneralProducer[OrderCompletedEvent](q, OrderCompletedEventName)
}
