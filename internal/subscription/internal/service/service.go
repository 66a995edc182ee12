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

package service

import (
	"context"
	"errors"

	"github.com/promohub/promohub/internal/subscription/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrSubscriptionsDisabled is the documented capability gate: the
// subscription flow stays unavailable until the gateway migration
// lands, and callers must be able to assert that unavailability.
var ErrSubscriptionsDisabled = errors.New("subscriptions are disabled pending gateway migration")

type Service interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	// Subscribe always fails with ErrSubscriptionsDisabled.
	Subscribe(ctx context.Context, uid, planID int64) error
}

func NewService() Service {
	return &service{
		plans: []domain.Plan{
			{
				ID:          1,
				Name:        "Pro Monthly",
				Description: "Featured placement and analytics, billed monthly",
				Price:       decimal.NewFromInt(999),
				Interval:    "monthly",
			},
			{
				ID:          2,
				Name:        "Pro Yearly",
				Description: "Featured placement and analytics, billed yearly",
				Price:       decimal.NewFromInt(9999),
				Interval:    "yearly",
			},
		},
	}
}

type service struct {
	plans []domain.Plan
}

func (s *service) ListPlans(_ context.Context) ([]domain.Plan, error) {
	return s.plans, nil
}

func (s *service) Subscribe(_ context.Context, _, _ int64) error {
	return ErrSubscriptionsDisabled
}
