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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/promohub/promohub/internal/payout/internal/domain"
)

const balanceExpiration = 10 * time.Minute

var ErrBalanceNotCached = errors.New("vendor balance not cached")

// BalanceCache holds the derived vendor balance. It is invalidated on
// every write that moves the ledger, not incrementally updated.
type BalanceCache interface {
	Get(ctx context.Context, companyID int64) (domain.Balance, error)
	Set(ctx context.Context, b domain.Balance) error
	Del(ctx context.Context, companyID int64) error
}

func NewBalanceECache(ec ecache.Cache) BalanceCache {
	return &balanceECache{
		ec: &ecache.NamespaceCache{
			Namespace: "payout:",
			C:         ec,
		},
	}
}

type balanceECache struct {
	ec ecache.Cache
}

func (c *balanceECache) Get(ctx context.Context, companyID int64) (domain.Balance, error) {
	val := c.ec.Get(ctx, c.key(companyID))
	if val.KeyNotFound() {
		return domain.Balance{}, ErrBalanceNotCached
	}
	if val.Err != nil {
		return domain.Balance{}, val.Err
	}
	var b domain.Balance
	if err := json.Unmarshal([]byte(val.Val.(string)), &b); err != nil {
		return domain.Balance{}, err
	}
	return b, nil
}

func (c *balanceECache) Set(ctx context.Context, b domain.Balance) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(b.CompanyID), string(data), balanceExpiration)
}

func (c *balanceECache) Del(ctx context.Context, companyID int64) error {
	_, err := c.ec.Delete(ctx, c.key(companyID))
	return err
}

func (c *balanceECache) key(companyID int64) string {
	return fmt.Sprintf("balance:%d", companyID)
}
