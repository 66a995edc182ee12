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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ListPlans(t *testing.T) {
	svc := NewService()
	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "monthly", plans[0].Interval)
	assert.Equal(t, "yearly", plans[1].Interval)
}

func TestService_SubscribeIsGated(t *testing.T) {
	svc := NewService()
	err := svc.Subscribe(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSubscriptionsDisabled)
}
