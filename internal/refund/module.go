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

package refund

import (
	"github.com/promohub/promohub/internal/refund/internal/domain"
	"github.com/promohub/promohub/internal/refund/internal/service"
	"github.com/promohub/promohub/internal/refund/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Refund       = domain.Refund
	Eligibility  = domain.Eligibility
)

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
}
