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

package tax

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/promohub/promohub/internal/tax/internal/service"
)

const defaultSellerState = "Karnataka"

func InitService() Service {
	sellerState := econf.GetString("seller.state")
	if sellerState == "" {
		sellerState = defaultSellerState
	}
	return service.NewService(sellerState)
}

func InitModule() *Module {
	return &Module{Svc: InitService()}
}
