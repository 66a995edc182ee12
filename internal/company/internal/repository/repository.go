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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/promohub/promohub/internal/company/internal/domain"
	"github.com/promohub/promohub/internal/company/internal/repository/dao"
)

type CompanyRepository interface {
	Save(ctx context.Context, c domain.Company) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Company, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Company, error)
	List(ctx context.Context, offset, limit int) ([]domain.Company, error)
	Count(ctx context.Context) (int64, error)
}

func NewCompanyRepository(d dao.CompanyDAO) CompanyRepository {
	return &companyRepository{dao: d}
}

type companyRepository struct {
	dao dao.CompanyDAO
}

func (r *companyRepository) Save(ctx context.Context, c domain.Company) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *companyRepository) FindByID(ctx context.Context, id int64) (domain.Company, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Company{}, err
	}
	return r.toDomain(c), nil
}

func (r *companyRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Company, error) {
	cs, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Company) domain.Company {
		return r.toDomain(src)
	}), nil
}

func (r *companyRepository) List(ctx context.Context, offset, limit int) ([]domain.Company, error) {
	cs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Company) domain.Company {
		return r.toDomain(src)
	}), nil
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *companyRepository) toDomain(c dao.Company) domain.Company {
	return domain.Company{
		ID:                c.Id,
		Name:              c.Name,
		GSTIN:             c.GSTIN,
		CommissionRate:    c.CommissionRate,
		RazorpayAccountID: c.RazorpayAccountId,
		BankAccountName:   c.BankAccountName,
		BankAccountNumber: c.BankAccountNumber,
		BankIFSCCode:      c.BankIFSCCode,
		BankName:          c.BankName,
		Ctime:             c.Ctime,
		Utime:             c.Utime,
	}
}

func (r *companyRepository) toEntity(c domain.Company) dao.Company {
	return dao.Company{
		Id:                c.ID,
		Name:              c.Name,
		GSTIN:             c.GSTIN,
		CommissionRate:    c.CommissionRate,
		RazorpayAccountId: c.RazorpayAccountID,
		BankAccountName:   c.BankAccountName,
		BankAccountNumber: c.BankAccountNumber,
		BankIFSCCode:      c.BankIFSCCode,
		BankName:          c.BankName,
	}
}
