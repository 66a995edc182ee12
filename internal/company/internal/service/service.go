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

	"github.com/promohub/promohub/internal/company/internal/domain"
	"github.com/promohub/promohub/internal/company/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/company.mock.go -package=companymocks Service
type Service interface {
	Save(ctx context.Context, c domain.Company) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Company, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Company, error)
	List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error)
}

func NewService(repo repository.CompanyRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CompanyRepository
}

func (s *service) Save(ctx context.Context, c domain.Company) (int64, error) {
	return s.repo.Save(ctx, c)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Company, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Company, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Company, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Company
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return cs, total, eg.Wait()
}
