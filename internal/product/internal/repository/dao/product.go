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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
)

type ProductDAO interface {
	Save(ctx context.Context, p Product) (int64, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindActiveByIDs(ctx context.Context, ids []int64) ([]Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &productGORMDAO{db: db}
}

type productGORMDAO struct {
	db *egorm.Component
}

func (g *productGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := g.db.WithContext(ctx).Create(&p).Error
		return p.Id, err
	}
	err := g.db.WithContext(ctx).Model(&Product{}).Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":           p.Name,
			"description":    p.Description,
			"price":          p.Price,
			"discount_price": p.DiscountPrice,
			"company_id":     p.CompanyId,
			"is_active":      p.IsActive,
			"utime":          p.Utime,
		}).Error
	return p.Id, err
}

func (g *productGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *productGORMDAO) FindActiveByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var ps []Product
	err := g.db.WithContext(ctx).Where("id IN ? AND is_active = ?", ids, true).Find(&ps).Error
	return ps, err
}

func (g *productGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var ps []Product
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&ps).Error
	return ps, err
}

func (g *productGORMDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Product{}).Count(&total).Error
	return total, err
}

type Product struct {
	Id            int64               `gorm:"primaryKey;autoIncrement"`
	Name          string              `gorm:"type:varchar(255);not null"`
	Description   string              `gorm:"not null"`
	Price         decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	DiscountPrice decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	CompanyId     int64               `gorm:"not null;index:idx_company_id"`
	IsActive      bool                `gorm:"not null;default:true;index:idx_is_active"`
	Ctime         int64
	Utime         int64
}
