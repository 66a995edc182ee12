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

type CompanyDAO interface {
	Save(ctx context.Context, c Company) (int64, error)
	FindByID(ctx context.Context, id int64) (Company, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Company, error)
	List(ctx context.Context, offset, limit int) ([]Company, error)
	Count(ctx context.Context) (int64, error)
}

func NewCompanyGORMDAO(db *egorm.Component) CompanyDAO {
	return &companyGORMDAO{db: db}
}

type companyGORMDAO struct {
	db *egorm.Component
}

func (g *companyGORMDAO) Save(ctx context.Context, c Company) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
		err := g.db.WithContext(ctx).Create(&c).Error
		return c.Id, err
	}
	err := g.db.WithContext(ctx).Model(&Company{}).Where("id = ?", c.Id).
		Updates(map[string]any{
			"name":                c.Name,
			"gstin":               c.GSTIN,
			"commission_rate":     c.CommissionRate,
			"razorpay_account_id": c.RazorpayAccountId,
			"bank_account_name":   c.BankAccountName,
			"bank_account_number": c.BankAccountNumber,
			"bank_ifsc_code":      c.BankIFSCCode,
			"bank_name":           c.BankName,
			"utime":               c.Utime,
		}).Error
	return c.Id, err
}

func (g *companyGORMDAO) FindByID(ctx context.Context, id int64) (Company, error) {
	var c Company
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *companyGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Company, error) {
	var cs []Company
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&cs).Error
	return cs, err
}

func (g *companyGORMDAO) List(ctx context.Context, offset, limit int) ([]Company, error) {
	var cs []Company
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&cs).Error
	return cs, err
}

func (g *companyGORMDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Company{}).Count(&total).Error
	return total, err
}

type Company struct {
	Id                int64           `gorm:"primaryKey;autoIncrement"`
	Name              string          `gorm:"type:varchar(255);not null"`
	GSTIN             string          `gorm:"column:gstin;type:varchar(15);not null;default:''"`
	CommissionRate    decimal.Decimal `gorm:"type:decimal(5,2);not null;comment:percentage, 10 means 10%"`
	RazorpayAccountId string          `gorm:"type:varchar(64);not null;default:'';comment:linked account for transfers, empty means no split"`
	BankAccountName   string          `gorm:"type:varchar(255);not null;default:''"`
	BankAccountNumber string          `gorm:"type:varchar(32);not null;default:''"`
	BankIFSCCode      string          `gorm:"column:bank_ifsc_code;type:varchar(16);not null;default:''"`
	BankName          string          `gorm:"type:varchar(255);not null;default:''"`
	Ctime             int64
	Utime             int64
}
