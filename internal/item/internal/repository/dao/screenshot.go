// Copyright 2023 ecodeclub
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
	"gorm.io/gorm"
)

type ScreenshotDAO interface {
	Create(ctx context.Context, s Screenshot) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (Screenshot, error)
	ListByItem(ctx context.Context, itemId int64) ([]Screenshot, error)
}

type GORMScreenshotDAO struct {
	db *egorm.Component
}

func NewGORMScreenshotDAO(db *egorm.Component) ScreenshotDAO {
	return &GORMScreenshotDAO{db: db}
}

func (d *GORMScreenshotDAO) Create(ctx context.Context, s Screenshot) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", s.ItemId).First(&Item{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&s).Error; err != nil {
			return err
		}
		return tx.Model(&Item{}).Where("id = ?", s.ItemId).
			Updates(map[string]any{
				"screenshots_count": gorm.Expr("`screenshots_count` + 1"),
				"utime":             now,
			}).Error
	})
	return s.Id, err
}

func (d *GORMScreenshotDAO) Delete(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s Screenshot
		if err := tx.Where("id = ?", id).First(&s).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Screenshot{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}
		return tx.Model(&Item{}).
			Where("id = ? AND screenshots_count > 0", s.ItemId).
			Updates(map[string]any{
				"screenshots_count": gorm.Expr("`screenshots_count` - 1"),
				"utime":             now,
			}).Error
	})
}

func (d *GORMScreenshotDAO) GetById(ctx context.Context, id int64) (Screenshot, error) {
	var s Screenshot
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *GORMScreenshotDAO) ListByItem(ctx context.Context, itemId int64) ([]Screenshot, error) {
	var ss []Screenshot
	err := d.db.WithContext(ctx).Where("item_id = ?", itemId).
		Order("id ASC").Find(&ss).Error
	return ss, err
}
