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

type DownloadDAO interface {
	// Create 记一次下载，version 和所属 item 的 downloads_count 同事务 +1
	Create(ctx context.Context, dl Download) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (Download, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Download, error)
}

type GORMDownloadDAO struct {
	db *egorm.Component
}

func NewGORMDownloadDAO(db *egorm.Component) DownloadDAO {
	return &GORMDownloadDAO{db: db}
}

func (d *GORMDownloadDAO) Create(ctx context.Context, dl Download) (int64, error) {
	now := time.Now().UnixMilli()
	dl.Ctime = now
	dl.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v Version
		if err := tx.Where("id = ?", dl.VersionId).First(&v).Error; err != nil {
			return err
		}
		if err := tx.Create(&dl).Error; err != nil {
			return err
		}
		err := tx.Model(&Version{}).Where("id = ?", dl.VersionId).
			Update("downloads_count", gorm.Expr("`downloads_count` + 1")).Error
		if err != nil {
			return err
		}
		return tx.Model(&Item{}).Where("id = ?", v.ItemId).
			Updates(map[string]any{
				"downloads_count": gorm.Expr("`downloads_count` + 1"),
				"utime":           now,
			}).Error
	})
	return dl.Id, err
}

func (d *GORMDownloadDAO) Delete(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dl Download
		if err := tx.Where("id = ?", id).First(&dl).Error; err != nil {
			return err
		}
		var v Version
		if err := tx.Where("id = ?", dl.VersionId).First(&v).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Download{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}
		err := tx.Model(&Version{}).
			Where("id = ? AND downloads_count > 0", dl.VersionId).
			Update("downloads_count", gorm.Expr("`downloads_count` - 1")).Error
		if err != nil {
			return err
		}
		return tx.Model(&Item{}).
			Where("id = ? AND downloads_count > 0", v.ItemId).
			Updates(map[string]any{
				"downloads_count": gorm.Expr("`downloads_count` - 1"),
				"utime":           now,
			}).Error
	})
}

func (d *GORMDownloadDAO) GetById(ctx context.Context, id int64) (Download, error) {
	var dl Download
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&dl).Error
	return dl, err
}

func (d *GORMDownloadDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Download, error) {
	dls := make([]Download, 0, limit)
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&dls).Error
	return dls, err
}
