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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// ErrVersionUndownloadable 文件和外链一个都没有
var ErrVersionUndownloadable = errors.New("version 必须有文件或者外链")

type VersionDAO interface {
	// Create 发版本，item 的 version_created_at 跟着推到新版本的时间
	Create(ctx context.Context, v Version) (int64, error)
	// Delete 删版本，其下的下载、评论和所有相关计数一起回退，
	// item 的 version_created_at 重算成剩余版本的最大时间
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (Version, error)
	ListByItem(ctx context.Context, itemId int64) ([]Version, error)
}

type GORMVersionDAO struct {
	db *egorm.Component
}

func NewGORMVersionDAO(db *egorm.Component) VersionDAO {
	return &GORMVersionDAO{db: db}
}

func (d *GORMVersionDAO) Create(ctx context.Context, v Version) (int64, error) {
	if v.File == "" && v.Link == "" {
		return 0, ErrVersionUndownloadable
	}
	now := time.Now().UnixMilli()
	v.Ctime = now
	v.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it Item
		if err := tx.Where("id = ?", v.ItemId).First(&it).Error; err != nil {
			return err
		}
		if err := tx.Create(&v).Error; err != nil {
			return err
		}
		return tx.Model(&Item{}).Where("id = ?", v.ItemId).
			Updates(map[string]any{
				"version_created_at": v.Ctime,
				"utime":              now,
			}).Error
	})
	return v.Id, err
}

func (d *GORMVersionDAO) Delete(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v Version
		if err := tx.Where("id = ?", id).First(&v).Error; err != nil {
			return err
		}
		// 下载计数回退到 item
		var dls int64
		err := tx.Model(&Download{}).Where("version_id = ?", id).Count(&dls).Error
		if err != nil {
			return err
		}
		if dls > 0 {
			err = tx.Model(&Item{}).
				Where("id = ? AND downloads_count >= ?", v.ItemId, dls).
				Update("downloads_count", gorm.Expr("`downloads_count` - ?", dls)).Error
			if err != nil {
				return err
			}
		}
		// 评论计数回退到 item 和各个作者
		type authorCount struct {
			Uid int64
			Cnt int64
		}
		var authors []authorCount
		err = tx.Model(&Review{}).
			Select("uid, COUNT(id) AS cnt").
			Where("version_id = ?", id).
			Group("uid").Scan(&authors).Error
		if err != nil {
			return err
		}
		var reviews int64
		for _, a := range authors {
			reviews += a.Cnt
			err = tx.Table("users").
				Where("id = ? AND reviews_count >= ?", a.Uid, a.Cnt).
				Update("reviews_count", gorm.Expr("`reviews_count` - ?", a.Cnt)).Error
			if err != nil {
				return err
			}
		}
		if reviews > 0 {
			err = tx.Model(&Item{}).
				Where("id = ? AND reviews_count >= ?", v.ItemId, reviews).
				Update("reviews_count", gorm.Expr("`reviews_count` - ?", reviews)).Error
			if err != nil {
				return err
			}
		}
		if err := tx.Where("version_id = ?", id).Delete(&Download{}).Error; err != nil {
			return err
		}
		if err := tx.Where("version_id = ?", id).Delete(&Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&Version{}).Error; err != nil {
			return err
		}
		// version_created_at 重算，最后一个版本删掉后回到 NULL
		updates := ratingAggregates(v.ItemId)
		updates["version_created_at"] = gorm.Expr(
			"(SELECT MAX(`ctime`) FROM `versions` WHERE `item_id` = ?)", v.ItemId)
		updates["utime"] = now
		return tx.Model(&Item{}).Where("id = ?", v.ItemId).
			Updates(updates).Error
	})
}

func (d *GORMVersionDAO) GetById(ctx context.Context, id int64) (Version, error) {
	var v Version
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	return v, err
}

func (d *GORMVersionDAO) ListByItem(ctx context.Context, itemId int64) ([]Version, error) {
	var vs []Version
	err := d.db.WithContext(ctx).
		Where("item_id = ?", itemId).
		Order("ctime DESC").
		Find(&vs).Error
	return vs, err
}
