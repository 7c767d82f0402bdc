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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDuplicateTag = errors.New("标签 permalink 冲突")

type TagDAO interface {
	Create(ctx context.Context, t Tag) (int64, error)
	// List 按被引用次数降序，给标签云用
	List(ctx context.Context, offset, limit int) ([]Tag, error)
	GetByPermalink(ctx context.Context, permalink string) (Tag, error)
	GetByIds(ctx context.Context, ids []int64) ([]Tag, error)
	// TagsOfItem 一个 item 身上的标签
	TagsOfItem(ctx context.Context, itemId int64) ([]Tag, error)
	// AddToItem 打标签，重复打同一个标签是幂等的
	AddToItem(ctx context.Context, itemId, tagId int64) error
	RemoveFromItem(ctx context.Context, itemId, tagId int64) error
}

type GORMTagDAO struct {
	db *egorm.Component
}

func NewGORMTagDAO(db *egorm.Component) TagDAO {
	return &GORMTagDAO{db: db}
}

func (d *GORMTagDAO) Create(ctx context.Context, t Tag) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := d.db.WithContext(ctx).Create(&t).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return 0, ErrDuplicateTag
	}
	return t.Id, err
}

func (d *GORMTagDAO) List(ctx context.Context, offset, limit int) ([]Tag, error) {
	ts := make([]Tag, 0, limit)
	err := d.db.WithContext(ctx).
		Order("count DESC, id ASC").
		Offset(offset).Limit(limit).Find(&ts).Error
	return ts, err
}

func (d *GORMTagDAO) GetByPermalink(ctx context.Context, permalink string) (Tag, error) {
	var t Tag
	err := d.db.WithContext(ctx).Where("permalink = ?", permalink).First(&t).Error
	return t, err
}

func (d *GORMTagDAO) GetByIds(ctx context.Context, ids []int64) ([]Tag, error) {
	var ts []Tag
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&ts).Error
	return ts, err
}

func (d *GORMTagDAO) TagsOfItem(ctx context.Context, itemId int64) ([]Tag, error) {
	var ts []Tag
	err := d.db.WithContext(ctx).
		Joins("JOIN item_tags ON item_tags.tag_id = tags.id").
		Where("item_tags.item_id = ?", itemId).
		Order("tags.count DESC, tags.id ASC").
		Find(&ts).Error
	return ts, err
}

func (d *GORMTagDAO) AddToItem(ctx context.Context, itemId, tagId int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", itemId).First(&Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", tagId).First(&Tag{}).Error; err != nil {
			return err
		}
		err := tx.Create(&ItemTag{
			ItemId: itemId,
			TagId:  tagId,
			Ctime:  now,
		}).Error
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			// 已经打过了
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&Tag{}).Where("id = ?", tagId).
			Update("count", gorm.Expr("`count` + 1")).Error
	})
}

func (d *GORMTagDAO) RemoveFromItem(ctx context.Context, itemId, tagId int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("item_id = ? AND tag_id = ?", itemId, tagId).
			Delete(&ItemTag{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}
		return tx.Model(&Tag{}).
			Where("id = ? AND count > 0", tagId).
			Update("count", gorm.Expr("`count` - 1")).Error
	})
}
