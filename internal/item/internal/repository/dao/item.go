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
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDataNotFound 通用的数据没找到
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatePermalink permalink 撞了唯一索引
	ErrDuplicatePermalink = errors.New("permalink 已经被占用")
	// ErrItemReferenced 还有子项把它当合集引用着
	ErrItemReferenced = errors.New("item 仍被其它 item 引用，不能删除")
)

const uniqueIndexErrNo uint16 = 1062

// ItemQuery 目录查询条件。Order 不认识的 key 回落到默认排序。
type ItemQuery struct {
	Search       string
	TagId        int64
	TcId         int64
	Uid          int64
	ReleasedOnly bool
	Order        string
}

type ItemDAO interface {
	// Create 建投稿：item 行、tag 关联和两边的计数一个事务落库
	Create(ctx context.Context, it Item, tagIds []int64) (int64, error)
	// Update 改资料字段，permalink 建号后不再变
	Update(ctx context.Context, it Item) error
	// Delete 级联删掉版本、下载、评论、截图和 tag 关联，并回退全部计数。
	// 被其它 item 当作合集引用时拒绝。
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (Item, error)
	GetByIds(ctx context.Context, ids []int64) ([]Item, error)
	GetByPermalink(ctx context.Context, permalink string) (Item, error)
	List(ctx context.Context, q ItemQuery, offset, limit int) ([]Item, error)
	Count(ctx context.Context, q ItemQuery) (int64, error)
}

type GORMItemDAO struct {
	db *egorm.Component
}

func NewGORMItemDAO(db *egorm.Component) ItemDAO {
	return &GORMItemDAO{db: db}
}

func (d *GORMItemDAO) Create(ctx context.Context, it Item, tagIds []int64) (int64, error) {
	now := time.Now().UnixMilli()
	it.Ctime = now
	it.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&it).Error
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == uniqueIndexErrNo {
			return ErrDuplicatePermalink
		}
		if err != nil {
			return err
		}
		if len(tagIds) > 0 {
			links := make([]ItemTag, 0, len(tagIds))
			for _, tid := range tagIds {
				links = append(links, ItemTag{ItemId: it.Id, TagId: tid, Ctime: now})
			}
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
			err = tx.Model(&Tag{}).Where("id IN ?", tagIds).
				Updates(map[string]any{
					"count": gorm.Expr("`count` + 1"),
					"utime": now,
				}).Error
			if err != nil {
				return err
			}
		}
		return tx.Table("users").Where("id = ?", it.Uid).
			Update("items_count", gorm.Expr("`items_count` + 1")).Error
	})
	return it.Id, err
}

func (d *GORMItemDAO) Update(ctx context.Context, it Item) error {
	res := d.db.WithContext(ctx).Model(&Item{}).
		Where("id = ?", it.Id).
		Updates(map[string]any{
			"name":    it.Name,
			"body":    it.Body,
			"byline":  it.Byline,
			"topnote": it.Topnote,
			"tc_id":   it.TcId,
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrDataNotFound
	}
	return nil
}

func (d *GORMItemDAO) Delete(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it Item
		if err := tx.Where("id = ?", id).First(&it).Error; err != nil {
			return err
		}
		var children int64
		err := tx.Model(&Item{}).Where("tc_id = ?", id).Count(&children).Error
		if err != nil {
			return err
		}
		if children > 0 {
			return ErrItemReferenced
		}
		// 评论作者们的 reviews_count 按人头回退
		type authorCount struct {
			Uid int64
			Cnt int64
		}
		var authors []authorCount
		err = tx.Model(&Review{}).
			Select("uid, COUNT(id) AS cnt").
			Where("item_id = ?", id).
			Group("uid").Scan(&authors).Error
		if err != nil {
			return err
		}
		for _, a := range authors {
			err = tx.Table("users").
				Where("id = ? AND reviews_count >= ?", a.Uid, a.Cnt).
				Update("reviews_count", gorm.Expr("`reviews_count` - ?", a.Cnt)).Error
			if err != nil {
				return err
			}
		}
		if err := tx.Where("item_id = ?", id).Delete(&Review{}).Error; err != nil {
			return err
		}
		err = tx.Exec("DELETE FROM `downloads` WHERE `version_id` IN (SELECT `id` FROM `versions` WHERE `item_id` = ?)", id).Error
		if err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&Version{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&Screenshot{}).Error; err != nil {
			return err
		}
		var tagIds []int64
		err = tx.Model(&ItemTag{}).Where("item_id = ?", id).
			Pluck("tag_id", &tagIds).Error
		if err != nil {
			return err
		}
		if len(tagIds) > 0 {
			if err := tx.Where("item_id = ?", id).Delete(&ItemTag{}).Error; err != nil {
				return err
			}
			err = tx.Model(&Tag{}).Where("id IN ? AND `count` > 0", tagIds).
				Updates(map[string]any{
					"count": gorm.Expr("`count` - 1"),
					"utime": now,
				}).Error
			if err != nil {
				return err
			}
		}
		if err := tx.Where("id = ?", id).Delete(&Item{}).Error; err != nil {
			return err
		}
		return tx.Table("users").
			Where("id = ? AND items_count > 0", it.Uid).
			Update("items_count", gorm.Expr("`items_count` - 1")).Error
	})
}

func (d *GORMItemDAO) GetById(ctx context.Context, id int64) (Item, error) {
	var it Item
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	return it, err
}

func (d *GORMItemDAO) GetByIds(ctx context.Context, ids []int64) ([]Item, error) {
	var its []Item
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&its).Error
	return its, err
}

func (d *GORMItemDAO) GetByPermalink(ctx context.Context, permalink string) (Item, error) {
	var it Item
	err := d.db.WithContext(ctx).Where("permalink = ?", permalink).First(&it).Error
	return it, err
}

func (d *GORMItemDAO) List(ctx context.Context, q ItemQuery, offset, limit int) ([]Item, error) {
	its := make([]Item, 0, limit)
	err := d.listQuery(d.db.WithContext(ctx), q).
		Order(orderClause(q.Order)).
		Offset(offset).Limit(limit).
		Find(&its).Error
	return its, err
}

func (d *GORMItemDAO) Count(ctx context.Context, q ItemQuery) (int64, error) {
	var res int64
	err := d.listQuery(d.db.WithContext(ctx), q).
		Select("COUNT(id)").Count(&res).Error
	return res, err
}

func (d *GORMItemDAO) listQuery(db *gorm.DB, q ItemQuery) *gorm.DB {
	builder := db.Model(&Item{})
	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		builder = builder.Where("LOWER(name) LIKE ? OR LOWER(body) LIKE ?", pattern, pattern)
	}
	if q.TagId > 0 {
		builder = builder.Where("id IN (SELECT `item_id` FROM `item_tags` WHERE `tag_id` = ?)", q.TagId)
	}
	if q.TcId > 0 {
		builder = builder.Where("tc_id = ?", q.TcId)
	}
	if q.Uid > 0 {
		builder = builder.Where("uid = ?", q.Uid)
	}
	if q.ReleasedOnly {
		builder = builder.Where("version_created_at IS NOT NULL")
	}
	return builder
}

// orderClause 闭集。没匹配上的 key 一律用默认排序，
// 并列时数据库自然顺序，不保证跨页稳定。
func orderClause(key string) string {
	switch key {
	case "old":
		return "version_created_at ASC"
	case "best":
		return "rating_weighted DESC"
	case "loud":
		return "reviews_count DESC"
	case "quiet":
		return "reviews_count ASC"
	case "popular":
		return "downloads_count DESC"
	case "unpopular":
		return "downloads_count ASC"
	default:
		return "version_created_at DESC"
	}
}
