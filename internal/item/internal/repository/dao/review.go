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

// ErrInvalidRating 评分出了 1-5 的范围
var ErrInvalidRating = errors.New("评分必须在 1 到 5 之间")

type ReviewDAO interface {
	// Create 写评论，item 和作者的 reviews_count 各 +1，
	// item 的 rating_average / rating_weighted 在同一条 UPDATE 里重算
	Create(ctx context.Context, r Review) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetById(ctx context.Context, id int64) (Review, error)
	// List itemId 为 0 时是全站最新评论
	List(ctx context.Context, itemId int64, offset, limit int) ([]Review, error)
	Count(ctx context.Context, itemId int64) (int64, error)
}

type GORMReviewDAO struct {
	db *egorm.Component
}

func NewGORMReviewDAO(db *egorm.Component) ReviewDAO {
	return &GORMReviewDAO{db: db}
}

func (d *GORMReviewDAO) Create(ctx context.Context, r Review) (int64, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return 0, ErrInvalidRating
	}
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v Version
		if err := tx.Where("id = ?", r.VersionId).First(&v).Error; err != nil {
			return err
		}
		r.ItemId = v.ItemId
		if err := tx.Create(&r).Error; err != nil {
			return err
		}
		updates := ratingAggregates(r.ItemId)
		updates["reviews_count"] = gorm.Expr("`reviews_count` + 1")
		updates["utime"] = now
		err := tx.Model(&Item{}).Where("id = ?", r.ItemId).
			Updates(updates).Error
		if err != nil {
			return err
		}
		return tx.Table("users").Where("id = ?", r.Uid).
			Update("reviews_count", gorm.Expr("`reviews_count` + 1")).Error
	})
	return r.Id, err
}

func (d *GORMReviewDAO) Delete(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r Review
		if err := tx.Where("id = ?", id).First(&r).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Review{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}
		updates := ratingAggregates(r.ItemId)
		updates["reviews_count"] = gorm.Expr("`reviews_count` - 1")
		updates["utime"] = now
		err := tx.Model(&Item{}).
			Where("id = ? AND reviews_count > 0", r.ItemId).
			Updates(updates).Error
		if err != nil {
			return err
		}
		return tx.Table("users").
			Where("id = ? AND reviews_count > 0", r.Uid).
			Update("reviews_count", gorm.Expr("`reviews_count` - 1")).Error
	})
}

func (d *GORMReviewDAO) GetById(ctx context.Context, id int64) (Review, error) {
	var r Review
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (d *GORMReviewDAO) List(ctx context.Context, itemId int64, offset, limit int) ([]Review, error) {
	rs := make([]Review, 0, limit)
	builder := d.db.WithContext(ctx).Model(&Review{})
	if itemId > 0 {
		builder = builder.Where("item_id = ?", itemId)
	}
	err := builder.Order("id DESC").Offset(offset).Limit(limit).Find(&rs).Error
	return rs, err
}

func (d *GORMReviewDAO) Count(ctx context.Context, itemId int64) (int64, error) {
	var res int64
	builder := d.db.WithContext(ctx).Model(&Review{})
	if itemId > 0 {
		builder = builder.Where("item_id = ?", itemId)
	}
	err := builder.Select("COUNT(id)").Count(&res).Error
	return res, err
}

// ratingAggregates 评分聚合在数据库侧一条语句里重算，
// 不在应用层读旧值再写回，并发下不会丢更新。
func ratingAggregates(itemId int64) map[string]any {
	return map[string]any{
		"rating_average": gorm.Expr(
			"COALESCE((SELECT AVG(`rating`) FROM `reviews` WHERE `item_id` = ?), 0)", itemId),
		"rating_weighted": gorm.Expr(
			"COALESCE((SELECT SUM(`rating`) FROM `reviews` WHERE `item_id` = ?), 0)", itemId),
	}
}
