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

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/repository/cache"
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
)

var (
	ErrItemNotFound       = dao.ErrDataNotFound
	ErrDuplicatePermalink = dao.ErrDuplicatePermalink
	ErrItemReferenced     = dao.ErrItemReferenced
)

type ItemRepository interface {
	Create(ctx context.Context, it domain.Item, tagIds []int64) (int64, error)
	Update(ctx context.Context, it domain.Item) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Item, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Item, error)
	FindByPermalink(ctx context.Context, permalink string) (domain.Item, error)
	List(ctx context.Context, q domain.ItemQuery, offset, limit int) ([]domain.Item, error)
	Total(ctx context.Context, q domain.ItemQuery) (int64, error)
}

type itemRepository struct {
	dao    dao.ItemDAO
	cache  cache.ItemCache
	logger *elog.Component
}

func NewItemRepository(d dao.ItemDAO, c cache.ItemCache) ItemRepository {
	return &itemRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *itemRepository) Create(ctx context.Context, it domain.Item, tagIds []int64) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(it), tagIds)
}

func (repo *itemRepository) Update(ctx context.Context, it domain.Item) error {
	err := repo.dao.Update(ctx, repo.toEntity(it))
	if err != nil {
		return err
	}
	repo.evict(ctx, it.Id)
	return nil
}

func (repo *itemRepository) Delete(ctx context.Context, id int64) error {
	err := repo.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	repo.evict(ctx, id)
	return nil
}

func (repo *itemRepository) FindById(ctx context.Context, id int64) (domain.Item, error) {
	it, err := repo.cache.Get(ctx, id)
	if err == nil && it.Id > 0 {
		return it, nil
	}
	ent, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	it = repo.toDomain(ent)
	err = repo.cache.Set(ctx, it)
	if err != nil {
		repo.logger.Error("缓存 item 失败",
			elog.Int64("id", id), elog.FieldErr(err))
	}
	return it, nil
}

func (repo *itemRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Item, error) {
	its, err := repo.dao.GetByIds(ctx, ids)
	return slice.Map(its, func(idx int, src dao.Item) domain.Item {
		return repo.toDomain(src)
	}), err
}

func (repo *itemRepository) FindByPermalink(ctx context.Context, permalink string) (domain.Item, error) {
	it, err := repo.dao.GetByPermalink(ctx, permalink)
	return repo.toDomain(it), err
}

func (repo *itemRepository) List(ctx context.Context, q domain.ItemQuery, offset, limit int) ([]domain.Item, error) {
	its, err := repo.dao.List(ctx, repo.toQuery(q), offset, limit)
	return slice.Map(its, func(idx int, src dao.Item) domain.Item {
		return repo.toDomain(src)
	}), err
}

func (repo *itemRepository) Total(ctx context.Context, q domain.ItemQuery) (int64, error) {
	return repo.dao.Count(ctx, repo.toQuery(q))
}

func (repo *itemRepository) evict(ctx context.Context, id int64) {
	if err := repo.cache.Delete(ctx, id); err != nil {
		repo.logger.Error("失效 item 缓存失败",
			elog.Int64("id", id), elog.FieldErr(err))
	}
}

func (repo *itemRepository) toQuery(q domain.ItemQuery) dao.ItemQuery {
	return dao.ItemQuery{
		Search:       q.Search,
		TagId:        q.TagId,
		TcId:         q.TcId,
		Uid:          q.Uid,
		ReleasedOnly: !q.IncludeUnreleased,
		Order:        string(q.Order),
	}
}

func (repo *itemRepository) toEntity(it domain.Item) dao.Item {
	ent := dao.Item{
		Id:        it.Id,
		Uid:       it.Uid,
		Name:      it.Name,
		Permalink: it.Permalink,
		Body:      it.Body,
		Byline:    it.Byline,
		Topnote:   it.Topnote,
	}
	if it.TcId > 0 {
		ent.TcId = sql.NullInt64{Int64: it.TcId, Valid: true}
	}
	return ent
}

func (repo *itemRepository) toDomain(it dao.Item) domain.Item {
	res := domain.Item{
		Id:               it.Id,
		Uid:              it.Uid,
		Name:             it.Name,
		Permalink:        it.Permalink,
		Body:             it.Body,
		Byline:           it.Byline,
		Topnote:          it.Topnote,
		DownloadsCount:   it.DownloadsCount,
		ReviewsCount:     it.ReviewsCount,
		ScreenshotsCount: it.ScreenshotsCount,
		RatingAverage:    it.RatingAverage,
		RatingWeighted:   it.RatingWeighted,
		Ctime:            time.UnixMilli(it.Ctime),
		Utime:            time.UnixMilli(it.Utime),
	}
	if it.TcId.Valid {
		res.TcId = it.TcId.Int64
	}
	if it.VersionCreatedAt.Valid {
		res.VersionCreatedAt = time.UnixMilli(it.VersionCreatedAt.Int64)
	}
	return res
}
