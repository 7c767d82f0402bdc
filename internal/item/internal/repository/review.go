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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/repository/cache"
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
)

var ErrInvalidRating = dao.ErrInvalidRating

type ReviewRepository interface {
	Create(ctx context.Context, r domain.Review) (int64, error)
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Review, error)
	// List itemId 为 0 是全站最新评论
	List(ctx context.Context, itemId int64, offset, limit int) ([]domain.Review, error)
	Total(ctx context.Context, itemId int64) (int64, error)
}

type reviewRepository struct {
	dao   dao.ReviewDAO
	cache cache.ItemCache
}

func NewReviewRepository(d dao.ReviewDAO, c cache.ItemCache) ReviewRepository {
	return &reviewRepository{dao: d, cache: c}
}

func (repo *reviewRepository) Create(ctx context.Context, r domain.Review) (int64, error) {
	id, err := repo.dao.Create(ctx, dao.Review{
		VersionId: r.VersionId,
		Uid:       r.Uid,
		Title:     r.Title,
		Body:      r.Body,
		Rating:    r.Rating,
	})
	if err != nil {
		return 0, err
	}
	if created, gerr := repo.dao.GetById(ctx, id); gerr == nil {
		_ = repo.cache.Delete(ctx, created.ItemId)
	}
	return id, nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	r, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return err
	}
	if err = repo.dao.Delete(ctx, id); err != nil {
		return err
	}
	_ = repo.cache.Delete(ctx, r.ItemId)
	return nil
}

func (repo *reviewRepository) FindById(ctx context.Context, id int64) (domain.Review, error) {
	r, err := repo.dao.GetById(ctx, id)
	return repo.toDomain(r), err
}

func (repo *reviewRepository) List(ctx context.Context, itemId int64, offset, limit int) ([]domain.Review, error) {
	rs, err := repo.dao.List(ctx, itemId, offset, limit)
	return slice.Map(rs, func(idx int, src dao.Review) domain.Review {
		return repo.toDomain(src)
	}), err
}

func (repo *reviewRepository) Total(ctx context.Context, itemId int64) (int64, error) {
	return repo.dao.Count(ctx, itemId)
}

func (repo *reviewRepository) toDomain(r dao.Review) domain.Review {
	return domain.Review{
		Id:        r.Id,
		VersionId: r.VersionId,
		ItemId:    r.ItemId,
		Uid:       r.Uid,
		Title:     r.Title,
		Body:      r.Body,
		Rating:    r.Rating,
		Ctime:     time.UnixMilli(r.Ctime),
		Utime:     time.UnixMilli(r.Utime),
	}
}
