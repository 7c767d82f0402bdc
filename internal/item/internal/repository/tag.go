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

	"github.com/ecodeclub/ekit/slice"
	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
)

var ErrDuplicateTag = dao.ErrDuplicateTag

type TagRepository interface {
	Create(ctx context.Context, t domain.Tag) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tag, error)
	FindByPermalink(ctx context.Context, permalink string) (domain.Tag, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Tag, error)
	TagsOfItem(ctx context.Context, itemId int64) ([]domain.Tag, error)
	AddToItem(ctx context.Context, itemId, tagId int64) error
	RemoveFromItem(ctx context.Context, itemId, tagId int64) error
}

type tagRepository struct {
	dao dao.TagDAO
}

func NewTagRepository(d dao.TagDAO) TagRepository {
	return &tagRepository{dao: d}
}

func (repo *tagRepository) Create(ctx context.Context, t domain.Tag) (int64, error) {
	return repo.dao.Create(ctx, dao.Tag{
		Name:      t.Name,
		Permalink: t.Permalink,
	})
}

func (repo *tagRepository) List(ctx context.Context, offset, limit int) ([]domain.Tag, error) {
	ts, err := repo.dao.List(ctx, offset, limit)
	return repo.toDomains(ts), err
}

func (repo *tagRepository) FindByPermalink(ctx context.Context, permalink string) (domain.Tag, error) {
	t, err := repo.dao.GetByPermalink(ctx, permalink)
	return repo.toDomain(t), err
}

func (repo *tagRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	ts, err := repo.dao.GetByIds(ctx, ids)
	return repo.toDomains(ts), err
}

func (repo *tagRepository) TagsOfItem(ctx context.Context, itemId int64) ([]domain.Tag, error) {
	ts, err := repo.dao.TagsOfItem(ctx, itemId)
	return repo.toDomains(ts), err
}

func (repo *tagRepository) AddToItem(ctx context.Context, itemId, tagId int64) error {
	return repo.dao.AddToItem(ctx, itemId, tagId)
}

func (repo *tagRepository) RemoveFromItem(ctx context.Context, itemId, tagId int64) error {
	return repo.dao.RemoveFromItem(ctx, itemId, tagId)
}

func (repo *tagRepository) toDomains(ts []dao.Tag) []domain.Tag {
	return slice.Map(ts, func(idx int, src dao.Tag) domain.Tag {
		return repo.toDomain(src)
	})
}

func (repo *tagRepository) toDomain(t dao.Tag) domain.Tag {
	return domain.Tag{
		Id:        t.Id,
		Name:      t.Name,
		Permalink: t.Permalink,
		Count:     t.Count,
	}
}
