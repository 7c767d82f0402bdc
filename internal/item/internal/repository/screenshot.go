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

type ScreenshotRepository interface {
	Create(ctx context.Context, s domain.Screenshot) (int64, error)
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Screenshot, error)
	ListByItem(ctx context.Context, itemId int64) ([]domain.Screenshot, error)
}

type screenshotRepository struct {
	dao   dao.ScreenshotDAO
	cache cache.ItemCache
}

func NewScreenshotRepository(d dao.ScreenshotDAO, c cache.ItemCache) ScreenshotRepository {
	return &screenshotRepository{dao: d, cache: c}
}

func (repo *screenshotRepository) Create(ctx context.Context, s domain.Screenshot) (int64, error) {
	id, err := repo.dao.Create(ctx, dao.Screenshot{
		ItemId: s.ItemId,
		Title:  s.Title,
		File:   s.File,
	})
	if err != nil {
		return 0, err
	}
	_ = repo.cache.Delete(ctx, s.ItemId)
	return id, nil
}

func (repo *screenshotRepository) Delete(ctx context.Context, id int64) error {
	s, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return err
	}
	if err = repo.dao.Delete(ctx, id); err != nil {
		return err
	}
	_ = repo.cache.Delete(ctx, s.ItemId)
	return nil
}

func (repo *screenshotRepository) FindById(ctx context.Context, id int64) (domain.Screenshot, error) {
	s, err := repo.dao.GetById(ctx, id)
	return repo.toDomain(s), err
}

func (repo *screenshotRepository) ListByItem(ctx context.Context, itemId int64) ([]domain.Screenshot, error) {
	ss, err := repo.dao.ListByItem(ctx, itemId)
	return slice.Map(ss, func(idx int, src dao.Screenshot) domain.Screenshot {
		return repo.toDomain(src)
	}), err
}

func (repo *screenshotRepository) toDomain(s dao.Screenshot) domain.Screenshot {
	return domain.Screenshot{
		Id:     s.Id,
		ItemId: s.ItemId,
		Title:  s.Title,
		File:   s.File,
		Ctime:  time.UnixMilli(s.Ctime),
	}
}
