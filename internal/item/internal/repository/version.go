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
	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/repository/cache"
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
)

var ErrVersionUndownloadable = dao.ErrVersionUndownloadable

type VersionRepository interface {
	Create(ctx context.Context, v domain.Version) (int64, error)
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.Version, error)
	ListByItem(ctx context.Context, itemId int64) ([]domain.Version, error)
	// RecordDownload uid 为 0 表示匿名下载
	RecordDownload(ctx context.Context, versionId, uid int64) (int64, error)
	FindDownload(ctx context.Context, id int64) (domain.Download, error)
	DeleteDownload(ctx context.Context, id int64) error
}

type versionRepository struct {
	dao   dao.VersionDAO
	dlDao dao.DownloadDAO
	cache cache.ItemCache
}

func NewVersionRepository(d dao.VersionDAO, dlDao dao.DownloadDAO, c cache.ItemCache) VersionRepository {
	return &versionRepository{dao: d, dlDao: dlDao, cache: c}
}

func (repo *versionRepository) Create(ctx context.Context, v domain.Version) (int64, error) {
	id, err := repo.dao.Create(ctx, dao.Version{
		ItemId: v.ItemId,
		Name:   v.Name,
		Body:   v.Body,
		File:   v.File,
		Link:   v.Link,
	})
	if err != nil {
		return 0, err
	}
	_ = repo.cache.Delete(ctx, v.ItemId)
	return id, nil
}

func (repo *versionRepository) Delete(ctx context.Context, id int64) error {
	v, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return err
	}
	if err = repo.dao.Delete(ctx, id); err != nil {
		return err
	}
	_ = repo.cache.Delete(ctx, v.ItemId)
	return nil
}

func (repo *versionRepository) FindById(ctx context.Context, id int64) (domain.Version, error) {
	v, err := repo.dao.GetById(ctx, id)
	return repo.toDomain(v), err
}

func (repo *versionRepository) ListByItem(ctx context.Context, itemId int64) ([]domain.Version, error) {
	vs, err := repo.dao.ListByItem(ctx, itemId)
	return slice.Map(vs, func(idx int, src dao.Version) domain.Version {
		return repo.toDomain(src)
	}), err
}

func (repo *versionRepository) RecordDownload(ctx context.Context, versionId, uid int64) (int64, error) {
	dl := dao.Download{VersionId: versionId}
	if uid > 0 {
		dl.Uid = sql.NullInt64{Int64: uid, Valid: true}
	}
	id, err := repo.dlDao.Create(ctx, dl)
	if err != nil {
		return 0, err
	}
	if v, verr := repo.dao.GetById(ctx, versionId); verr == nil {
		_ = repo.cache.Delete(ctx, v.ItemId)
	}
	return id, nil
}

func (repo *versionRepository) FindDownload(ctx context.Context, id int64) (domain.Download, error) {
	dl, err := repo.dlDao.GetById(ctx, id)
	res := domain.Download{
		Id:        dl.Id,
		VersionId: dl.VersionId,
		Ctime:     time.UnixMilli(dl.Ctime),
	}
	if dl.Uid.Valid {
		res.Uid = dl.Uid.Int64
	}
	return res, err
}

func (repo *versionRepository) DeleteDownload(ctx context.Context, id int64) error {
	return repo.dlDao.Delete(ctx, id)
}

func (repo *versionRepository) toDomain(v dao.Version) domain.Version {
	return domain.Version{
		Id:             v.Id,
		ItemId:         v.ItemId,
		Name:           v.Name,
		Body:           v.Body,
		File:           v.File,
		Link:           v.Link,
		DownloadsCount: v.DownloadsCount,
		Ctime:          time.UnixMilli(v.Ctime),
		Utime:          time.UnixMilli(v.Utime),
	}
}
