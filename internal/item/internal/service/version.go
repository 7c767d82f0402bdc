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

package service

import (
	"context"

	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/repository"
	"github.com/simplici7y/s7/internal/permission"
)

var ErrVersionUndownloadable = repository.ErrVersionUndownloadable

//go:generate mockgen -source=./version.go -package=svcmocks -destination=../../mocks/version.mock.go -typed VersionService
type VersionService interface {
	// Publish 只有 item 的所有者或管理员能发版本
	Publish(ctx context.Context, actorUid int64, v domain.Version) (int64, error)
	Delete(ctx context.Context, actorUid, id int64) error
	// Download 登录与否都能下，uid 为 0 记匿名
	Download(ctx context.Context, versionId, uid int64) (int64, error)
	// DeleteDownload 只有管理员能清下载记录
	DeleteDownload(ctx context.Context, actorUid, id int64) error
	Detail(ctx context.Context, id int64) (domain.Version, error)
}

type versionService struct {
	repo     repository.VersionRepository
	itemRepo repository.ItemRepository
	permSvc  permission.Service
}

func NewVersionService(
	repo repository.VersionRepository,
	itemRepo repository.ItemRepository,
	permSvc permission.Service,
) VersionService {
	return &versionService{repo: repo, itemRepo: itemRepo, permSvc: permSvc}
}

func (svc *versionService) Publish(ctx context.Context, actorUid int64, v domain.Version) (int64, error) {
	it, err := svc.itemRepo.FindById(ctx, v.ItemId)
	if err != nil {
		return 0, err
	}
	ok, err := svc.permSvc.CanMutate(ctx, actorUid, it.Uid)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrPermissionDenied
	}
	return svc.repo.Create(ctx, v)
}

func (svc *versionService) Delete(ctx context.Context, actorUid, id int64) error {
	v, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	it, err := svc.itemRepo.FindById(ctx, v.ItemId)
	if err != nil {
		return err
	}
	ok, err := svc.permSvc.CanMutate(ctx, actorUid, it.Uid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return svc.repo.Delete(ctx, id)
}

func (svc *versionService) Download(ctx context.Context, versionId, uid int64) (int64, error) {
	return svc.repo.RecordDownload(ctx, versionId, uid)
}

func (svc *versionService) DeleteDownload(ctx context.Context, actorUid, id int64) error {
	// ownerUid 传 0，实际效果是只放行管理员
	ok, err := svc.permSvc.CanMutate(ctx, actorUid, 0)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return svc.repo.DeleteDownload(ctx, id)
}

func (svc *versionService) Detail(ctx context.Context, id int64) (domain.Version, error) {
	return svc.repo.FindById(ctx, id)
}
