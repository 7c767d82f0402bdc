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
	"github.com/simplici7y/s7/internal/pkg/slugify"
)

var ErrDuplicateTag = repository.ErrDuplicateTag

type TagService interface {
	// Create 标签是全站词表，只有管理员能加
	Create(ctx context.Context, actorUid int64, t domain.Tag) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tag, error)
	// Attach item 所有者或管理员给自己的投稿打标签
	Attach(ctx context.Context, actorUid, itemId, tagId int64) error
	Detach(ctx context.Context, actorUid, itemId, tagId int64) error
}

type tagService struct {
	repo     repository.TagRepository
	itemRepo repository.ItemRepository
	permSvc  permission.Service
}

func NewTagService(
	repo repository.TagRepository,
	itemRepo repository.ItemRepository,
	permSvc permission.Service,
) TagService {
	return &tagService{repo: repo, itemRepo: itemRepo, permSvc: permSvc}
}

func (svc *tagService) Create(ctx context.Context, actorUid int64, t domain.Tag) (int64, error) {
	ok, err := svc.permSvc.CanMutate(ctx, actorUid, 0)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrPermissionDenied
	}
	t.Permalink = slugify.Slugify(t.Name)
	if t.Permalink == "" {
		return 0, ErrInvalidName
	}
	return svc.repo.Create(ctx, t)
}

func (svc *tagService) List(ctx context.Context, offset, limit int) ([]domain.Tag, error) {
	return svc.repo.List(ctx, offset, limit)
}

func (svc *tagService) Attach(ctx context.Context, actorUid, itemId, tagId int64) error {
	if err := svc.checkItemOwner(ctx, actorUid, itemId); err != nil {
		return err
	}
	return svc.repo.AddToItem(ctx, itemId, tagId)
}

func (svc *tagService) Detach(ctx context.Context, actorUid, itemId, tagId int64) error {
	if err := svc.checkItemOwner(ctx, actorUid, itemId); err != nil {
		return err
	}
	return svc.repo.RemoveFromItem(ctx, itemId, tagId)
}

func (svc *tagService) checkItemOwner(ctx context.Context, actorUid, itemId int64) error {
	it, err := svc.itemRepo.FindById(ctx, itemId)
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
	return nil
}
