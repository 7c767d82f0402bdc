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

type ScreenshotService interface {
	// Create 截图挂在 item 上，所有者或管理员才能传
	Create(ctx context.Context, actorUid int64, s domain.Screenshot) (int64, error)
	Delete(ctx context.Context, actorUid, id int64) error
}

type screenshotService struct {
	repo     repository.ScreenshotRepository
	itemRepo repository.ItemRepository
	permSvc  permission.Service
}

func NewScreenshotService(
	repo repository.ScreenshotRepository,
	itemRepo repository.ItemRepository,
	permSvc permission.Service,
) ScreenshotService {
	return &screenshotService{repo: repo, itemRepo: itemRepo, permSvc: permSvc}
}

func (svc *screenshotService) Create(ctx context.Context, actorUid int64, s domain.Screenshot) (int64, error) {
	it, err := svc.itemRepo.FindById(ctx, s.ItemId)
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
	return svc.repo.Create(ctx, s)
}

func (svc *screenshotService) Delete(ctx context.Context, actorUid, id int64) error {
	s, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	it, err := svc.itemRepo.FindById(ctx, s.ItemId)
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
