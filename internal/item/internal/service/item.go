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
	"errors"

	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/repository"
	"github.com/simplici7y/s7/internal/permission"
	"github.com/simplici7y/s7/internal/pkg/slugify"
	"golang.org/x/sync/errgroup"
)

// PageSize 目录和评论列表统一的页大小
const PageSize = 20

var (
	ErrItemNotFound       = repository.ErrItemNotFound
	ErrDuplicatePermalink = repository.ErrDuplicatePermalink
	ErrItemReferenced     = repository.ErrItemReferenced
	// ErrPermissionDenied 既不是所有者也不是管理员
	ErrPermissionDenied = errors.New("没有操作权限")
	// ErrPageOutOfRange 页码超出范围，让 web 层引导回第一页
	ErrPageOutOfRange = errors.New("页码超出范围")
	// ErrItemCycle 合集引用成环
	ErrItemCycle = errors.New("合集引用成环")
	// ErrInvalidName 名字连一个像样的 permalink 都切不出来
	ErrInvalidName = errors.New("名字不合法")
	// ErrInvalidTc 指向的合集不存在
	ErrInvalidTc = errors.New("合集不存在")
)

//go:generate mockgen -source=./item.go -package=svcmocks -destination=../../mocks/item.mock.go -typed ItemService
type ItemService interface {
	// Create permalink 在这里由名字切出来，之后不再变
	Create(ctx context.Context, it domain.Item, tagPermalinks []string) (int64, error)
	Update(ctx context.Context, actorUid int64, it domain.Item) error
	Delete(ctx context.Context, actorUid, id int64) error
	Detail(ctx context.Context, id int64) (domain.ItemDetail, error)
	DetailByPermalink(ctx context.Context, permalink string) (domain.ItemDetail, error)
	// List page 从 1 开始。除第一页外，offset 落在总数之外返回 ErrPageOutOfRange
	List(ctx context.Context, q domain.ItemQuery, page int) ([]domain.Item, int64, error)
}

type itemService struct {
	repo    repository.ItemRepository
	verRepo repository.VersionRepository
	ssRepo  repository.ScreenshotRepository
	rvRepo  repository.ReviewRepository
	tagRepo repository.TagRepository
	permSvc permission.Service
}

func NewItemService(
	repo repository.ItemRepository,
	verRepo repository.VersionRepository,
	ssRepo repository.ScreenshotRepository,
	rvRepo repository.ReviewRepository,
	tagRepo repository.TagRepository,
	permSvc permission.Service,
) ItemService {
	return &itemService{
		repo:    repo,
		verRepo: verRepo,
		ssRepo:  ssRepo,
		rvRepo:  rvRepo,
		tagRepo: tagRepo,
		permSvc: permSvc,
	}
}

func (svc *itemService) Create(ctx context.Context, it domain.Item, tagPermalinks []string) (int64, error) {
	it.Permalink = slugify.Slugify(it.Name)
	if it.Permalink == "" {
		return 0, ErrInvalidName
	}
	if it.TcId > 0 {
		_, err := svc.repo.FindById(ctx, it.TcId)
		if errors.Is(err, ErrItemNotFound) {
			return 0, ErrInvalidTc
		}
		if err != nil {
			return 0, err
		}
	}
	tagIds := make([]int64, 0, len(tagPermalinks))
	for _, p := range tagPermalinks {
		t, err := svc.tagRepo.FindByPermalink(ctx, p)
		if err != nil {
			// 不认识的标签直接跳过，不拦着投稿
			continue
		}
		tagIds = append(tagIds, t.Id)
	}
	return svc.repo.Create(ctx, it, tagIds)
}

func (svc *itemService) Update(ctx context.Context, actorUid int64, it domain.Item) error {
	cur, err := svc.repo.FindById(ctx, it.Id)
	if err != nil {
		return err
	}
	ok, err := svc.permSvc.CanMutate(ctx, actorUid, cur.Uid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	if it.TcId > 0 {
		if err = svc.checkTcCycle(ctx, it.Id, it.TcId); err != nil {
			return err
		}
	}
	// permalink 不跟着改名走
	it.Permalink = cur.Permalink
	return svc.repo.Update(ctx, it)
}

// checkTcCycle 沿着 tc_id 链一路向上走，撞回自己就是环
func (svc *itemService) checkTcCycle(ctx context.Context, id, tcId int64) error {
	seen := map[int64]struct{}{id: {}}
	cur := tcId
	for cur > 0 {
		if _, ok := seen[cur]; ok {
			return ErrItemCycle
		}
		seen[cur] = struct{}{}
		parent, err := svc.repo.FindById(ctx, cur)
		if errors.Is(err, ErrItemNotFound) {
			return ErrInvalidTc
		}
		if err != nil {
			return err
		}
		cur = parent.TcId
	}
	return nil
}

func (svc *itemService) Delete(ctx context.Context, actorUid, id int64) error {
	cur, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	ok, err := svc.permSvc.CanMutate(ctx, actorUid, cur.Uid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return svc.repo.Delete(ctx, id)
}

func (svc *itemService) Detail(ctx context.Context, id int64) (domain.ItemDetail, error) {
	it, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.ItemDetail{}, err
	}
	return svc.detail(ctx, it)
}

func (svc *itemService) DetailByPermalink(ctx context.Context, permalink string) (domain.ItemDetail, error) {
	it, err := svc.repo.FindByPermalink(ctx, permalink)
	if err != nil {
		return domain.ItemDetail{}, err
	}
	return svc.detail(ctx, it)
}

func (svc *itemService) detail(ctx context.Context, it domain.Item) (domain.ItemDetail, error) {
	res := domain.ItemDetail{Item: it}
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.Versions, err = svc.verRepo.ListByItem(ctx, it.Id)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Screenshots, err = svc.ssRepo.ListByItem(ctx, it.Id)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Reviews, err = svc.rvRepo.List(ctx, it.Id, 0, PageSize)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Tags, err = svc.tagRepo.TagsOfItem(ctx, it.Id)
		return err
	})
	return res, eg.Wait()
}

func (svc *itemService) List(ctx context.Context, q domain.ItemQuery, page int) ([]domain.Item, int64, error) {
	if page < 1 {
		page = 1
	}
	if q.Tag != "" {
		t, err := svc.tagRepo.FindByPermalink(ctx, q.Tag)
		if err != nil {
			// 标签不存在，目录直接给空
			return []domain.Item{}, 0, nil
		}
		q.TagId = t.Id
	}
	offset := (page - 1) * PageSize
	var (
		eg    errgroup.Group
		its   []domain.Item
		total int64
	)
	eg.Go(func() error {
		var err error
		its, err = svc.repo.List(ctx, q, offset, PageSize)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Total(ctx, q)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	if page > 1 && int64(offset) >= total {
		return nil, total, ErrPageOutOfRange
	}
	return its, total, nil
}
