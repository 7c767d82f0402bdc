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
	"golang.org/x/sync/errgroup"
)

var ErrInvalidRating = repository.ErrInvalidRating

//go:generate mockgen -source=./review.go -package=svcmocks -destination=../../mocks/review.mock.go -typed ReviewService
type ReviewService interface {
	Create(ctx context.Context, r domain.Review) (int64, error)
	// Delete 评论作者本人或管理员
	Delete(ctx context.Context, actorUid, id int64) error
	// List itemId 为 0 是全站最新评论，page 从 1 开始
	List(ctx context.Context, itemId int64, page int) ([]domain.Review, int64, error)
}

type reviewService struct {
	repo    repository.ReviewRepository
	permSvc permission.Service
}

func NewReviewService(repo repository.ReviewRepository, permSvc permission.Service) ReviewService {
	return &reviewService{repo: repo, permSvc: permSvc}
}

func (svc *reviewService) Create(ctx context.Context, r domain.Review) (int64, error) {
	if r.Rating < domain.RatingMin || r.Rating > domain.RatingMax {
		return 0, ErrInvalidRating
	}
	return svc.repo.Create(ctx, r)
}

func (svc *reviewService) Delete(ctx context.Context, actorUid, id int64) error {
	r, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	ok, err := svc.permSvc.CanMutate(ctx, actorUid, r.Uid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPermissionDenied
	}
	return svc.repo.Delete(ctx, id)
}

func (svc *reviewService) List(ctx context.Context, itemId int64, page int) ([]domain.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize
	var (
		eg    errgroup.Group
		rs    []domain.Review
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = svc.repo.List(ctx, itemId, offset, PageSize)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Total(ctx, itemId)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	if page > 1 && int64(offset) >= total {
		return nil, total, ErrPageOutOfRange
	}
	return rs, total, nil
}
