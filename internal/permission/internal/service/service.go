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

	"github.com/simplici7y/s7/internal/user"
)

//go:generate mockgen -source=service.go -package=permissionmocks -destination=../../mocks/permission.mock.go -typed Service
type Service interface {
	// CanMutate 所有者或管理员可以改动，匿名（uid 0）一律拒绝
	CanMutate(ctx context.Context, actorUid, ownerUid int64) (bool, error)
}

type permissionService struct {
	userSvc user.UserService
}

func NewPermissionService(userSvc user.UserService) Service {
	return &permissionService{userSvc: userSvc}
}

func (s *permissionService) CanMutate(ctx context.Context, actorUid, ownerUid int64) (bool, error) {
	if actorUid == 0 {
		return false, nil
	}
	if actorUid == ownerUid {
		return true, nil
	}
	u, err := s.userSvc.Profile(ctx, actorUid)
	if err != nil {
		return false, err
	}
	return u.Admin, nil
}
