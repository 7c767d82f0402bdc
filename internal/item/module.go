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

package item

import (
	"github.com/simplici7y/s7/internal/item/internal/domain"
	"github.com/simplici7y/s7/internal/item/internal/service"
	"github.com/simplici7y/s7/internal/item/internal/web"
)

type Module struct {
	Svc       ItemService
	VerSvc    VersionService
	ReviewSvc ReviewService
	TagSvc    TagService
	Hdl       *Handler
	VerHdl    *VersionHandler
	ReviewHdl *ReviewHandler
	TagHdl    *TagHandler
}

type Handler = web.Handler
type VersionHandler = web.VersionHandler
type ReviewHandler = web.ReviewHandler
type TagHandler = web.TagHandler

type ItemService = service.ItemService
type VersionService = service.VersionService
type ReviewService = service.ReviewService
type TagService = service.TagService

type Item = domain.Item
type ItemDetail = domain.ItemDetail
type Version = domain.Version
type Review = domain.Review
type Screenshot = domain.Screenshot
type Tag = domain.Tag
type ItemQuery = domain.ItemQuery
