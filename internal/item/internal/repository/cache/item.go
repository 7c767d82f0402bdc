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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/simplici7y/s7/internal/item/internal/domain"
)

const expiration = 10 * time.Minute

// ErrItemNotCached 缓存里没有，去数据库兜底
var ErrItemNotCached = errors.New("投稿不在缓存里")

type ItemCache interface {
	Get(ctx context.Context, id int64) (domain.Item, error)
	Set(ctx context.Context, it domain.Item) error
	// Delete 凡是会动计数或版本时间的写路径都要先失效缓存
	Delete(ctx context.Context, id int64) error
}

type itemCache struct {
	ec ecache.Cache
}

func NewItemECache(ec ecache.Cache) ItemCache {
	return &itemCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "item:",
		},
	}
}

func (c *itemCache) Get(ctx context.Context, id int64) (domain.Item, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Item{}, ErrItemNotCached
	}
	if val.Err != nil {
		return domain.Item{}, val.Err
	}
	var res domain.Item
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化投稿失败")
}

func (c *itemCache) Set(ctx context.Context, it domain.Item) error {
	bytes, err := json.Marshal(it)
	if err != nil {
		return errors.Wrap(err, "序列化投稿失败")
	}
	return c.ec.Set(ctx, c.key(it.Id), string(bytes), expiration)
}

func (c *itemCache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *itemCache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
