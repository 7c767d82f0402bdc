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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 用户名撞了唯一索引
var ErrUserDuplicate = errors.New("用户名已经被占用")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	// List 用户目录，按投稿数倒序
	List(ctx context.Context, offset, limit int) ([]User, error)
	Count(ctx context.Context) (int64, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

// UpdateNonZeroFields 只更新资料字段。
// 计数列不在这里动，它们归 item 模块的事务管。
func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", u.Id).
		Updates(map[string]any{
			"display_name": u.DisplayName,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "username = ?", username).Error
	return u, err
}

func (ud *GORMUserDAO) List(ctx context.Context, offset, limit int) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).
		Order("items_count DESC, id ASC").
		Offset(offset).Limit(limit).
		Find(&us).Error
	return us, err
}

func (ud *GORMUserDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := ud.db.WithContext(ctx).Model(&User{}).Select("COUNT(id)").Count(&res).Error
	return res, err
}

type User struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Username    string `gorm:"type:varchar(255);unique"`
	DisplayName string `gorm:"type:varchar(255)"`
	Admin       bool   `gorm:"not null;default:false"`
	// 冗余计数，只接受相对增减
	ItemsCount   int `gorm:"not null;default:0;index"`
	ReviewsCount int `gorm:"not null;default:0"`
	Ctime        int64
	Utime        int64
}
