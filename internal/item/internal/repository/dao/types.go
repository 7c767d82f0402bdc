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

import "database/sql"

// Item 投稿主表。计数列只接受同事务内的相对增减。
type Item struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Uid       int64  `gorm:"index"`
	Name      string `gorm:"type:varchar(255);index"`
	Permalink string `gorm:"type:varchar(255);unique"`
	Body      string `gorm:"type:text"`
	Byline    string `gorm:"type:varchar(255)"`
	Topnote   string `gorm:"type:text"`
	// TcId 合集引用，删除被引用的合集要先清空这里
	TcId             sql.NullInt64 `gorm:"index"`
	DownloadsCount   int           `gorm:"not null;default:0;index"`
	ReviewsCount     int           `gorm:"not null;default:0;index"`
	ScreenshotsCount int           `gorm:"not null;default:0"`
	RatingAverage    float64       `gorm:"not null;default:0;index"`
	RatingWeighted   int           `gorm:"not null;default:0;index"`
	// VersionCreatedAt 永远等于 MAX(versions.ctime)，没有版本时为 NULL
	VersionCreatedAt sql.NullInt64 `gorm:"index"`
	Ctime            int64
	Utime            int64
}

type Version struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	ItemId int64  `gorm:"index"`
	Name   string `gorm:"type:varchar(255)"`
	Body   string `gorm:"type:text"`
	File   string `gorm:"type:varchar(255)"`
	Link   string `gorm:"type:varchar(255)"`
	// DownloadsCount 冗余计数
	DownloadsCount int `gorm:"not null;default:0"`
	Ctime          int64
	Utime          int64
}

// Download 下载明细，匿名下载 Uid 为 NULL
type Download struct {
	Id        int64         `gorm:"primaryKey,autoIncrement"`
	VersionId int64         `gorm:"index"`
	Uid       sql.NullInt64 `gorm:"index"`
	Ctime     int64
	Utime     int64
}

type Review struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	VersionId int64 `gorm:"index"`
	// ItemId 冗余自 version，按 item 查评论不用 join
	ItemId int64  `gorm:"index"`
	Uid    int64  `gorm:"index"`
	Title  string `gorm:"type:varchar(255)"`
	Body   string `gorm:"type:text"`
	Rating int    `gorm:"not null"`
	Ctime  int64
	Utime  int64
}

type Screenshot struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	ItemId int64  `gorm:"index"`
	Title  string `gorm:"type:varchar(255)"`
	File   string `gorm:"type:varchar(255)"`
	Ctime  int64
	Utime  int64
}

type Tag struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Name      string `gorm:"type:varchar(255)"`
	Permalink string `gorm:"type:varchar(255);unique"`
	// Count 关联的 item 数
	Count int `gorm:"not null;default:0;index"`
	Ctime int64
	Utime int64
}

type ItemTag struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	ItemId int64 `gorm:"uniqueIndex:item_tag"`
	TagId  int64 `gorm:"uniqueIndex:item_tag"`
	Ctime  int64
}
