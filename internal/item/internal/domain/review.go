package domain

import "time"

const (
	RatingMin = 1
	RatingMax = 5
)

type Review struct {
	Id        int64
	VersionId int64
	// ItemId 冗余自 version，评论列表按 item 过滤时不用再 join
	ItemId int64
	Uid    int64
	Title  string
	Body   string
	Rating int
	Ctime  time.Time
	Utime  time.Time
}

type Screenshot struct {
	Id     int64
	ItemId int64
	Title  string
	// File 对象存储里的 key
	File  string
	Ctime time.Time
}

type Tag struct {
	Id        int64
	Name      string
	Permalink string
	// Count 关联 item 数，冗余计数
	Count int
}
