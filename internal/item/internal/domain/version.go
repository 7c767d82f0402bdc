package domain

import "time"

// Version 一次可下载的发布。File 和 Link 至少要有一个。
type Version struct {
	Id     int64
	ItemId int64
	Name   string
	Body   string
	// File 对象存储里的 key
	File string
	// Link 站外下载地址
	Link           string
	DownloadsCount int
	Ctime          time.Time
	Utime          time.Time
}

func (v Version) Downloadable() bool {
	return v.File != "" || v.Link != ""
}

// Download 一次下载记录，允许匿名（Uid 为 0）
type Download struct {
	Id        int64
	VersionId int64
	Uid       int64
	Ctime     time.Time
}
