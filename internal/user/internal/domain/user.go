package domain

import "time"

type User struct {
	Id          int64
	Username    string
	DisplayName string
	Admin       bool
	// 冗余计数，由 item 模块的事务维护
	ItemsCount   int
	ReviewsCount int
	Ctime        time.Time
	Utime        time.Time
}
