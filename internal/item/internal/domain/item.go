package domain

import "time"

// Item 社区投稿，地图、Mod、场景这些。
// 各个 *Count 和 Rating* 字段是冗余聚合，统一由 dao 层的事务维护，
// 读列表的时候不需要再去明细表上算。
type Item struct {
	Id        int64
	Uid       int64
	Name      string
	Permalink string
	Body      string
	Byline    string
	Topnote   string
	// TcId 所属合集（total conversion），0 表示不属于任何合集
	TcId             int64
	DownloadsCount   int
	ReviewsCount     int
	ScreenshotsCount int
	RatingAverage    float64
	RatingWeighted   int
	// VersionCreatedAt 最新版本的发布时间，零值表示还没有任何版本
	VersionCreatedAt time.Time
	Ctime            time.Time
	Utime            time.Time
}

// Released 有没有至少一个版本。没有版本的 item 不进目录，
// 只有作者自己能看到，用来继续完成投稿。
func (i Item) Released() bool {
	return !i.VersionCreatedAt.IsZero()
}

// ItemDetail 详情页的聚合视图
type ItemDetail struct {
	Item        Item
	Versions    []Version
	Screenshots []Screenshot
	Reviews     []Review
	Tags        []Tag
}
