package domain

// Order 目录支持的排序，闭集。没列出来的 key 一律回落到 OrderNew。
type Order string

const (
	// OrderNew 默认：最近有版本更新的在前
	OrderNew Order = "new"
	// OrderOld 最久没更新的在前
	OrderOld Order = "old"
	// OrderBest 加权评分（评分总和）高的在前
	OrderBest Order = "best"
	// OrderLoud 评论最多的在前
	OrderLoud Order = "loud"
	// OrderQuiet 评论最少的在前
	OrderQuiet Order = "quiet"
	// OrderPopular 下载最多的在前
	OrderPopular Order = "popular"
	// OrderUnpopular 下载最少的在前
	OrderUnpopular Order = "unpopular"
)

// ParseOrder 未知或空的 key 回落到默认排序，不报错
func ParseOrder(s string) Order {
	switch Order(s) {
	case OrderOld, OrderBest, OrderLoud, OrderQuiet, OrderPopular, OrderUnpopular:
		return Order(s)
	default:
		return OrderNew
	}
}

// ItemQuery 目录的过滤条件
type ItemQuery struct {
	// Search 对 name 和 body 的大小写不敏感子串匹配
	Search string
	// Tag 标签 permalink
	Tag string
	// TagId 由 service 按 Tag 解析出来，查询只认这个
	TagId int64
	// TcId 只看某个合集下的子项
	TcId int64
	// Uid 只看某个用户的投稿
	Uid int64
	// IncludeUnreleased 作者自查时带上还没发版本的投稿
	IncludeUnreleased bool
	Order             Order
}
