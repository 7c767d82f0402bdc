package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/simplici7y/s7/internal/item/internal/domain"
)

type SaveItemReq struct {
	Name    string   `json:"name"`
	Body    string   `json:"body"`
	Byline  string   `json:"byline"`
	Topnote string   `json:"topnote"`
	TcId    int64    `json:"tcId"`
	Tags    []string `json:"tags"`
}

type UpdateItemReq struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	Body    string `json:"body"`
	Byline  string `json:"byline"`
	Topnote string `json:"topnote"`
	TcId    int64  `json:"tcId"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type PermalinkReq struct {
	Permalink string `json:"permalink"`
}

// ListItemsReq page 从 1 开始，order 不认识的 key 回落到默认排序
type ListItemsReq struct {
	Page   int    `json:"page"`
	Order  string `json:"order"`
	Search string `json:"search"`
	Tag    string `json:"tag"`
	TcId   int64  `json:"tcId"`
	Uid    int64  `json:"uid"`
}

type PublishVersionReq struct {
	ItemId int64  `json:"itemId"`
	Name   string `json:"name"`
	Body   string `json:"body"`
	File   string `json:"file"`
	Link   string `json:"link"`
}

type SaveReviewReq struct {
	VersionId int64  `json:"versionId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Rating    int    `json:"rating"`
}

type ListReviewsReq struct {
	ItemId int64 `json:"itemId"`
	Page   int   `json:"page"`
}

type SaveScreenshotReq struct {
	ItemId int64  `json:"itemId"`
	Title  string `json:"title"`
	File   string `json:"file"`
}

type SaveTagReq struct {
	Name string `json:"name"`
}

type ListTagsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type AttachTagReq struct {
	ItemId int64 `json:"itemId"`
	TagId  int64 `json:"tagId"`
}

type ItemVO struct {
	Id               int64   `json:"id"`
	Uid              int64   `json:"uid"`
	Name             string  `json:"name"`
	Permalink        string  `json:"permalink"`
	Body             string  `json:"body"`
	Byline           string  `json:"byline"`
	Topnote          string  `json:"topnote,omitempty"`
	TcId             int64   `json:"tcId,omitempty"`
	DownloadsCount   int     `json:"downloadsCount"`
	ReviewsCount     int     `json:"reviewsCount"`
	ScreenshotsCount int     `json:"screenshotsCount"`
	RatingAverage    float64 `json:"ratingAverage"`
	RatingWeighted   int     `json:"ratingWeighted"`
	// VersionCreatedAt 没有版本时为空串
	VersionCreatedAt string `json:"versionCreatedAt,omitempty"`
	Utime            string `json:"utime"`
}

type ItemDetailVO struct {
	Item        ItemVO         `json:"item"`
	Versions    []VersionVO    `json:"versions"`
	Screenshots []ScreenshotVO `json:"screenshots"`
	Reviews     []ReviewVO     `json:"reviews"`
	Tags        []TagVO        `json:"tags"`
}

type ItemsList struct {
	Total int64    `json:"total"`
	Items []ItemVO `json:"items"`
}

type VersionVO struct {
	Id             int64  `json:"id"`
	ItemId         int64  `json:"itemId"`
	Name           string `json:"name"`
	Body           string `json:"body"`
	File           string `json:"file,omitempty"`
	Link           string `json:"link,omitempty"`
	DownloadsCount int    `json:"downloadsCount"`
	Ctime          string `json:"ctime"`
}

type ReviewVO struct {
	Id        int64  `json:"id"`
	VersionId int64  `json:"versionId"`
	ItemId    int64  `json:"itemId"`
	Uid       int64  `json:"uid"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Rating    int    `json:"rating"`
	Ctime     string `json:"ctime"`
}

type ReviewsList struct {
	Total   int64      `json:"total"`
	Reviews []ReviewVO `json:"reviews"`
}

type ScreenshotVO struct {
	Id     int64  `json:"id"`
	ItemId int64  `json:"itemId"`
	Title  string `json:"title"`
	File   string `json:"file"`
}

type TagVO struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Permalink string `json:"permalink"`
	Count     int    `json:"count"`
}

func newItemVO(it domain.Item) ItemVO {
	vo := ItemVO{
		Id:               it.Id,
		Uid:              it.Uid,
		Name:             it.Name,
		Permalink:        it.Permalink,
		Body:             it.Body,
		Byline:           it.Byline,
		Topnote:          it.Topnote,
		TcId:             it.TcId,
		DownloadsCount:   it.DownloadsCount,
		ReviewsCount:     it.ReviewsCount,
		ScreenshotsCount: it.ScreenshotsCount,
		RatingAverage:    it.RatingAverage,
		RatingWeighted:   it.RatingWeighted,
		Utime:            it.Utime.Format(time.DateTime),
	}
	if it.Released() {
		vo.VersionCreatedAt = it.VersionCreatedAt.Format(time.DateTime)
	}
	return vo
}

func newItemDetailVO(d domain.ItemDetail) ItemDetailVO {
	return ItemDetailVO{
		Item: newItemVO(d.Item),
		Versions: slice.Map(d.Versions, func(idx int, src domain.Version) VersionVO {
			return newVersionVO(src)
		}),
		Screenshots: slice.Map(d.Screenshots, func(idx int, src domain.Screenshot) ScreenshotVO {
			return newScreenshotVO(src)
		}),
		Reviews: slice.Map(d.Reviews, func(idx int, src domain.Review) ReviewVO {
			return newReviewVO(src)
		}),
		Tags: slice.Map(d.Tags, func(idx int, src domain.Tag) TagVO {
			return newTagVO(src)
		}),
	}
}

func newVersionVO(v domain.Version) VersionVO {
	return VersionVO{
		Id:             v.Id,
		ItemId:         v.ItemId,
		Name:           v.Name,
		Body:           v.Body,
		File:           v.File,
		Link:           v.Link,
		DownloadsCount: v.DownloadsCount,
		Ctime:          v.Ctime.Format(time.DateTime),
	}
}

func newReviewVO(r domain.Review) ReviewVO {
	return ReviewVO{
		Id:        r.Id,
		VersionId: r.VersionId,
		ItemId:    r.ItemId,
		Uid:       r.Uid,
		Title:     r.Title,
		Body:      r.Body,
		Rating:    r.Rating,
		Ctime:     r.Ctime.Format(time.DateTime),
	}
}

func newScreenshotVO(s domain.Screenshot) ScreenshotVO {
	return ScreenshotVO{
		Id:     s.Id,
		ItemId: s.ItemId,
		Title:  s.Title,
		File:   s.File,
	}
}

func newTagVO(t domain.Tag) TagVO {
	return TagVO{
		Id:        t.Id,
		Name:      t.Name,
		Permalink: t.Permalink,
		Count:     t.Count,
	}
}
