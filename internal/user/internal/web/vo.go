package web

import (
	"time"

	"github.com/simplici7y/s7/internal/user/internal/domain"
)

type SignupReq struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type EditReq struct {
	DisplayName string `json:"displayName"`
}

type DetailReq struct {
	Username string `json:"username"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Profile struct {
	Id           int64  `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	ItemsCount   int    `json:"itemsCount"`
	ReviewsCount int    `json:"reviewsCount"`
	Joined       string `json:"joined"`
}

type UsersList struct {
	Total int64     `json:"total"`
	Users []Profile `json:"users"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:           u.Id,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		ItemsCount:   u.ItemsCount,
		ReviewsCount: u.ReviewsCount,
		Joined:       u.Ctime.Format(time.DateTime),
	}
}
