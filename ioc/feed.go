package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/simplici7y/s7/internal/feed"
	"github.com/simplici7y/s7/internal/item"
)

func InitFeedHandler(itemModule *item.Module) *feed.Handler {
	return feed.NewHandler(itemModule, econf.GetString("feed.baseURL"))
}
