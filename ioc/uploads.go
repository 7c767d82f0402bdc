package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/simplici7y/s7/config"
	"github.com/simplici7y/s7/internal/uploads"
)

func InitUploadsHandler() *uploads.Handler {
	var cfg config.StorageConfig
	err := econf.UnmarshalKey("storage", &cfg)
	if err != nil {
		panic(err)
	}
	return uploads.NewHandler(cfg.SecretID, cfg.SecretKey,
		cfg.AppID, cfg.Bucket, cfg.Region, cfg.BaseURL)
}
