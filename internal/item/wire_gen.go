// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package item

import (
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/simplici7y/s7/internal/item/internal/repository"
	"github.com/simplici7y/s7/internal/item/internal/repository/cache"
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
	"github.com/simplici7y/s7/internal/item/internal/service"
	"github.com/simplici7y/s7/internal/item/internal/web"
	"github.com/simplici7y/s7/internal/permission"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, ec ecache.Cache, permModule *permission.Module) (*Module, error) {
	itemDAO := InitItemDAO(db)
	itemCache := cache.NewItemECache(ec)
	itemRepository := repository.NewItemRepository(itemDAO, itemCache)
	versionDAO := dao.NewGORMVersionDAO(db)
	downloadDAO := dao.NewGORMDownloadDAO(db)
	versionRepository := repository.NewVersionRepository(versionDAO, downloadDAO, itemCache)
	screenshotDAO := dao.NewGORMScreenshotDAO(db)
	screenshotRepository := repository.NewScreenshotRepository(screenshotDAO, itemCache)
	reviewDAO := dao.NewGORMReviewDAO(db)
	reviewRepository := repository.NewReviewRepository(reviewDAO, itemCache)
	tagDAO := dao.NewGORMTagDAO(db)
	tagRepository := repository.NewTagRepository(tagDAO)
	v := permModule.Svc
	v2 := service.NewItemService(itemRepository, versionRepository, screenshotRepository, reviewRepository, tagRepository, v)
	v3 := service.NewVersionService(versionRepository, itemRepository, v)
	v4 := service.NewReviewService(reviewRepository, v)
	v5 := service.NewTagService(tagRepository, itemRepository, v)
	screenshotService := service.NewScreenshotService(screenshotRepository, itemRepository, v)
	v6 := web.NewHandler(v2, screenshotService)
	v7 := web.NewVersionHandler(v3)
	v8 := web.NewReviewHandler(v4)
	v9 := web.NewTagHandler(v5)
	module := &Module{
		Svc:       v2,
		VerSvc:    v3,
		ReviewSvc: v4,
		TagSvc:    v5,
		Hdl:       v6,
		VerHdl:    v7,
		ReviewHdl: v8,
		TagHdl:    v9,
	}
	return module, nil
}

// wire.go:

var daoOnce = sync.Once{}

func InitItemDAO(db *egorm.Component) dao.ItemDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMItemDAO(db)
}
