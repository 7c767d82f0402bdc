//go:build wireinject

package item

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/simplici7y/s7/internal/item/internal/repository"
	"github.com/simplici7y/s7/internal/item/internal/repository/cache"
	"github.com/simplici7y/s7/internal/item/internal/repository/dao"
	"github.com/simplici7y/s7/internal/item/internal/service"
	"github.com/simplici7y/s7/internal/item/internal/web"
	"github.com/simplici7y/s7/internal/permission"
)

func InitModule(db *egorm.Component, ec ecache.Cache, permModule *permission.Module) (*Module, error) {
	wire.Build(
		InitItemDAO,
		dao.NewGORMVersionDAO,
		dao.NewGORMDownloadDAO,
		dao.NewGORMReviewDAO,
		dao.NewGORMScreenshotDAO,
		dao.NewGORMTagDAO,
		cache.NewItemECache,
		repository.NewItemRepository,
		repository.NewVersionRepository,
		repository.NewReviewRepository,
		repository.NewScreenshotRepository,
		repository.NewTagRepository,
		service.NewItemService,
		service.NewVersionService,
		service.NewReviewService,
		service.NewScreenshotService,
		service.NewTagService,
		web.NewHandler,
		web.NewVersionHandler,
		web.NewReviewHandler,
		web.NewTagHandler,
		wire.FieldsOf(new(*permission.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

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
