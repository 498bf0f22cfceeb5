package inventory

import (
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/inventory/cache"
	"github.com/aps-intertrade/farmsight/internal/inventory/delivery/http"
	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
	"github.com/aps-intertrade/farmsight/internal/inventory/repository"
	"github.com/aps-intertrade/farmsight/internal/inventory/usecase/command"
	"github.com/aps-intertrade/farmsight/internal/inventory/usecase/query"
	salesdomain "github.com/aps-intertrade/farmsight/internal/sales/domain"
	salesrepo "github.com/aps-intertrade/farmsight/internal/sales/repository"
)

// Dashboard numbers change with every movement, a short TTL is enough.
const dashboardCacheTTL = 60 * time.Second

// ProvideItemRepository provides the item repository
func ProvideItemRepository(db *gorm.DB) domain.ItemRepository {
	return repository.NewGormItemRepositoryWithTracing(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

// ProvideSupplierRepository provides the supplier repository
func ProvideSupplierRepository(db *gorm.DB) domain.SupplierRepository {
	return repository.NewGormSupplierRepository(db)
}

// ProvideSaleRepository provides the sale repository for dashboard reads
func ProvideSaleRepository(db *gorm.DB) salesdomain.SaleRepository {
	return salesrepo.NewGormSaleRepository(db)
}

// ProvideCache provides the dashboard cache
func ProvideCache(redisClient *redis.Client) *cache.Cache {
	return cache.New(redisClient, dashboardCacheTTL)
}

// Command Handlers Providers
func ProvideCreateItemHandler(repo domain.ItemRepository) *command.CreateItemHandler {
	return command.NewCreateItemHandler(repo)
}

func ProvideUpdateItemHandler(repo domain.ItemRepository) *command.UpdateItemHandler {
	return command.NewUpdateItemHandler(repo)
}

func ProvideDeleteItemHandler(repo domain.ItemRepository) *command.DeleteItemHandler {
	return command.NewDeleteItemHandler(repo)
}

func ProvideCreateCategoryHandler(repo domain.CategoryRepository) *command.CreateCategoryHandler {
	return command.NewCreateCategoryHandler(repo)
}

func ProvideUpdateCategoryHandler(repo domain.CategoryRepository) *command.UpdateCategoryHandler {
	return command.NewUpdateCategoryHandler(repo)
}

func ProvideDeleteCategoryHandler(repo domain.CategoryRepository) *command.DeleteCategoryHandler {
	return command.NewDeleteCategoryHandler(repo)
}

func ProvideCreateSupplierHandler(repo domain.SupplierRepository) *command.CreateSupplierHandler {
	return command.NewCreateSupplierHandler(repo)
}

func ProvideUpdateSupplierHandler(repo domain.SupplierRepository) *command.UpdateSupplierHandler {
	return command.NewUpdateSupplierHandler(repo)
}

func ProvideDeleteSupplierHandler(repo domain.SupplierRepository) *command.DeleteSupplierHandler {
	return command.NewDeleteSupplierHandler(repo)
}

// Query Handlers Providers
func ProvideGetItemHandler(repo domain.ItemRepository) *query.GetItemHandler {
	return query.NewGetItemHandler(repo)
}

func ProvideListItemsHandler(repo domain.ItemRepository) *query.ListItemsHandler {
	return query.NewListItemsHandler(repo)
}

func ProvideLowStockHandler(repo domain.ItemRepository) *query.LowStockHandler {
	return query.NewLowStockHandler(repo)
}

func ProvideExpiringItemsHandler(repo domain.ItemRepository) *query.ExpiringItemsHandler {
	return query.NewExpiringItemsHandler(repo)
}

func ProvideGetDashboardHandler(items domain.ItemRepository, sales salesdomain.SaleRepository, c *cache.Cache) *query.GetDashboardHandler {
	return query.NewGetDashboardHandler(items, sales, c)
}

// Handlers bundles the HTTP handlers of the inventory service
type Handlers struct {
	Items      *http.ItemHandler
	Categories *http.CategoryHandler
	Suppliers  *http.SupplierHandler
}

// ProvideHandlers provides all HTTP handlers
func ProvideHandlers(
	items *http.ItemHandler,
	categories *http.CategoryHandler,
	suppliers *http.SupplierHandler,
) *Handlers {
	return &Handlers{
		Items:      items,
		Categories: categories,
		Suppliers:  suppliers,
	}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideItemRepository,
	ProvideCategoryRepository,
	ProvideSupplierRepository,
	ProvideSaleRepository,
	ProvideCache,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateItemHandler,
	ProvideUpdateItemHandler,
	ProvideDeleteItemHandler,
	ProvideCreateCategoryHandler,
	ProvideUpdateCategoryHandler,
	ProvideDeleteCategoryHandler,
	ProvideCreateSupplierHandler,
	ProvideUpdateSupplierHandler,
	ProvideDeleteSupplierHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetItemHandler,
	ProvideListItemsHandler,
	ProvideLowStockHandler,
	ProvideExpiringItemsHandler,
	ProvideGetDashboardHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	http.NewItemHandler,
	http.NewCategoryHandler,
	http.NewSupplierHandler,
	ProvideHandlers,
)
