package sales

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/sales/delivery/http"
	"github.com/aps-intertrade/farmsight/internal/sales/domain"
	"github.com/aps-intertrade/farmsight/internal/sales/repository"
	"github.com/aps-intertrade/farmsight/internal/sales/usecase/command"
	"github.com/aps-intertrade/farmsight/internal/sales/usecase/query"
)

// ProvideSaleRepository provides the sale repository
func ProvideSaleRepository(db *gorm.DB) domain.SaleRepository {
	return repository.NewGormSaleRepositoryWithTracing(db)
}

// Command Handlers Providers
func ProvideRecordSaleHandler(repo domain.SaleRepository, publisher command.EventPublisher) *command.RecordSaleHandler {
	return command.NewRecordSaleHandler(repo, publisher)
}

// Query Handlers Providers
func ProvideGetSaleHandler(repo domain.SaleRepository) *query.GetSaleHandler {
	return query.NewGetSaleHandler(repo)
}

func ProvideListSalesHandler(repo domain.SaleRepository) *query.ListSalesHandler {
	return query.NewListSalesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSaleRepository,
)

var HandlerSet = wire.NewSet(
	ProvideRecordSaleHandler,
	ProvideGetSaleHandler,
	ProvideListSalesHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	HandlerSet,
	http.NewSaleHandler,
)
