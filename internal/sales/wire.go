//go:build wireinject
// +build wireinject

package sales

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/sales/delivery/http"
	"github.com/aps-intertrade/farmsight/internal/sales/usecase/command"
)

// InitializeSaleHandler initializes the sales HTTP handler with its
// dependencies. A nil publisher disables event publishing.
func InitializeSaleHandler(db *gorm.DB, publisher command.EventPublisher) (*http.SaleHandler, error) {
	wire.Build(AllHandlersSet)
	return nil, nil
}
