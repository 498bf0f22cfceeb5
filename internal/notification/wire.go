//go:build wireinject
// +build wireinject

package notification

import (
	"github.com/google/wire"
	"gorm.io/gorm"
)

// InitializeService wires the notification service dependencies
func InitializeService(db *gorm.DB) (*Service, error) {
	wire.Build(ServiceSet, ProvideService)
	return nil, nil
}
