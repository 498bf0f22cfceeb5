//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitializeHandlers initializes all HTTP handlers with their dependencies
func InitializeHandlers(db *gorm.DB, redisClient *redis.Client) (*Handlers, error) {
	wire.Build(AllHandlersSet)
	return nil, nil
}
