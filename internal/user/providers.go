package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/user/domain"
	"github.com/aps-intertrade/farmsight/internal/user/repository"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepositoryWithTracing(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)
