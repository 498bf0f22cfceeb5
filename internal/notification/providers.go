package notification

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/notification/consumer"
	"github.com/aps-intertrade/farmsight/internal/notification/delivery/http"
	"github.com/aps-intertrade/farmsight/internal/notification/domain"
	"github.com/aps-intertrade/farmsight/internal/notification/repository"
	"github.com/aps-intertrade/farmsight/internal/notification/usecase/command"
	"github.com/aps-intertrade/farmsight/internal/notification/usecase/query"
)

// ProvideNotificationRepository creates a notification repository
func ProvideNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return repository.NewGormNotificationRepository(db)
}

// ProvideActivityLogRepository creates an activity log repository
func ProvideActivityLogRepository(db *gorm.DB) domain.ActivityLogRepository {
	return repository.NewGormActivityLogRepository(db)
}

// ProvideMarkReadHandler creates a mark read command handler
func ProvideMarkReadHandler(repo domain.NotificationRepository) *command.MarkReadHandler {
	return command.NewMarkReadHandler(repo)
}

// ProvideMarkAllReadHandler creates a mark all read command handler
func ProvideMarkAllReadHandler(repo domain.NotificationRepository) *command.MarkAllReadHandler {
	return command.NewMarkAllReadHandler(repo)
}

// ProvideDeleteNotificationHandler creates a delete notification command handler
func ProvideDeleteNotificationHandler(repo domain.NotificationRepository) *command.DeleteNotificationHandler {
	return command.NewDeleteNotificationHandler(repo)
}

// ProvideListNotificationsHandler creates a list notifications query handler
func ProvideListNotificationsHandler(repo domain.NotificationRepository) *query.ListNotificationsHandler {
	return query.NewListNotificationsHandler(repo)
}

// ProvideListActivityHandler creates a list activity query handler
func ProvideListActivityHandler(repo domain.ActivityLogRepository) *query.ListActivityHandler {
	return query.NewListActivityHandler(repo)
}

// ProvideEventProcessor creates the kafka event processor
func ProvideEventProcessor(notifications domain.NotificationRepository, activity domain.ActivityLogRepository) *consumer.EventProcessor {
	return consumer.NewEventProcessor(notifications, activity)
}

// RepositorySet provides the repositories
var RepositorySet = wire.NewSet(
	ProvideNotificationRepository,
	ProvideActivityLogRepository,
)

// HandlerSet provides the usecase handlers
var HandlerSet = wire.NewSet(
	ProvideMarkReadHandler,
	ProvideMarkAllReadHandler,
	ProvideDeleteNotificationHandler,
	ProvideListNotificationsHandler,
	ProvideListActivityHandler,
)

// ServiceSet provides everything the notification service needs
var ServiceSet = wire.NewSet(
	RepositorySet,
	HandlerSet,
	ProvideEventProcessor,
	http.NewNotificationHandler,
)

// Service bundles the HTTP handler with the kafka event processor
type Service struct {
	Handler   *http.NotificationHandler
	Processor *consumer.EventProcessor
}

// ProvideService assembles the notification service
func ProvideService(handler *http.NotificationHandler, processor *consumer.EventProcessor) *Service {
	return &Service{Handler: handler, Processor: processor}
}
