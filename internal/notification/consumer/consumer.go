package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aps-intertrade/farmsight/internal/notification/domain"
	"github.com/aps-intertrade/farmsight/kafka"
	"github.com/aps-intertrade/farmsight/pkg/logger"
)

// EventProcessor turns stock and sales events into notifications and
// activity log entries
type EventProcessor struct {
	notifications domain.NotificationRepository
	activity      domain.ActivityLogRepository
}

// NewEventProcessor creates a new event processor
func NewEventProcessor(notifications domain.NotificationRepository, activity domain.ActivityLogRepository) *EventProcessor {
	return &EventProcessor{notifications: notifications, activity: activity}
}

// Register attaches the processor's handlers to a kafka consumer
func (p *EventProcessor) Register(consumer *kafka.Consumer) {
	consumer.RegisterHandler(kafka.EventTypeSaleRecorded, p.HandleSaleRecorded)
	consumer.RegisterHandler(kafka.EventTypeStockLow, p.HandleStockAlert)
	consumer.RegisterHandler(kafka.EventTypeStockOut, p.HandleStockAlert)
}

// HandleSaleRecorded writes an activity log entry and an info
// notification for each committed stock movement
func (p *EventProcessor) HandleSaleRecorded(ctx context.Context, payload []byte) error {
	var event kafka.SaleRecordedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to decode sale event: %w", err)
	}

	entry := &domain.ActivityLog{
		Action:    event.Kind,
		Reference: event.Reference,
		ItemID:    event.ItemID,
		ItemName:  event.ItemName,
		Quantity:  event.Quantity,
		Total:     event.Total,
		Actor:     event.CreatedBy,
	}
	if err := p.activity.Create(entry); err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	notification := &domain.Notification{
		Type:     domain.TypeSaleRecorded,
		Severity: domain.SeverityInfo,
		Title:    fmt.Sprintf("Stock movement %s", event.Reference),
		Message:  fmt.Sprintf("%d x %s recorded by %s", event.Quantity, event.ItemName, event.CreatedBy),
		ItemID:   event.ItemID,
	}
	if err := p.notifications.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	logger.Info(ctx).
		Str("reference", event.Reference).
		Str("kind", event.Kind).
		Uint("item_id", event.ItemID).
		Msg("Sale event processed")
	return nil
}

// HandleStockAlert creates a warning or critical notification when an
// item drops to or below its reorder threshold
func (p *EventProcessor) HandleStockAlert(ctx context.Context, payload []byte) error {
	var event kafka.StockAlertEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("failed to decode stock alert: %w", err)
	}

	notification := &domain.Notification{
		Type:     domain.TypeStockLow,
		Severity: domain.SeverityWarning,
		Title:    fmt.Sprintf("Low stock: %s", event.ItemName),
		Message:  fmt.Sprintf("%s is down to %d units (threshold %d)", event.ItemName, event.Quantity, event.Threshold),
		ItemID:   event.ItemID,
	}
	if event.EventType == kafka.EventTypeStockOut {
		notification.Type = domain.TypeStockOut
		notification.Severity = domain.SeverityCritical
		notification.Title = fmt.Sprintf("Out of stock: %s", event.ItemName)
		notification.Message = fmt.Sprintf("%s is out of stock", event.ItemName)
	}

	if err := p.notifications.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	logger.Warn(ctx).
		Uint("item_id", event.ItemID).
		Int("quantity", event.Quantity).
		Str("status", event.Status).
		Msg("Stock alert processed")
	return nil
}
