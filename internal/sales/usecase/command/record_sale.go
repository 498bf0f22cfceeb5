package command

import (
	"context"
	"errors"
	"time"

	invdomain "github.com/aps-intertrade/farmsight/internal/inventory/domain"
	"github.com/aps-intertrade/farmsight/internal/sales/domain"
	"github.com/aps-intertrade/farmsight/kafka"
	"github.com/aps-intertrade/farmsight/pkg/logger"
)

// Number of attempts when the recording transaction loses a write race.
// Each retry re-reads current stock, so a retry can still end in
// InsufficientStock if another writer drained the item first.
const maxRecordAttempts = 3

// EventPublisher publishes stock movement events. Nil is allowed and
// disables publishing.
type EventPublisher interface {
	PublishSaleRecorded(ctx context.Context, event kafka.SaleRecordedEvent) error
	PublishStockAlert(ctx context.Context, event kafka.StockAlertEvent) error
}

// RecordSaleCommand represents the command to record a sale or usage
type RecordSaleCommand struct {
	ItemID    uint
	Quantity  int
	Kind      string
	CreatedBy string
}

// RecordSaleHandler handles record sale command
type RecordSaleHandler struct {
	repo      domain.SaleRepository
	publisher EventPublisher
}

// NewRecordSaleHandler creates a new record sale handler
func NewRecordSaleHandler(repo domain.SaleRepository, publisher EventPublisher) *RecordSaleHandler {
	return &RecordSaleHandler{repo: repo, publisher: publisher}
}

// Handle validates the command and records the movement. The stock check,
// sale insert and quantity decrement happen in one transaction inside the
// repository. Write races are retried a bounded number of times; events
// are published only after the transaction has committed.
func (h *RecordSaleHandler) Handle(ctx context.Context, cmd RecordSaleCommand) (*domain.RecordResult, error) {
	if cmd.ItemID == 0 {
		return nil, domain.ErrItemNotFound
	}
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !domain.ValidKind(cmd.Kind) {
		return nil, domain.ErrInvalidKind
	}

	var result *domain.RecordResult
	var err error

	for attempt := 1; attempt <= maxRecordAttempts; attempt++ {
		sale := &domain.Sale{
			Reference: domain.NewReference(cmd.Kind),
			ItemID:    cmd.ItemID,
			Quantity:  cmd.Quantity,
			Kind:      cmd.Kind,
			CreatedBy: cmd.CreatedBy,
		}

		result, err = h.repo.Record(sale)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}

		logger.Warn(ctx).
			Uint("item_id", cmd.ItemID).
			Int("attempt", attempt).
			Msg("Stock update conflict, retrying")
		time.Sleep(time.Duration(attempt) * 10 * time.Millisecond)
	}
	if err != nil {
		return nil, err
	}

	h.publishEvents(ctx, result)

	return result, nil
}

// publishEvents emits the movement event plus a stock alert when the item
// dropped to or below its threshold. Publishing is best effort, a broker
// outage never rolls back a committed sale.
func (h *RecordSaleHandler) publishEvents(ctx context.Context, result *domain.RecordResult) {
	if h.publisher == nil {
		return
	}

	sale := result.Sale

	if err := h.publisher.PublishSaleRecorded(ctx, kafka.SaleRecordedEvent{
		SaleID:    sale.ID,
		Reference: sale.Reference,
		ItemID:    sale.ItemID,
		ItemName:  sale.ItemName,
		Quantity:  sale.Quantity,
		UnitPrice: sale.UnitPrice,
		Total:     sale.Total,
		Kind:      sale.Kind,
		CreatedBy: sale.CreatedBy,
	}); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("reference", sale.Reference).
			Msg("Failed to publish sale recorded event")
	}

	if result.ItemStatus == invdomain.StatusInStock {
		return
	}

	if err := h.publisher.PublishStockAlert(ctx, kafka.StockAlertEvent{
		ItemID:    sale.ItemID,
		ItemName:  sale.ItemName,
		Quantity:  result.ItemQuantity,
		Threshold: result.ItemThreshold,
		Status:    result.ItemStatus,
	}); err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("item_id", sale.ItemID).
			Msg("Failed to publish stock alert event")
	}
}
