package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormItemRepositoryWithTracing wraps GormItemRepository with tracing
type GormItemRepositoryWithTracing struct {
	*GormItemRepository
}

// NewGormItemRepositoryWithTracing creates a new repository with tracing
func NewGormItemRepositoryWithTracing(db *gorm.DB) *GormItemRepositoryWithTracing {
	return &GormItemRepositoryWithTracing{
		GormItemRepository: NewGormItemRepository(db),
	}
}

// CreateWithContext creates an item inside a traced span
func (r *GormItemRepositoryWithTracing) CreateWithContext(ctx context.Context, item *domain.Item) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("item.name", item.Name),
			attribute.Int("item.quantity", item.Quantity),
			attribute.String("item.status", item.Status),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Create(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("item.id", int(item.ID)))
	return nil
}

// FindByIDWithContext loads an item inside a traced span
func (r *GormItemRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
		),
	)
	defer span.End()

	item, err := r.GormItemRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.name", item.Name),
		attribute.Int("item.quantity", item.Quantity),
		attribute.String("item.status", item.Status),
	)
	return item, nil
}

// UpdateWithContext saves an item inside a traced span
func (r *GormItemRepositoryWithTracing) UpdateWithContext(ctx context.Context, item *domain.Item) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("item.id", int(item.ID)),
			attribute.Int("item.quantity", item.Quantity),
			attribute.Int("item.threshold", item.Threshold),
			attribute.String("item.status", item.Status),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Update(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// DeleteWithContext deletes an item inside a traced span
func (r *GormItemRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
