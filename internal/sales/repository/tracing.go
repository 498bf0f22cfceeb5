package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/aps-intertrade/farmsight/internal/sales/domain"
)

var tracer = otel.Tracer("sales-repository")

// GormSaleRepositoryWithTracing wraps GormSaleRepository with tracing
type GormSaleRepositoryWithTracing struct {
	*GormSaleRepository
}

// NewGormSaleRepositoryWithTracing creates a new repository with tracing
func NewGormSaleRepositoryWithTracing(db *gorm.DB) *GormSaleRepositoryWithTracing {
	return &GormSaleRepositoryWithTracing{
		GormSaleRepository: NewGormSaleRepository(db),
	}
}

// RecordWithContext runs the recording transaction inside a traced span
func (r *GormSaleRepositoryWithTracing) RecordWithContext(ctx context.Context, sale *domain.Sale) (*domain.RecordResult, error) {
	_, span := tracer.Start(ctx, "repository.Record",
		trace.WithAttributes(
			attribute.Int("sale.item_id", int(sale.ItemID)),
			attribute.Int("sale.quantity", sale.Quantity),
			attribute.String("sale.kind", sale.Kind),
		),
	)
	defer span.End()

	result, err := r.GormSaleRepository.Record(sale)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("sale.reference", result.Sale.Reference),
		attribute.Int("item.quantity", result.ItemQuantity),
		attribute.String("item.status", result.ItemStatus),
	)
	return result, nil
}

// FindByIDWithContext loads a sale inside a traced span
func (r *GormSaleRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Sale, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("sale.id", int(id)),
		),
	)
	defer span.End()

	sale, err := r.GormSaleRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("sale.reference", sale.Reference))
	return sale, nil
}
