package command

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	invdomain "github.com/aps-intertrade/farmsight/internal/inventory/domain"
	"github.com/aps-intertrade/farmsight/internal/sales/domain"
	"github.com/aps-intertrade/farmsight/kafka"
)

// fakeItem is the stock state the fake repository guards
type fakeItem struct {
	name      string
	quantity  int
	threshold int
	price     float64
	status    string
}

// fakeSaleRepository mimics the transactional recording semantics with a
// mutex: check, insert and decrement happen under one lock.
type fakeSaleRepository struct {
	mu        sync.Mutex
	items     map[uint]*fakeItem
	sales     []domain.Sale
	nextID    uint
	conflicts int // number of leading Record calls that fail with ErrConflict
	failWith  error
}

func newFakeSaleRepository() *fakeSaleRepository {
	return &fakeSaleRepository{items: map[uint]*fakeItem{}}
}

func (r *fakeSaleRepository) addItem(id uint, name string, quantity, threshold int, price float64) {
	r.items[id] = &fakeItem{
		name:      name,
		quantity:  quantity,
		threshold: threshold,
		price:     price,
		status:    invdomain.DeriveStatus(quantity, threshold),
	}
}

func (r *fakeSaleRepository) Record(sale *domain.Sale) (*domain.RecordResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWith != nil {
		return nil, r.failWith
	}
	if r.conflicts > 0 {
		r.conflicts--
		return nil, domain.ErrConflict
	}

	item, ok := r.items[sale.ItemID]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	if item.quantity < sale.Quantity {
		return nil, &domain.InsufficientStockError{
			ItemID:    sale.ItemID,
			Requested: sale.Quantity,
			Available: item.quantity,
		}
	}

	item.quantity -= sale.Quantity
	item.status = invdomain.DeriveStatus(item.quantity, item.threshold)

	r.nextID++
	sale.ID = r.nextID
	sale.ItemName = item.name
	sale.UnitPrice = item.price
	sale.Total = domain.ComputeTotal(sale.Quantity, item.price)
	r.sales = append(r.sales, *sale)

	return &domain.RecordResult{
		Sale:          sale,
		ItemQuantity:  item.quantity,
		ItemThreshold: item.threshold,
		ItemStatus:    item.status,
	}, nil
}

func (r *fakeSaleRepository) FindByID(id uint) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].ID == id {
			s := r.sales[i]
			return &s, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeSaleRepository) FindByReference(reference string) (*domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sales {
		if r.sales[i].Reference == reference {
			s := r.sales[i]
			return &s, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeSaleRepository) FindAll(limit, offset int) ([]domain.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Sale(nil), r.sales...), nil
}

func (r *fakeSaleRepository) FindByItem(itemID uint, limit, offset int) ([]domain.Sale, error) {
	return r.FindAll(limit, offset)
}

func (r *fakeSaleRepository) FindByKind(kind string, limit, offset int) ([]domain.Sale, error) {
	return r.FindAll(limit, offset)
}

func (r *fakeSaleRepository) FindRecent(limit int) ([]domain.Sale, error) {
	return r.FindAll(limit, 0)
}

func (r *fakeSaleRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sales)), nil
}

func (r *fakeSaleRepository) TotalByKind(kind string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, s := range r.sales {
		if s.Kind == kind {
			total += s.Total
		}
	}
	return total, nil
}

// fakePublisher records published events
type fakePublisher struct {
	mu     sync.Mutex
	sales  []kafka.SaleRecordedEvent
	alerts []kafka.StockAlertEvent
}

func (p *fakePublisher) PublishSaleRecorded(ctx context.Context, event kafka.SaleRecordedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sales = append(p.sales, event)
	return nil
}

func (p *fakePublisher) PublishStockAlert(ctx context.Context, event kafka.StockAlertEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, event)
	return nil
}

func TestRecordSale_Success(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 10, 5, 3.00)
	pub := &fakePublisher{}
	handler := NewRecordSaleHandler(repo, pub)

	result, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID:   1,
		Quantity: 4,
		Kind:     domain.KindSale,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if result.Sale.Total != 12.00 {
		t.Errorf("total = %v, want 12.00", result.Sale.Total)
	}
	if result.ItemQuantity != 6 {
		t.Errorf("remaining quantity = %d, want 6", result.ItemQuantity)
	}
	if result.ItemStatus != invdomain.StatusInStock {
		t.Errorf("status = %q, want %q", result.ItemStatus, invdomain.StatusInStock)
	}
	if len(pub.sales) != 1 {
		t.Errorf("published sale events = %d, want 1", len(pub.sales))
	}
	if len(pub.alerts) != 0 {
		t.Errorf("published alerts = %d, want 0", len(pub.alerts))
	}
}

func TestRecordSale_CrossesThresholdEmitsAlert(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 10, 5, 3.00)
	pub := &fakePublisher{}
	handler := NewRecordSaleHandler(repo, pub)

	// 10 - 6 = 4, at or below threshold 5
	result, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID:   1,
		Quantity: 6,
		Kind:     domain.KindUsage,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if result.ItemStatus != invdomain.StatusLowStock {
		t.Errorf("status = %q, want %q", result.ItemStatus, invdomain.StatusLowStock)
	}
	if len(pub.alerts) != 1 {
		t.Fatalf("published alerts = %d, want 1", len(pub.alerts))
	}
	if pub.alerts[0].Quantity != 4 {
		t.Errorf("alert quantity = %d, want 4", pub.alerts[0].Quantity)
	}
}

func TestRecordSale_TotalRoundedToCents(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Vaccine Dose", 100, 10, 2.50)
	handler := NewRecordSaleHandler(repo, nil)

	result, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID:   1,
		Quantity: 4,
		Kind:     domain.KindSale,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Sale.Total != 10.00 {
		t.Errorf("total = %v, want 10.00", result.Sale.Total)
	}
}

func TestRecordSale_Validation(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 10, 5, 3.00)
	handler := NewRecordSaleHandler(repo, nil)

	tests := []struct {
		name    string
		cmd     RecordSaleCommand
		wantErr error
	}{
		{"zero item", RecordSaleCommand{ItemID: 0, Quantity: 1, Kind: domain.KindSale}, domain.ErrItemNotFound},
		{"missing item", RecordSaleCommand{ItemID: 99, Quantity: 1, Kind: domain.KindSale}, domain.ErrItemNotFound},
		{"zero quantity", RecordSaleCommand{ItemID: 1, Quantity: 0, Kind: domain.KindSale}, domain.ErrInvalidQuantity},
		{"negative quantity", RecordSaleCommand{ItemID: 1, Quantity: -3, Kind: domain.KindSale}, domain.ErrInvalidQuantity},
		{"bad kind", RecordSaleCommand{ItemID: 1, Quantity: 1, Kind: "refund"}, domain.ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.cmd)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Handle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if n, _ := repo.Count(); n != 0 {
		t.Errorf("sales recorded = %d, want 0", n)
	}
}

func TestRecordSale_InsufficientStockCarriesAvailable(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 3, 5, 3.00)
	handler := NewRecordSaleHandler(repo, nil)

	_, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID:   1,
		Quantity: 8,
		Kind:     domain.KindSale,
	})

	var insufficient *domain.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Handle() error = %v, want InsufficientStockError", err)
	}
	if insufficient.Available != 3 {
		t.Errorf("available = %d, want 3", insufficient.Available)
	}
	if insufficient.Requested != 8 {
		t.Errorf("requested = %d, want 8", insufficient.Requested)
	}

	// The failed attempt must leave no trace
	if n, _ := repo.Count(); n != 0 {
		t.Errorf("sales recorded = %d, want 0", n)
	}
	if repo.items[1].quantity != 3 {
		t.Errorf("quantity = %d, want 3 (unchanged)", repo.items[1].quantity)
	}
}

func TestRecordSale_RetriesOnConflict(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 10, 5, 3.00)
	repo.conflicts = 2
	handler := NewRecordSaleHandler(repo, nil)

	result, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID:   1,
		Quantity: 1,
		Kind:     domain.KindSale,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v, want success after retries", err)
	}
	if result.ItemQuantity != 9 {
		t.Errorf("remaining quantity = %d, want 9", result.ItemQuantity)
	}
	if n, _ := repo.Count(); n != 1 {
		t.Errorf("sales recorded = %d, want exactly 1", n)
	}
}

func TestRecordSale_ConflictRetriesExhausted(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 10, 5, 3.00)
	repo.conflicts = maxRecordAttempts
	handler := NewRecordSaleHandler(repo, nil)

	_, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID:   1,
		Quantity: 1,
		Kind:     domain.KindSale,
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Handle() error = %v, want ErrConflict", err)
	}
	if n, _ := repo.Count(); n != 0 {
		t.Errorf("sales recorded = %d, want 0", n)
	}
}

func TestRecordSale_StoreUnavailable(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 10, 5, 3.00)
	repo.failWith = fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable)
	handler := NewRecordSaleHandler(repo, nil)

	_, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID:   1,
		Quantity: 1,
		Kind:     domain.KindSale,
	})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("Handle() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestRecordSale_NoOversellUnderConcurrency(t *testing.T) {
	const (
		stock   = 20
		workers = 50
		perSale = 3
	)

	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", stock, 5, 3.00)
	handler := NewRecordSaleHandler(repo, nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	insufficient := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Handle(context.Background(), RecordSaleCommand{
				ItemID:   1,
				Quantity: perSale,
				Kind:     domain.KindSale,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			default:
				var ise *domain.InsufficientStockError
				if errors.As(err, &ise) {
					insufficient++
				} else {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if repo.items[1].quantity < 0 {
		t.Fatalf("quantity went negative: %d", repo.items[1].quantity)
	}

	sold := succeeded * perSale
	if sold+repo.items[1].quantity != stock {
		t.Errorf("stock accounting broken: sold %d + remaining %d != %d",
			sold, repo.items[1].quantity, stock)
	}
	if succeeded+insufficient != workers {
		t.Errorf("outcomes = %d, want %d", succeeded+insufficient, workers)
	}

	n, _ := repo.Count()
	if int(n) != succeeded {
		t.Errorf("sales recorded = %d, want %d (one per success)", n, succeeded)
	}
}

func TestRecordSale_ReferencePrefixByKind(t *testing.T) {
	repo := newFakeSaleRepository()
	repo.addItem(1, "Layer Feed 50kg", 10, 5, 3.00)
	handler := NewRecordSaleHandler(repo, nil)

	saleResult, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID: 1, Quantity: 1, Kind: domain.KindSale,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	usageResult, err := handler.Handle(context.Background(), RecordSaleCommand{
		ItemID: 1, Quantity: 1, Kind: domain.KindUsage,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if got := saleResult.Sale.Reference[:4]; got != "SAL-" {
		t.Errorf("sale reference prefix = %q, want SAL-", got)
	}
	if got := usageResult.Sale.Reference[:4]; got != "USG-" {
		t.Errorf("usage reference prefix = %q, want USG-", got)
	}
}
