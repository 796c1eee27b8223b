package usecases

import (
	"context"
	"sync"

	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
)

type mockTableRepository struct {
	CreateFunc        func(ctx context.Context, t *table.Table) error
	GetByNumberFunc   func(ctx context.Context, number int) (*table.Table, error)
	FindByNumberFunc  func(ctx context.Context, number int) (*table.Table, error)
	UpdateOpeningFunc func(ctx context.Context, t *table.Table) error
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *mockTableRepository) Create(ctx context.Context, t *table.Table) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTableRepository) GetByNumber(ctx context.Context, number int) (*table.Table, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTableRepository) FindByNumber(ctx context.Context, number int) (*table.Table, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTableRepository) UpdateOpening(ctx context.Context, t *table.Table) error {
	if m.UpdateOpeningFunc != nil {
		return m.UpdateOpeningFunc(ctx, t)
	}
	return nil
}

func (m *mockTableRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockMenuRepository struct {
	FindActiveByIDsFunc func(ctx context.Context, ids []uint) (map[uint]*menu.Item, error)
}

func (m *mockMenuRepository) Create(ctx context.Context, item *menu.Item) error { return nil }

func (m *mockMenuRepository) ListActive(ctx context.Context) ([]*menu.Item, error) { return nil, nil }

func (m *mockMenuRepository) FindActiveByIDs(ctx context.Context, ids []uint) (map[uint]*menu.Item, error) {
	if m.FindActiveByIDsFunc != nil {
		return m.FindActiveByIDsFunc(ctx, ids)
	}
	return map[uint]*menu.Item{}, nil
}

func (m *mockMenuRepository) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockOrderRepository struct {
	CreateFunc           func(ctx context.Context, o *order.Order) error
	GetByPublicIDFunc    func(ctx context.Context, publicID string) (*order.Order, error)
	ExistsByPublicIDFunc func(ctx context.Context, publicID string) (bool, error)
	SetItemDoneFunc      func(ctx context.Context, orderID, itemID uint, done bool) error
	UpdateStatusFunc     func(ctx context.Context, o *order.Order) error
	GetViewFunc          func(ctx context.Context, publicID string) (*order.View, error)
	ListViewsFunc        func(ctx context.Context, filter order.ListFilter) ([]*order.View, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	if m.GetByPublicIDFunc != nil {
		return m.GetByPublicIDFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *mockOrderRepository) ExistsByPublicID(ctx context.Context, publicID string) (bool, error) {
	if m.ExistsByPublicIDFunc != nil {
		return m.ExistsByPublicIDFunc(ctx, publicID)
	}
	return false, nil
}

func (m *mockOrderRepository) SetItemDone(ctx context.Context, orderID, itemID uint, done bool) error {
	if m.SetItemDoneFunc != nil {
		return m.SetItemDoneFunc(ctx, orderID, itemID, done)
	}
	return nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepository) GetView(ctx context.Context, publicID string) (*order.View, error) {
	if m.GetViewFunc != nil {
		return m.GetViewFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *mockOrderRepository) ListViews(ctx context.Context, filter order.ListFilter) ([]*order.View, error) {
	if m.ListViewsFunc != nil {
		return m.ListViewsFunc(ctx, filter)
	}
	return nil, nil
}

// inlineTx runs the callback directly and records how often it was used.
type inlineTx struct {
	calls int
}

func (tx *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type published struct {
	Channel events.Channel
	Event   any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(channel events.Channel, event any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{Channel: channel, Event: event})
}

func (p *recordingPublisher) PublishMany(channels []events.Channel, event any) {
	for _, ch := range channels {
		p.Publish(ch, event)
	}
}

func (p *recordingPublisher) channels() []events.Channel {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Channel, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Channel)
	}
	return out
}

type sequenceGenerator struct {
	codes []string
	next  int
}

func (g *sequenceGenerator) Generate() (string, error) {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code, nil
}
