package usecases

import (
	"context"
	"sync"

	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
)

type mockCallRepository struct {
	CreateFunc    func(ctx context.Context, c *call.Call) error
	GetByIDFunc   func(ctx context.Context, id uint) (*call.Call, error)
	UpdateAckFunc func(ctx context.Context, c *call.Call) error
}

func (m *mockCallRepository) Create(ctx context.Context, c *call.Call) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.SetID(1)
	return nil
}

func (m *mockCallRepository) GetByID(ctx context.Context, id uint) (*call.Call, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCallRepository) UpdateAck(ctx context.Context, c *call.Call) error {
	if m.UpdateAckFunc != nil {
		return m.UpdateAckFunc(ctx, c)
	}
	return nil
}

// The lookups below embed the repository interfaces; only the methods the
// call use cases touch are overridden.

type mockUserRepository struct {
	user.Repository
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockTableRepository struct {
	table.Repository
	FindByNumberFunc func(ctx context.Context, number int) (*table.Table, error)
}

func (m *mockTableRepository) FindByNumber(ctx context.Context, number int) (*table.Table, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, number)
	}
	return nil, nil
}

type mockOrderRepository struct {
	order.Repository
	GetByPublicIDFunc func(ctx context.Context, publicID string) (*order.Order, error)
}

func (m *mockOrderRepository) GetByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	return m.GetByPublicIDFunc(ctx, publicID)
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
