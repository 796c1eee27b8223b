package usecases

import (
	"context"

	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
)

type mockOrderRepository struct {
	order.Repository

	GetViewFunc       func(ctx context.Context, publicID string) (*order.View, error)
	GetByPublicIDFunc func(ctx context.Context, publicID string) (*order.Order, error)
	UpdateStatusFunc  func(ctx context.Context, o *order.Order) error
}

func (m *mockOrderRepository) GetByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	if m.GetByPublicIDFunc != nil {
		return m.GetByPublicIDFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *mockOrderRepository) GetView(ctx context.Context, publicID string) (*order.View, error) {
	if m.GetViewFunc != nil {
		return m.GetViewFunc(ctx, publicID)
	}
	return nil, nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, o)
	}
	return nil
}

type mockPrinterRepository struct {
	printing.PrinterRepository

	GetActiveByNameFunc func(ctx context.Context, name string) (*printing.Printer, error)
}

func (m *mockPrinterRepository) GetActiveByName(ctx context.Context, name string) (*printing.Printer, error) {
	if m.GetActiveByNameFunc != nil {
		return m.GetActiveByNameFunc(ctx, name)
	}
	return nil, nil
}

type mockJobRepository struct {
	CreateFunc       func(ctx context.Context, j *printing.Job) error
	UpdateResultFunc func(ctx context.Context, j *printing.Job) error
}

func (m *mockJobRepository) Create(ctx context.Context, j *printing.Job) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, j)
	}
	return nil
}

func (m *mockJobRepository) UpdateResult(ctx context.Context, j *printing.Job) error {
	if m.UpdateResultFunc != nil {
		return m.UpdateResultFunc(ctx, j)
	}
	return nil
}

func (m *mockJobRepository) GetByID(ctx context.Context, id uint) (*printing.Job, error) {
	return nil, nil
}

type stubAdapter struct {
	outcome printing.Outcome
	sent    []string
	// onSend runs while the ticket is "on the wire".
	onSend func(ctx context.Context)
}

func (a *stubAdapter) Send(ctx context.Context, destination, title, text string) printing.Outcome {
	a.sent = append(a.sent, destination+"|"+title)
	if a.onSend != nil {
		a.onSend(ctx)
	}
	return a.outcome
}

type stubResolver struct {
	adapter printing.Adapter
	err     error
}

func (r *stubResolver) Resolve(kind string) (printing.Adapter, error) {
	return r.adapter, r.err
}

type inlineTx struct{}

func (inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	channels []events.Channel
	last     any
}

func (p *recordingPublisher) Publish(channel events.Channel, event any) {
	p.channels = append(p.channels, channel)
	p.last = event
}

func (p *recordingPublisher) PublishMany(channels []events.Channel, event any) {
	for _, ch := range channels {
		p.Publish(ch, event)
	}
}
