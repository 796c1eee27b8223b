package printing

import "context"

type PrinterRepository interface {
	Create(ctx context.Context, p *Printer) error
	// GetActiveByName returns NotFound for unknown or inactive printers.
	GetActiveByName(ctx context.Context, name string) (*Printer, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*Printer, error)
}

type JobRepository interface {
	Create(ctx context.Context, j *Job) error
	// UpdateResult persists status, error and sent_at.
	UpdateResult(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, id uint) (*Job, error)
}
