package printing

import (
	"context"

	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
)

// Outcome is the result of handing a ticket to a printer. Error carries the
// transport's message verbatim and is empty on success.
type Outcome struct {
	OK    bool
	Error string
}

func Succeeded() Outcome {
	return Outcome{OK: true}
}

func Failed(msg string) Outcome {
	return Outcome{Error: msg}
}

// Err converts a failed outcome into an adapter failure for logging.
func (o Outcome) Err() error {
	if o.OK {
		return nil
	}
	return errors.NewAdapterFailureError("print failed", o.Error)
}

// Adapter delivers rendered tickets. Implementations report transport
// problems through Outcome and never panic.
type Adapter interface {
	Send(ctx context.Context, destination, title, text string) Outcome
}

// AdapterResolver picks the adapter for a stored printer kind.
type AdapterResolver interface {
	Resolve(kind string) (Adapter, error)
}
