// Package printing holds the printer transports and picks one per printer
// kind.
package printing

import (
	"fmt"

	domainprinting "github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// Registry maps every printer kind to its adapter. It is built once at
// startup and read-only afterwards.
type Registry struct {
	adapters map[domainprinting.Kind]domainprinting.Adapter
}

var _ domainprinting.AdapterResolver = (*Registry)(nil)

func NewRegistry(cfg config.PrintingConfig, log logger.Interface) (*Registry, error) {
	socket, err := NewSocketAdapter(cfg.SocketTimeout, cfg.SocketCharset, log)
	if err != nil {
		return nil, err
	}

	return &Registry{
		adapters: map[domainprinting.Kind]domainprinting.Adapter{
			domainprinting.KindLog:    NewLogAdapter(log),
			domainprinting.KindQueue:  NewQueueAdapter(cfg.QueueCommand, log),
			domainprinting.KindSocket: socket,
		},
	}, nil
}

// Resolve returns the adapter for a stored kind or one of its aliases.
func (r *Registry) Resolve(kind string) (domainprinting.Adapter, error) {
	k, err := domainprinting.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	adapter, ok := r.adapters[k]
	if !ok {
		return nil, fmt.Errorf("no adapter registered for printer kind %q", kind)
	}
	return adapter, nil
}

// ValidatePrinters fails on the first printer whose kind has no adapter.
func (r *Registry) ValidatePrinters(printers []*domainprinting.Printer) error {
	for _, p := range printers {
		if _, err := r.Resolve(p.Kind()); err != nil {
			return fmt.Errorf("printer %s: %w", p.Name(), err)
		}
	}
	return nil
}
