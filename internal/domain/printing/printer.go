package printing

import (
	"fmt"
	"strings"
)

// Kind selects the adapter used to reach a printer.
type Kind string

const (
	KindLog    Kind = "log"
	KindQueue  Kind = "cups"
	KindSocket Kind = "socket"
)

var kindAliases = map[string]Kind{
	"log":    KindLog,
	"dummy":  KindLog,
	"cups":   KindQueue,
	"queue":  KindQueue,
	"lp":     KindQueue,
	"socket": KindSocket,
	"tcp":    KindSocket,
	"net":    KindSocket,
}

// ParseKind maps a stored kind, including its aliases, to a Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown printer kind: %q", s)
	}
	return k, nil
}

type Printer struct {
	id          uint
	name        string
	kind        string
	destination string
	isActive    bool
}

func NewPrinter(name, kind, destination string) (*Printer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("printer name is required")
	}
	if _, err := ParseKind(kind); err != nil {
		return nil, err
	}
	return &Printer{
		name:        name,
		kind:        strings.ToLower(strings.TrimSpace(kind)),
		destination: strings.TrimSpace(destination),
		isActive:    true,
	}, nil
}

func ReconstructPrinter(id uint, name, kind, destination string, isActive bool) *Printer {
	return &Printer{id: id, name: name, kind: kind, destination: destination, isActive: isActive}
}

func (p *Printer) ID() uint            { return p.id }
func (p *Printer) Name() string        { return p.name }
func (p *Printer) Kind() string        { return p.kind }
func (p *Printer) Destination() string { return p.destination }
func (p *Printer) IsActive() bool      { return p.isActive }
func (p *Printer) SetID(id uint)       { p.id = id }
