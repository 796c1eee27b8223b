// Package seed loads reference data (staff, tables, menu, printers) into an
// empty database.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/shared/constants"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

//go:embed default.yaml
var defaultData []byte

type Data struct {
	Users    []UserData    `yaml:"users"`
	Tables   TableRange    `yaml:"tables"`
	Menu     []MenuData    `yaml:"menu"`
	Printers []PrinterData `yaml:"printers"`
}

type UserData struct {
	Username    string `yaml:"username"`
	DisplayName string `yaml:"display_name"`
	Role        string `yaml:"role"`
	Password    string `yaml:"password"`
}

type TableRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

type MenuData struct {
	SKU      string          `yaml:"sku"`
	Name     string          `yaml:"name"`
	Category string          `yaml:"category"`
	Price    decimal.Decimal `yaml:"price"`
}

type PrinterData struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	Destination string `yaml:"destination"`
}

// Default returns the built-in demo floor.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// LoadFile reads a seed file; an empty path yields the built-in data.
func LoadFile(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if d.Tables.From < 0 || d.Tables.To > constants.MaxTableNumber || (d.Tables.To > 0 && d.Tables.From > d.Tables.To) {
		return nil, fmt.Errorf("invalid table range %d..%d", d.Tables.From, d.Tables.To)
	}
	return &d, nil
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Report counts the rows each run created.
type Report struct {
	Users     int
	Tables    int
	MenuItems int
	Printers  int
}

// Seeder fills each collection only when it is empty; printers are matched
// by name. Running it twice creates nothing the second time.
type Seeder struct {
	users    user.Repository
	tables   table.Repository
	menu     menu.Repository
	printers printing.PrinterRepository
	resolver printing.AdapterResolver
	hasher   PasswordHasher
	tx       db.Transactor
	logger   logger.Interface
	now      func() time.Time
}

func NewSeeder(
	users user.Repository,
	tables table.Repository,
	menuRepo menu.Repository,
	printers printing.PrinterRepository,
	resolver printing.AdapterResolver,
	hasher PasswordHasher,
	tx db.Transactor,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		users:    users,
		tables:   tables,
		menu:     menuRepo,
		printers: printers,
		resolver: resolver,
		hasher:   hasher,
		tx:       tx,
		logger:   log.Named("seed"),
		now:      time.Now,
	}
}

func (s *Seeder) Run(ctx context.Context, data *Data) (*Report, error) {
	// Validate printer kinds before writing anything.
	for _, p := range data.Printers {
		if _, err := s.resolver.Resolve(p.Kind); err != nil {
			return nil, fmt.Errorf("printer %s: %w", p.Name, err)
		}
	}

	report := &Report{}
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		steps := []func(context.Context, *Data, *Report) error{
			s.seedUsers,
			s.seedTables,
			s.seedMenu,
			s.seedPrinters,
		}
		for _, step := range steps {
			if err := step(ctx, data, report); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("seeding failed", "error", err)
		return nil, err
	}

	s.logger.Infow("seeding completed",
		"users", report.Users,
		"tables", report.Tables,
		"menu_items", report.MenuItems,
		"printers", report.Printers,
	)
	return report, nil
}

func (s *Seeder) seedUsers(ctx context.Context, data *Data, report *Report) error {
	n, err := s.users.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, u := range data.Users {
		role, err := user.ParseRole(u.Role)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
		hash, err := s.hasher.Hash(u.Password)
		if err != nil {
			return err
		}
		entity, err := user.NewUser(u.Username, u.DisplayName, role, hash, s.now())
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
		if err := s.users.Create(ctx, entity); err != nil {
			return err
		}
		report.Users++
	}
	return nil
}

func (s *Seeder) seedTables(ctx context.Context, data *Data, report *Report) error {
	n, err := s.tables.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for number := max(data.Tables.From, 1); number <= data.Tables.To; number++ {
		t, err := table.NewTable(number)
		if err != nil {
			return err
		}
		if err := s.tables.Create(ctx, t); err != nil {
			return err
		}
		report.Tables++
	}
	return nil
}

func (s *Seeder) seedMenu(ctx context.Context, data *Data, report *Report) error {
	n, err := s.menu.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, m := range data.Menu {
		item, err := menu.NewItem(m.SKU, m.Name, m.Category, m.Price)
		if err != nil {
			return fmt.Errorf("menu item %s: %w", m.SKU, err)
		}
		if err := s.menu.Create(ctx, item); err != nil {
			return err
		}
		report.MenuItems++
	}
	return nil
}

func (s *Seeder) seedPrinters(ctx context.Context, data *Data, report *Report) error {
	for _, p := range data.Printers {
		exists, err := s.printers.ExistsByName(ctx, p.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		entity, err := printing.NewPrinter(p.Name, p.Kind, p.Destination)
		if err != nil {
			return err
		}
		if err := s.printers.Create(ctx, entity); err != nil {
			return err
		}
		report.Printers++
	}
	return nil
}
