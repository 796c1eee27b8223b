package http

import (
	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/repository"
)

type repositories struct {
	userRepo    user.Repository
	tableRepo   table.Repository
	menuRepo    menu.Repository
	orderRepo   order.Repository
	printerRepo printing.PrinterRepository
	jobRepo     printing.JobRepository
	callRepo    call.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:    repository.NewUserRepository(db),
		tableRepo:   repository.NewTableRepository(db),
		menuRepo:    repository.NewMenuRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
		printerRepo: repository.NewPrinterRepository(db),
		jobRepo:     repository.NewPrintJobRepository(db),
		callRepo:    repository.NewCallRepository(db),
	}
}
