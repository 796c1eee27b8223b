package http

import (
	callUsecases "github.com/lorenzobigazzi0/cassa/internal/application/call/usecases"
	menuUsecases "github.com/lorenzobigazzi0/cassa/internal/application/menu/usecases"
	orderUsecases "github.com/lorenzobigazzi0/cassa/internal/application/order/usecases"
	printUsecases "github.com/lorenzobigazzi0/cassa/internal/application/printing/usecases"
	userUsecases "github.com/lorenzobigazzi0/cassa/internal/application/user/usecases"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/id"
	"github.com/lorenzobigazzi0/cassa/internal/shared/services/sanitizer"
)

type allUseCases struct {
	loginUC        *userUsecases.LoginUseCase
	getMeUC        *userUsecases.GetMeUseCase
	listMenuUC     *menuUsecases.ListMenuUseCase
	createOrderUC  *orderUsecases.CreateOrderUseCase
	markItemDoneUC *orderUsecases.MarkItemDoneUseCase
	listOrdersUC   *orderUsecases.ListOrdersUseCase
	getOrderUC     *orderUsecases.GetOrderUseCase
	printOrderUC   *printUsecases.PrintOrderUseCase
	createCallUC   *callUsecases.CreateCallUseCase
	ackCallUC      *callUsecases.AckCallUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	tx := db.NewTransactionManager(c.db)
	clean := sanitizer.NewTextSanitizer()

	return &allUseCases{
		loginUC:    userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, c.log.Named("login")),
		getMeUC:    userUsecases.NewGetMeUseCase(r.userRepo, c.log),
		listMenuUC: menuUsecases.NewListMenuUseCase(r.menuRepo, c.log),
		createOrderUC: orderUsecases.NewCreateOrderUseCase(
			r.tableRepo, r.menuRepo, r.orderRepo,
			id.NewNumericCodeGenerator(id.PublicCodeLength),
			tx, c.registry, clean, c.log.Named("orders"),
		),
		markItemDoneUC: orderUsecases.NewMarkItemDoneUseCase(r.orderRepo, tx, c.registry, c.log.Named("orders")),
		listOrdersUC:   orderUsecases.NewListOrdersUseCase(r.orderRepo, c.log),
		getOrderUC:     orderUsecases.NewGetOrderUseCase(r.orderRepo, c.log),
		printOrderUC: printUsecases.NewPrintOrderUseCase(
			r.orderRepo, r.printerRepo, r.jobRepo, c.adapters,
			tx, c.registry, c.cfg.Printing.DefaultPrinter, c.log.Named("printing"),
		),
		createCallUC: callUsecases.NewCreateCallUseCase(
			r.callRepo, r.userRepo, r.tableRepo, r.orderRepo,
			c.registry, clean, c.log.Named("calls"),
		),
		ackCallUC: callUsecases.NewAckCallUseCase(r.callRepo, c.registry, c.log.Named("calls")),
	}
}
