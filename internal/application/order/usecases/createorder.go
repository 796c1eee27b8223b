package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/application/order/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/menu"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/services/sanitizer"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
)

type CreateOrderLine struct {
	MenuItemID uint   `validate:"required"`
	Qty        int    `validate:"min=1,max=50"`
	Note       string `validate:"max=200"`
}

type CreateOrderCommand struct {
	TableNumber int               `validate:"min=1,max=500"`
	WaiterID    uint              `validate:"required"`
	Covers      int               `validate:"min=0,max=50"`
	Apericena   int               `validate:"min=0,max=50"`
	Note        string            `validate:"max=500"`
	Lines       []CreateOrderLine `validate:"required,min=1,dive"`
}

type CreateOrderResult struct {
	Order *events.OrderSnapshot
}

type CreateOrderUseCase struct {
	tableRepo table.Repository
	menuRepo  menu.Repository
	orderRepo order.Repository
	publicIDs order.PublicIDGenerator
	txManager db.Transactor
	publisher events.Publisher
	sanitizer sanitizer.TextSanitizer
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateOrderUseCase(
	tableRepo table.Repository,
	menuRepo menu.Repository,
	orderRepo order.Repository,
	publicIDs order.PublicIDGenerator,
	txManager db.Transactor,
	publisher events.Publisher,
	sanitizer sanitizer.TextSanitizer,
	logger logger.Interface,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		tableRepo: tableRepo,
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		publicIDs: publicIDs,
		txManager: txManager,
		publisher: publisher,
		sanitizer: sanitizer,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	uc.logger.Infow("executing create order use case",
		"table_number", cmd.TableNumber,
		"waiter_id", cmd.WaiterID,
		"lines", len(cmd.Lines),
	)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create order command", "error", err)
		return nil, err
	}

	tbl, err := uc.tableRepo.GetByNumber(ctx, cmd.TableNumber)
	if err != nil {
		uc.logger.Warnw("table lookup failed", "table_number", cmd.TableNumber, "error", err)
		return nil, err
	}

	requested := make([]order.RequestedLine, 0, len(cmd.Lines))
	for _, l := range cmd.Lines {
		requested = append(requested, order.RequestedLine{
			MenuItemID: l.MenuItemID,
			Qty:        l.Qty,
			Note:       uc.sanitizer.Clean(l.Note),
		})
	}

	merged, err := order.Merge(requested)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	ids := order.DistinctMenuIDs(requested)
	catalog, err := uc.menuRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to load menu items", "error", err)
		return nil, err
	}
	if missing, ok := order.FirstMissing(ids, catalog); ok {
		uc.logger.Warnw("order references unknown menu item", "menu_item_id", missing)
		return nil, errors.NewInvalidReferenceError(fmt.Sprintf("menu item %d not found or inactive", missing))
	}

	items, err := order.BuildItems(merged, catalog)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	publicID, err := order.AssignPublicID(ctx, uc.publicIDs, uc.orderRepo.ExistsByPublicID)
	if err != nil {
		uc.logger.Errorw("failed to assign public id", "error", err)
		return nil, err
	}

	now := uc.now()
	newOrder, err := order.NewOrder(
		publicID,
		tbl.ID(),
		cmd.WaiterID,
		cmd.Covers,
		cmd.Apericena,
		uc.sanitizer.CleanOptional(&cmd.Note),
		items,
		now,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}
		tbl.Open(cmd.WaiterID, now)
		return uc.tableRepo.UpdateOpening(txCtx, tbl)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist order", "public_id", publicID, "error", err)
		return nil, err
	}

	view, err := uc.orderRepo.GetView(ctx, publicID)
	if err != nil {
		uc.logger.Errorw("failed to reload order", "public_id", publicID, "error", err)
		return nil, err
	}
	snapshot := dto.ToOrderSnapshot(view)

	uc.publisher.PublishMany(orderCreatedStaff, events.NewOrderCreated(snapshot))
	uc.publisher.Publish(events.ChannelWaiter, events.NewOrderCreated(snapshot))

	uc.logger.Infow("order created successfully",
		"order_id", newOrder.ID(),
		"public_id", publicID,
		"table_number", cmd.TableNumber,
		"items", len(items),
	)

	return &CreateOrderResult{Order: snapshot}, nil
}
