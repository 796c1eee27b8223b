package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/application/order/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

type MarkItemDoneCommand struct {
	PublicID string
	ItemID   uint
	Done     bool
}

type MarkItemDoneResult struct {
	Order *events.OrderSnapshot
	// BecameReady is true when this toggle moved the order to READY.
	BecameReady bool
}

type MarkItemDoneUseCase struct {
	orderRepo order.Repository
	txManager db.Transactor
	publisher events.Publisher
	logger    logger.Interface
	now       func() time.Time
}

func NewMarkItemDoneUseCase(
	orderRepo order.Repository,
	txManager db.Transactor,
	publisher events.Publisher,
	logger logger.Interface,
) *MarkItemDoneUseCase {
	return &MarkItemDoneUseCase{
		orderRepo: orderRepo,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *MarkItemDoneUseCase) Execute(ctx context.Context, cmd MarkItemDoneCommand) (*MarkItemDoneResult, error) {
	uc.logger.Infow("executing mark item done use case",
		"public_id", cmd.PublicID,
		"item_id", cmd.ItemID,
		"done", cmd.Done,
	)

	becameReady := false
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.GetByPublicID(txCtx, cmd.PublicID)
		if err != nil {
			return err
		}
		if _, ok := o.Item(cmd.ItemID); !ok {
			return errors.NewNotFoundError("order item not found", fmt.Sprintf("item %d is not part of order %s", cmd.ItemID, cmd.PublicID))
		}

		if err := uc.orderRepo.SetItemDone(txCtx, o.ID(), cmd.ItemID, cmd.Done); err != nil {
			return err
		}

		// Readiness is computed from the stored items, not the copy above.
		fresh, err := uc.orderRepo.GetByPublicID(txCtx, cmd.PublicID)
		if err != nil {
			return err
		}
		if fresh.RefreshReadiness(uc.now()) {
			becameReady = true
			return uc.orderRepo.UpdateStatus(txCtx, fresh)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to mark item done", "public_id", cmd.PublicID, "item_id", cmd.ItemID, "error", err)
		return nil, err
	}

	view, err := uc.orderRepo.GetView(ctx, cmd.PublicID)
	if err != nil {
		uc.logger.Errorw("failed to reload order", "public_id", cmd.PublicID, "error", err)
		return nil, err
	}
	snapshot := dto.ToOrderSnapshot(view)

	uc.publisher.PublishMany(events.StaffChannels, events.NewOrderUpdated(snapshot))

	uc.logger.Infow("order item updated",
		"public_id", cmd.PublicID,
		"item_id", cmd.ItemID,
		"done", cmd.Done,
		"status", snapshot.Status,
		"became_ready", becameReady,
	)

	return &MarkItemDoneResult{Order: snapshot, BecameReady: becameReady}, nil
}
