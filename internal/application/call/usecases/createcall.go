package usecases

import (
	"context"
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/application/call/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/domain/table"
	"github.com/lorenzobigazzi0/cassa/internal/domain/user"
	"github.com/lorenzobigazzi0/cassa/internal/shared/errors"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
	"github.com/lorenzobigazzi0/cassa/internal/shared/services/sanitizer"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils"
	"github.com/lorenzobigazzi0/cassa/internal/shared/utils/logutil"
)

type CreateCallExecutor interface {
	Execute(ctx context.Context, cmd CreateCallCommand) (*events.CallSnapshot, error)
}

type AckCallExecutor interface {
	Execute(ctx context.Context, cmd AckCallCommand) (*events.CallSnapshot, error)
}

type CreateCallCommand struct {
	CallType      string  `validate:"required,oneof=CALL_WAITER CALL_BARMAN"`
	FromUserID    uint    `validate:"required"`
	ToUserID      *uint   `validate:"omitempty,min=1"`
	TableNumber   *int    `validate:"omitempty,min=1,max=500"`
	OrderPublicID *string `validate:"omitempty,max=16"`
	Message       *string `validate:"omitempty,max=500"`
}

type CreateCallUseCase struct {
	callRepo  call.Repository
	userRepo  user.Repository
	tableRepo table.Repository
	orderRepo order.Repository
	publisher events.Publisher
	sanitizer sanitizer.TextSanitizer
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateCallUseCase(
	callRepo call.Repository,
	userRepo user.Repository,
	tableRepo table.Repository,
	orderRepo order.Repository,
	publisher events.Publisher,
	sanitizer sanitizer.TextSanitizer,
	logger logger.Interface,
) *CreateCallUseCase {
	return &CreateCallUseCase{
		callRepo:  callRepo,
		userRepo:  userRepo,
		tableRepo: tableRepo,
		orderRepo: orderRepo,
		publisher: publisher,
		sanitizer: sanitizer,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *CreateCallUseCase) Execute(ctx context.Context, cmd CreateCallCommand) (*events.CallSnapshot, error) {
	uc.logger.Infow("executing create call use case", "call_type", cmd.CallType, "from_user_id", cmd.FromUserID)

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create call command", "error", err)
		return nil, err
	}

	toUserID, err := uc.resolveUser(ctx, cmd.ToUserID)
	if err != nil {
		return nil, err
	}
	tableID, err := uc.resolveTable(ctx, cmd.TableNumber)
	if err != nil {
		return nil, err
	}
	orderID, err := uc.resolveOrder(ctx, cmd.OrderPublicID)
	if err != nil {
		return nil, err
	}

	message := uc.sanitizer.CleanOptional(cmd.Message)
	callType := call.CallType(cmd.CallType)

	c, err := call.NewCall(callType, cmd.FromUserID, toUserID, tableID, orderID, message, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.callRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to save call", "error", err)
		return nil, err
	}

	snapshot := dto.ToCallSnapshot(c)
	channels := call.RouteChannels(callType)
	uc.publisher.PublishMany(channels, events.NewCallCreated(snapshot))

	logFields := []interface{}{"call_id", c.ID(), "call_type", callType, "channels", channels}
	if message != nil {
		logFields = append(logFields, "message", logutil.TruncateForLog(*message, 40))
	}
	uc.logger.Infow("call created successfully", logFields...)

	return snapshot, nil
}

// Optional references that do not resolve are stored as absent.

func (uc *CreateCallUseCase) resolveUser(ctx context.Context, id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	u, err := uc.userRepo.GetByID(ctx, *id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Debugw("call target user not found, storing without it", "user_id", *id)
			return nil, nil
		}
		return nil, err
	}
	userID := u.ID()
	return &userID, nil
}

func (uc *CreateCallUseCase) resolveTable(ctx context.Context, number *int) (*uint, error) {
	if number == nil {
		return nil, nil
	}
	t, err := uc.tableRepo.FindByNumber(ctx, *number)
	if err != nil || t == nil {
		return nil, err
	}
	tableID := t.ID()
	return &tableID, nil
}

func (uc *CreateCallUseCase) resolveOrder(ctx context.Context, publicID *string) (*uint, error) {
	if publicID == nil || *publicID == "" {
		return nil, nil
	}
	o, err := uc.orderRepo.GetByPublicID(ctx, *publicID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	orderID := o.ID()
	return &orderID, nil
}
