package usecases

import (
	"context"
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/application/call/dto"
	"github.com/lorenzobigazzi0/cassa/internal/domain/call"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

type AckCallCommand struct {
	CallID uint
}

type AckCallUseCase struct {
	callRepo  call.Repository
	publisher events.Publisher
	logger    logger.Interface
	now       func() time.Time
}

func NewAckCallUseCase(callRepo call.Repository, publisher events.Publisher, logger logger.Interface) *AckCallUseCase {
	return &AckCallUseCase{
		callRepo:  callRepo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Execute acknowledges a call. Acking twice is allowed: acked_at moves to
// the later ack and the event is broadcast again.
func (uc *AckCallUseCase) Execute(ctx context.Context, cmd AckCallCommand) (*events.CallSnapshot, error) {
	uc.logger.Infow("executing ack call use case", "call_id", cmd.CallID)

	c, err := uc.callRepo.GetByID(ctx, cmd.CallID)
	if err != nil {
		uc.logger.Warnw("call lookup failed", "call_id", cmd.CallID, "error", err)
		return nil, err
	}

	c.Ack(uc.now())
	if err := uc.callRepo.UpdateAck(ctx, c); err != nil {
		uc.logger.Errorw("failed to ack call", "call_id", cmd.CallID, "error", err)
		return nil, err
	}

	uc.publisher.PublishMany(events.StaffChannels, events.NewCallAcked(c.ID()))

	uc.logger.Infow("call acknowledged", "call_id", c.ID())
	return dto.ToCallSnapshot(c), nil
}
