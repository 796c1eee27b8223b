package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/lorenzobigazzi0/cassa/internal/domain/order"
	"github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/db"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

type PrintOrderExecutor interface {
	Execute(ctx context.Context, cmd PrintOrderCommand) (*PrintOrderResult, error)
}

type PrintOrderCommand struct {
	PublicID string
	// PrinterName falls back to the configured default when empty.
	PrinterName string
}

// PrintOrderResult reports the print attempt. A failed transmission is a
// result with OK false, not an error.
type PrintOrderResult struct {
	JobID  uint   `json:"job_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Status string `json:"status"`
}

type PrintOrderUseCase struct {
	orderRepo      order.Repository
	printerRepo    printing.PrinterRepository
	jobRepo        printing.JobRepository
	adapters       printing.AdapterResolver
	txManager      db.Transactor
	publisher      events.Publisher
	defaultPrinter string
	logger         logger.Interface
	now            func() time.Time
}

func NewPrintOrderUseCase(
	orderRepo order.Repository,
	printerRepo printing.PrinterRepository,
	jobRepo printing.JobRepository,
	adapters printing.AdapterResolver,
	txManager db.Transactor,
	publisher events.Publisher,
	defaultPrinter string,
	logger logger.Interface,
) *PrintOrderUseCase {
	return &PrintOrderUseCase{
		orderRepo:      orderRepo,
		printerRepo:    printerRepo,
		jobRepo:        jobRepo,
		adapters:       adapters,
		txManager:      txManager,
		publisher:      publisher,
		defaultPrinter: defaultPrinter,
		logger:         logger,
		now:            time.Now,
	}
}

func (uc *PrintOrderUseCase) Execute(ctx context.Context, cmd PrintOrderCommand) (*PrintOrderResult, error) {
	printerName := strings.TrimSpace(cmd.PrinterName)
	if printerName == "" {
		printerName = uc.defaultPrinter
	}

	uc.logger.Infow("executing print order use case", "public_id", cmd.PublicID, "printer", printerName)

	view, err := uc.orderRepo.GetView(ctx, cmd.PublicID)
	if err != nil {
		uc.logger.Warnw("order lookup failed", "public_id", cmd.PublicID, "error", err)
		return nil, err
	}

	printer, err := uc.printerRepo.GetActiveByName(ctx, printerName)
	if err != nil {
		uc.logger.Warnw("printer lookup failed", "printer", printerName, "error", err)
		return nil, err
	}

	now := uc.now()
	text := printing.FormatTicket(view, now)

	job, err := printing.NewJob(view.Order.ID(), printer.ID(), text, now)
	if err != nil {
		return nil, err
	}
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		uc.logger.Errorw("failed to create print job", "public_id", cmd.PublicID, "error", err)
		return nil, err
	}

	outcome := uc.send(ctx, printer, "Comanda #"+cmd.PublicID, text)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if !outcome.OK {
			job.MarkFailed(outcome.Error)
			return uc.jobRepo.UpdateResult(txCtx, job)
		}

		job.MarkSent(uc.now())
		if err := uc.jobRepo.UpdateResult(txCtx, job); err != nil {
			return err
		}

		// The send may have taken seconds; items or status can have moved since
		// the ticket was formatted.
		current, err := uc.orderRepo.GetByPublicID(txCtx, cmd.PublicID)
		if err != nil {
			return err
		}
		if current.MarkPrinted() {
			return uc.orderRepo.UpdateStatus(txCtx, current)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to record print outcome", "job_id", job.ID(), "error", err)
		return nil, err
	}

	uc.publisher.PublishMany(events.StaffChannels, events.NewPrintJob(cmd.PublicID, outcome.OK, outcome.Error))

	if outcome.OK {
		uc.logger.Infow("ticket printed", "public_id", cmd.PublicID, "printer", printerName, "job_id", job.ID())
	} else {
		uc.logger.Warnw("ticket print failed",
			"public_id", cmd.PublicID,
			"printer", printerName,
			"job_id", job.ID(),
			"error", outcome.Err(),
		)
	}

	return &PrintOrderResult{
		JobID:  job.ID(),
		OK:     outcome.OK,
		Error:  outcome.Error,
		Status: job.Status().String(),
	}, nil
}

// send turns an unresolvable printer kind into a failed outcome.
func (uc *PrintOrderUseCase) send(ctx context.Context, p *printing.Printer, title, text string) printing.Outcome {
	adapter, err := uc.adapters.Resolve(p.Kind())
	if err != nil {
		return printing.Failed(err.Error())
	}
	return adapter.Send(ctx, p.Destination(), title, text)
}
