package printing

import (
	"context"
	"os"
	"os/exec"
	"strings"

	domainprinting "github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

const defaultQueueCommand = "lp"

// QueueAdapter submits tickets to a local print queue through the lp
// command line client. The destination is the queue name.
type QueueAdapter struct {
	command string
	logger  logger.Interface
}

func NewQueueAdapter(command string, log logger.Interface) *QueueAdapter {
	if strings.TrimSpace(command) == "" {
		command = defaultQueueCommand
	}
	return &QueueAdapter{command: command, logger: log.Named("printing.queue")}
}

func (a *QueueAdapter) Send(ctx context.Context, destination, title, text string) domainprinting.Outcome {
	queue := strings.TrimSpace(destination)
	if queue == "" {
		return domainprinting.Failed("print queue name is empty")
	}

	f, err := os.CreateTemp("", "cassa-ticket-*.txt")
	if err != nil {
		return domainprinting.Failed(err.Error())
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return domainprinting.Failed(err.Error())
	}
	if err := f.Close(); err != nil {
		return domainprinting.Failed(err.Error())
	}

	cmd := exec.CommandContext(ctx, a.command, "-d", queue, "-t", title, path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			msg = err.Error()
		}
		a.logger.Warnw("print queue submission failed", "queue", queue, "error", msg)
		return domainprinting.Failed(msg)
	}

	a.logger.Debugw("print queue accepted job", "queue", queue, "output", strings.TrimSpace(string(output)))
	return domainprinting.Succeeded()
}
