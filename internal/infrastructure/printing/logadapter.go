package printing

import (
	"context"

	domainprinting "github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// LogAdapter writes tickets to the application log instead of paper.
type LogAdapter struct {
	logger logger.Interface
}

func NewLogAdapter(log logger.Interface) *LogAdapter {
	return &LogAdapter{logger: log.Named("printing.log")}
}

func (a *LogAdapter) Send(_ context.Context, destination, title, text string) domainprinting.Outcome {
	a.logger.Infow("print job",
		"destination", destination,
		"title", title,
		"payload", text,
	)
	return domainprinting.Succeeded()
}
