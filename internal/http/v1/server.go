package v1

import (
	"time"

	"github.com/alnoi/pr-velocity-service/internal/usecase"
)

var _ (ServerInterface) = &ServerHandler{}

// ServerHandler implements ServerInterface on top of the use cases.
type ServerHandler struct {
	reportUC      usecase.ReportUseCase
	reportTimeout time.Duration
}

// NewServerHandler builds the HTTP layer. A non-positive timeout disables
// the per-request deadline.
func NewServerHandler(reportUC usecase.ReportUseCase, reportTimeout time.Duration) *ServerHandler {
	return &ServerHandler{
		reportUC:      reportUC,
		reportTimeout: reportTimeout,
	}
}
