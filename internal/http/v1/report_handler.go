package v1

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/alnoi/pr-velocity-service/internal/domain"
	applog "github.com/alnoi/pr-velocity-service/internal/logger"
)

// GET /api/report
func (s *ServerHandler) GetReport(ctx echo.Context, params GetReportParams) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("GetReport called",
		zap.String("repo", params.Repo),
		zap.String("from", params.From),
		zap.String("to", params.To),
	)

	if params.Repo == "" || params.From == "" || params.To == "" {
		log.Warn("invalid data in GetReport")
		resp := newAPIError(
			ErrorResponseErrorCode(domain.ErrorCodeBadRequest),
			"Missing required query params: repo, from, to",
		)
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	repo, err := domain.ParseRepository(params.Repo)
	if err != nil {
		log.Warn("invalid repo in GetReport", zap.Error(err))
		return writeError(ctx, err)
	}

	window, err := domain.ParseDateRange(params.From, params.To)
	if err != nil {
		log.Warn("invalid dates in GetReport", zap.Error(err))
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if s.reportTimeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, s.reportTimeout)
		defer cancel()
	}

	report, err := s.reportUC.GetReport(reqCtx, repo, window)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIReport(report))
}
