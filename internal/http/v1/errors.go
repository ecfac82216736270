package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alnoi/pr-velocity-service/internal/domain"
)

func mapDomainErrorToStatus(code domain.ErrorCode) int {
	switch code {
	case domain.ErrorCodeBadRequest:
		return http.StatusBadRequest
	case domain.ErrorCodeRangeTooLarge:
		return http.StatusBadRequest
	case domain.ErrorCodeRepoNotFound:
		return http.StatusNotFound
	case domain.ErrorCodeRateLimited:
		return http.StatusTooManyRequests
	case domain.ErrorCodeInvalidToken:
		return http.StatusBadGateway
	case domain.ErrorCodeUpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newAPIError(code ErrorResponseErrorCode, msg string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

func writeError(ctx echo.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		resp := newAPIError(ErrorResponseErrorCode("TIMEOUT"), "report generation timed out")
		return ctx.JSON(http.StatusGatewayTimeout, resp)
	}

	var derr *domain.DomainError
	if errors.As(err, &derr) {
		status := mapDomainErrorToStatus(derr.Code)
		resp := newAPIError(ErrorResponseErrorCode(derr.Code), derr.Error())
		return ctx.JSON(status, resp)
	}

	resp := newAPIError(ErrorResponseErrorCode("INTERNAL"), "Failed to fetch report")
	return ctx.JSON(http.StatusInternalServerError, resp)
}
