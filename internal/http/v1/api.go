package v1

import (
	"github.com/labstack/echo/v4"
)

type ErrorResponseErrorCode string

type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

type TopReviewer struct {
	User      string  `json:"user"`
	Approvals int     `json:"approvals"`
	Reviews   int     `json:"reviews"`
	AvatarUrl *string `json:"avatar_url"`
}

type Report struct {
	TotalPRs        int `json:"totalPRs"`
	MergedPRs       int `json:"mergedPRs"`
	DeclinedPRs     int `json:"declinedPRs"`
	OpenPRs         int `json:"openPRs"`
	UnclassifiedPRs int `json:"unclassifiedPRs"`

	AvgOpenPrAge         string `json:"avgOpenPrAge"`
	AvgTimeToMerge       string `json:"avgTimeToMerge"`
	AvgLinesChanged      string `json:"avgLinesChanged"`
	AvgReviewsPerPR      string `json:"avgReviewsPerPR"`
	AvgTimeToFirstReview string `json:"avgTimeToFirstReview"`

	TotalApprovals     int `json:"totalApprovals"`
	PrsWithNoReviews   int `json:"prsWithNoReviews"`
	PrsWithNoApprovals int `json:"prsWithNoApprovals"`

	TopReviewers []TopReviewer `json:"topReviewers"`
}

// GetReportParams are the query parameters of GET /api/report.
type GetReportParams struct {
	Repo string `query:"repo"`
	From string `query:"from"`
	To   string `query:"to"`
}

type ServerInterface interface {
	// GET /api/report
	GetReport(ctx echo.Context, params GetReportParams) error
}

func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	api := router.Group("/api")

	api.GET("/report", func(ctx echo.Context) error {
		params := GetReportParams{
			Repo: ctx.QueryParam("repo"),
			From: ctx.QueryParam("from"),
			To:   ctx.QueryParam("to"),
		}
		return si.GetReport(ctx, params)
	})
}
