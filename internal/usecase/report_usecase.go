package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/alnoi/pr-velocity-service/internal/aggregator"
	"github.com/alnoi/pr-velocity-service/internal/domain"
	"github.com/alnoi/pr-velocity-service/internal/logger"
	"github.com/alnoi/pr-velocity-service/internal/metrics"
)

func (s *serviceImpl) GetReport(ctx context.Context, repo domain.Repository, window domain.DateRange) (domain.Report, error) {
	ctx, span := tracer.Start(
		ctx,
		"Service.GetReport",
		trace.WithAttributes(
			attribute.String("report.repo", repo.String()),
			attribute.String("report.from", window.From.Format(domain.DateLayout)),
			attribute.String("report.to", window.To.Format(domain.DateLayout)),
		),
	)
	defer span.End()

	if err := s.validateWindow(window); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "invalid report window",
			zap.Int("days", window.Days()),
		)
		recordFailure(err)
		return domain.Report{}, err
	}

	records, err := s.fetcher.FetchPRsWithReviews(ctx, repo, window)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to fetch pull requests",
			zap.String("repo", repo.String()),
		)
		recordFailure(err)
		return domain.Report{}, fmt.Errorf("fetch pull requests: %w", err)
	}

	report := aggregator.GenerateReport(records, s.now())

	span.SetAttributes(
		attribute.Int("report.prs_total", report.TotalPRs),
		attribute.Int("report.prs_merged", report.MergedPRs),
		attribute.Int("report.prs_unclassified", report.UnclassifiedPRs),
	)

	if report.UnclassifiedPRs > 0 {
		logger.FromContext(ctx).Warn("pull requests matched no category",
			zap.String("repo", repo.String()),
			zap.Int("count", report.UnclassifiedPRs),
		)
	}

	metrics.ReportsGeneratedTotal.Inc()
	metrics.PRsAggregatedTotal.WithLabelValues("merged").Add(float64(report.MergedPRs))
	metrics.PRsAggregatedTotal.WithLabelValues("declined").Add(float64(report.DeclinedPRs))
	metrics.PRsAggregatedTotal.WithLabelValues("open").Add(float64(report.OpenPRs))
	metrics.PRsAggregatedTotal.WithLabelValues("unclassified").Add(float64(report.UnclassifiedPRs))

	return report, nil
}

func (s *serviceImpl) validateWindow(window domain.DateRange) error {
	if window.To.Before(window.From) {
		return domain.NewDomainError(domain.ErrorCodeBadRequest, "from must not be after to")
	}

	if window.Days() > s.maxRangeDays {
		return domain.NewDomainError(domain.ErrorCodeRangeTooLarge,
			fmt.Sprintf("Date range too large. Maximum allowed is %d days.", s.maxRangeDays))
	}

	return nil
}

func recordFailure(err error) {
	code := "INTERNAL"

	var derr *domain.DomainError
	if errors.As(err, &derr) {
		code = string(derr.Code)
	}

	metrics.ReportFailuresTotal.WithLabelValues(code).Inc()
}
