package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/alnoi/pr-velocity-service/internal/domain"
)

type (
	ReportUseCase interface {
		GetReport(ctx context.Context, repo domain.Repository, window domain.DateRange) (domain.Report, error)
	}

	// PRFetcher supplies pull requests with their reviews for a window.
	PRFetcher interface {
		FetchPRsWithReviews(ctx context.Context, repo domain.Repository, window domain.DateRange) ([]domain.PullRequestRecord, error)
	}
)

var _ ReportUseCase = (*serviceImpl)(nil)

var tracer = otel.Tracer("pr-velocity-service")

const DefaultMaxRangeDays = 180

type serviceImpl struct {
	fetcher      PRFetcher
	now          func() time.Time
	maxRangeDays int
}

type Option func(*serviceImpl)

// WithClock replaces the wall clock used as "now" for open PR ages.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

func WithMaxRangeDays(days int) Option {
	return func(s *serviceImpl) {
		s.maxRangeDays = days
	}
}

func NewService(fetcher PRFetcher, opts ...Option) *serviceImpl {
	s := &serviceImpl{
		fetcher:      fetcher,
		now:          time.Now,
		maxRangeDays: DefaultMaxRangeDays,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
