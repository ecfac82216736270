package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/alnoi/pr-velocity-service/internal/domain"
	"github.com/alnoi/pr-velocity-service/internal/logger"
	"github.com/alnoi/pr-velocity-service/internal/metrics"
)

const pageSize = 100

var tracer = otel.Tracer("pr-velocity-service")

// Client fetches pull requests and their reviews from the GitHub REST API.
type Client struct {
	gh *gh.Client
}

// NewClient builds a client. An empty token means unauthenticated access;
// an empty apiURL means api.github.com.
func NewClient(httpClient *http.Client, token, apiURL string) (*Client, error) {
	c := gh.NewClient(httpClient)
	if token != "" {
		c = c.WithAuthToken(token)
	}

	if apiURL != "" {
		u, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url %q: %w", apiURL, err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		c.BaseURL = u
	}

	return &Client{gh: c}, nil
}

// FetchPRsWithReviews returns the pull requests relevant to window with
// their reviews attached. Only the most recently updated page is read.
func (c *Client) FetchPRsWithReviews(
	ctx context.Context,
	repo domain.Repository,
	window domain.DateRange,
) ([]domain.PullRequestRecord, error) {
	ctx, span := tracer.Start(
		ctx,
		"GitHub.FetchPRsWithReviews",
		trace.WithAttributes(attribute.String("github.repo", repo.String())),
	)
	defer span.End()

	log := logger.FromContext(ctx)
	log.Info("fetching pull requests",
		zap.String("repo", repo.String()),
		zap.String("from", window.From.Format(domain.DateLayout)),
		zap.String("to", window.To.Format(domain.DateLayout)),
	)

	prs, err := c.listPullRequests(ctx, repo)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	relevant := make([]*gh.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if isRelevant(pr, window) {
			relevant = append(relevant, pr)
		}
	}

	log.Info("found relevant pull requests",
		zap.Int("listed", len(prs)),
		zap.Int("relevant", len(relevant)),
	)

	records := make([]domain.PullRequestRecord, 0, len(relevant))
	for _, pr := range relevant {
		reviews, err := c.listReviews(ctx, repo, pr.GetNumber())
		if err != nil {
			if ctx.Err() != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, ctx.Err()
			}
			log.Warn("failed to fetch reviews, treating as none",
				zap.Int("pr_number", pr.GetNumber()),
				zap.Error(err),
			)
		}

		rec := toRecord(pr, reviews)

		// The list endpoint omits line counts; only merged PRs need them.
		if rec.IsMerged() {
			detail, err := c.getPullRequest(ctx, repo, pr.GetNumber())
			if err != nil {
				if ctx.Err() != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
					return nil, ctx.Err()
				}
				log.Warn("failed to fetch pull request details, line counts left at zero",
					zap.Int("pr_number", pr.GetNumber()),
					zap.Error(err),
				)
			} else {
				rec.Additions = detail.GetAdditions()
				rec.Deletions = detail.GetDeletions()
			}
		}

		records = append(records, rec)
	}

	span.SetAttributes(attribute.Int("github.prs", len(records)))

	return records, nil
}

func (c *Client) listPullRequests(ctx context.Context, repo domain.Repository) ([]*gh.PullRequest, error) {
	opts := &gh.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: pageSize},
	}

	prs, _, err := c.gh.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		metrics.GitHubRequestsTotal.WithLabelValues("pulls", "error").Inc()
		return nil, classifyError(repo, err)
	}
	metrics.GitHubRequestsTotal.WithLabelValues("pulls", "ok").Inc()

	return prs, nil
}

func (c *Client) listReviews(ctx context.Context, repo domain.Repository, number int) ([]*gh.PullRequestReview, error) {
	reviews, _, err := c.gh.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, number,
		&gh.ListOptions{PerPage: pageSize})
	if err != nil {
		metrics.GitHubRequestsTotal.WithLabelValues("reviews", "error").Inc()
		return nil, err
	}
	metrics.GitHubRequestsTotal.WithLabelValues("reviews", "ok").Inc()

	return reviews, nil
}

func (c *Client) getPullRequest(ctx context.Context, repo domain.Repository, number int) (*gh.PullRequest, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		metrics.GitHubRequestsTotal.WithLabelValues("pull", "error").Inc()
		return nil, err
	}
	metrics.GitHubRequestsTotal.WithLabelValues("pull", "ok").Inc()

	return pr, nil
}
