package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReportsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reports_generated_total",
		Help: "Total number of generated velocity reports",
	})

	ReportFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_failures_total",
		Help: "Total number of failed report requests by error code",
	}, []string{"code"})

	PRsAggregatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prs_aggregated_total",
		Help: "Total number of pull requests aggregated by category",
	}, []string{"category"})

	GitHubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "github_requests_total",
		Help: "Total number of GitHub API requests by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
)
