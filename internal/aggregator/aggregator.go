package aggregator

import (
	"slices"
	"time"

	"github.com/alnoi/pr-velocity-service/internal/domain"
)

const topReviewersLimit = 5

type reviewerStat struct {
	login     string
	approvals int
	total     int
	avatarURL *string
}

// reviewAccumulator collects review statistics over merged PRs for a single
// report. Reviewers are kept in first-seen order.
type reviewAccumulator struct {
	totalReviews       int
	approvals          int
	prsWithNoReviews   int
	prsWithNoApprovals int
	timeToFirstReview  []float64

	reviewers []*reviewerStat
	index     map[string]int
}

func newReviewAccumulator() *reviewAccumulator {
	return &reviewAccumulator{
		timeToFirstReview: []float64{},
		index:             make(map[string]int),
	}
}

func (a *reviewAccumulator) add(pr domain.PullRequestRecord) {
	reviews := pr.Reviews
	a.totalReviews += len(reviews)

	if len(reviews) == 0 {
		a.prsWithNoReviews++
		a.prsWithNoApprovals++
		return
	}

	prApprovals := 0
	for _, r := range reviews {
		if r.IsApproval() {
			prApprovals++
		}
	}
	if prApprovals == 0 {
		a.prsWithNoApprovals++
	}

	if first, ok := earliestSubmission(reviews); ok && !pr.CreatedAt.IsZero() {
		a.timeToFirstReview = append(a.timeToFirstReview, hoursBetween(pr.CreatedAt, first))
	}

	for _, r := range reviews {
		login := r.AuthorLogin()
		if login == "" {
			continue
		}

		stat := a.reviewer(login)
		stat.total++
		if stat.avatarURL == nil && r.Author.AvatarURL != nil {
			stat.avatarURL = r.Author.AvatarURL
		}
		if r.IsApproval() {
			stat.approvals++
			a.approvals++
		}
	}
}

func (a *reviewAccumulator) reviewer(login string) *reviewerStat {
	if i, ok := a.index[login]; ok {
		return a.reviewers[i]
	}

	stat := &reviewerStat{login: login}
	a.index[login] = len(a.reviewers)
	a.reviewers = append(a.reviewers, stat)

	return stat
}

func (a *reviewAccumulator) topReviewers(limit int) []domain.TopReviewer {
	ranked := slices.Clone(a.reviewers)
	slices.SortStableFunc(ranked, func(x, y *reviewerStat) int {
		return y.approvals - x.approvals
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]domain.TopReviewer, 0, len(ranked))
	for _, s := range ranked {
		res = append(res, domain.TopReviewer{
			Login:     s.login,
			Approvals: s.approvals,
			Reviews:   s.total,
			AvatarURL: s.avatarURL,
		})
	}

	return res
}

func earliestSubmission(reviews []domain.ReviewRecord) (time.Time, bool) {
	var (
		earliest time.Time
		found    bool
	)

	for _, r := range reviews {
		if !r.HasSubmittedAt() {
			continue
		}
		if !found || r.SubmittedAt.Before(earliest) {
			earliest = *r.SubmittedAt
			found = true
		}
	}

	return earliest, found
}

func hoursBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours()
}

// EmptyReport is the report for a window without pull requests.
func EmptyReport() domain.Report {
	return domain.Report{
		AvgOpenPRAge:         FormatStat(0),
		AvgTimeToMerge:       FormatStat(0),
		AvgLinesChanged:      FormatStat(0),
		AvgReviewsPerPR:      FormatStat(0),
		AvgTimeToFirstReview: FormatStat(0),
		TopReviewers:         []domain.TopReviewer{},
	}
}

// GenerateReport computes velocity statistics for records. now is the
// reference point for the age of open PRs.
func GenerateReport(records []domain.PullRequestRecord, now time.Time) domain.Report {
	if len(records) == 0 {
		return EmptyReport()
	}

	p := Classify(records)

	openAges := make([]float64, 0, len(p.Open))
	for _, pr := range p.Open {
		if pr.CreatedAt.IsZero() {
			continue
		}
		openAges = append(openAges, hoursBetween(pr.CreatedAt, now))
	}

	mergeTimes := make([]float64, 0, len(p.Merged))
	linesChanged := make([]float64, 0, len(p.Merged))
	reviews := newReviewAccumulator()

	for _, pr := range p.Merged {
		if !pr.CreatedAt.IsZero() {
			mergeTimes = append(mergeTimes, hoursBetween(pr.CreatedAt, *pr.MergedAt))
		}
		linesChanged = append(linesChanged, float64(pr.LinesChanged()))
		reviews.add(pr)
	}

	var avgReviewsPerPR float64
	if len(p.Merged) > 0 {
		avgReviewsPerPR = float64(reviews.totalReviews) / float64(len(p.Merged))
	}

	return domain.Report{
		TotalPRs:        len(records),
		MergedPRs:       len(p.Merged),
		DeclinedPRs:     len(p.Declined),
		OpenPRs:         len(p.Open),
		UnclassifiedPRs: p.Unclassified,

		AvgOpenPRAge:         FormatStat(SafeAverage(openAges)),
		AvgTimeToMerge:       FormatStat(SafeAverage(mergeTimes)),
		AvgLinesChanged:      FormatStat(SafeAverage(linesChanged)),
		AvgReviewsPerPR:      FormatStat(avgReviewsPerPR),
		AvgTimeToFirstReview: FormatStat(SafeAverage(reviews.timeToFirstReview)),

		TotalApprovals:     reviews.approvals,
		PRsWithNoReviews:   reviews.prsWithNoReviews,
		PRsWithNoApprovals: reviews.prsWithNoApprovals,

		TopReviewers: reviews.topReviewers(topReviewersLimit),
	}
}
