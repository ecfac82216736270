package github

import (
	"time"

	gh "github.com/google/go-github/v66/github"

	"github.com/alnoi/pr-velocity-service/internal/domain"
)

// isRelevant keeps PRs merged in the window, PRs closed without merge in
// the window and open PRs created in the window.
func isRelevant(pr *gh.PullRequest, window domain.DateRange) bool {
	if mergedAt := timePtr(pr.MergedAt); mergedAt != nil {
		return window.Contains(*mergedAt)
	}

	switch domain.PRState(pr.GetState()) {
	case domain.PRStateOpen:
		return window.Contains(pr.GetCreatedAt().Time)
	case domain.PRStateClosed:
		closedAt := timePtr(pr.ClosedAt)
		return closedAt != nil && window.Contains(*closedAt)
	default:
		return false
	}
}

func toRecord(pr *gh.PullRequest, reviews []*gh.PullRequestReview) domain.PullRequestRecord {
	rec := domain.PullRequestRecord{
		Number:    pr.GetNumber(),
		State:     domain.PRState(pr.GetState()),
		CreatedAt: pr.GetCreatedAt().Time,
		MergedAt:  timePtr(pr.MergedAt),
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
		Reviews:   make([]domain.ReviewRecord, 0, len(reviews)),
	}

	for _, r := range reviews {
		if r == nil {
			continue
		}
		rec.Reviews = append(rec.Reviews, toReview(r))
	}

	return rec
}

func toReview(r *gh.PullRequestReview) domain.ReviewRecord {
	rec := domain.ReviewRecord{
		State:       r.GetState(),
		SubmittedAt: timePtr(r.SubmittedAt),
	}

	if u := r.GetUser(); u != nil && u.GetLogin() != "" {
		rec.Author = &domain.ReviewAuthor{
			Login:     u.GetLogin(),
			AvatarURL: u.AvatarURL,
		}
	}

	return rec
}

func timePtr(ts *gh.Timestamp) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.UTC()
	return &t
}
