package aggregator

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alnoi/pr-velocity-service/internal/domain"
)

var t0 = time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	ts := t0.Add(d)
	return &ts
}

func strPtr(s string) *string {
	return &s
}

func review(login, state string, submitted *time.Time) domain.ReviewRecord {
	r := domain.ReviewRecord{State: state, SubmittedAt: submitted}
	if login != "" {
		r.Author = &domain.ReviewAuthor{Login: login}
	}
	return r
}

func requireZeroReport(t *testing.T, r domain.Report) {
	t.Helper()

	require.Zero(t, r.TotalPRs)
	require.Zero(t, r.MergedPRs)
	require.Zero(t, r.DeclinedPRs)
	require.Zero(t, r.OpenPRs)
	require.Zero(t, r.TotalApprovals)
	require.Zero(t, r.PRsWithNoReviews)
	require.Zero(t, r.PRsWithNoApprovals)
	require.Equal(t, "0.00", r.AvgOpenPRAge)
	require.Equal(t, "0.00", r.AvgTimeToMerge)
	require.Equal(t, "0.00", r.AvgLinesChanged)
	require.Equal(t, "0.00", r.AvgReviewsPerPR)
	require.Equal(t, "0.00", r.AvgTimeToFirstReview)
	require.NotNil(t, r.TopReviewers)
	require.Empty(t, r.TopReviewers)
}

func TestGenerateReport_Empty(t *testing.T) {
	requireZeroReport(t, GenerateReport(nil, t0))
	requireZeroReport(t, GenerateReport([]domain.PullRequestRecord{}, t0))
}

func TestGenerateReport_SingleMergedPR(t *testing.T) {
	records := []domain.PullRequestRecord{
		{
			Number:    1,
			State:     domain.PRStateClosed,
			CreatedAt: t0,
			MergedAt:  at(2 * time.Hour),
			Additions: 30,
			Deletions: 10,
			Reviews: []domain.ReviewRecord{
				review("alice", "APPROVED", at(time.Hour)),
				review("bob", "CHANGES_REQUESTED", at(90*time.Minute)),
			},
		},
	}

	r := GenerateReport(records, t0.Add(24*time.Hour))

	require.Equal(t, 1, r.TotalPRs)
	require.Equal(t, 1, r.MergedPRs)
	require.Equal(t, "2.00", r.AvgTimeToMerge)
	require.Equal(t, "40.00", r.AvgLinesChanged)
	require.Equal(t, "2.00", r.AvgReviewsPerPR)
	require.Equal(t, "1.00", r.AvgTimeToFirstReview)
	require.Equal(t, "0.00", r.AvgOpenPRAge)
	require.Equal(t, 1, r.TotalApprovals)
	require.Zero(t, r.PRsWithNoReviews)
	require.Zero(t, r.PRsWithNoApprovals)
	require.Equal(t, []domain.TopReviewer{
		{Login: "alice", Approvals: 1, Reviews: 1},
		{Login: "bob", Approvals: 0, Reviews: 1},
	}, r.TopReviewers)
}

func TestGenerateReport_MergedWithoutReviews(t *testing.T) {
	records := []domain.PullRequestRecord{
		{Number: 1, State: domain.PRStateClosed, CreatedAt: t0, MergedAt: at(4 * time.Hour)},
	}

	r := GenerateReport(records, t0)

	require.Equal(t, 1, r.PRsWithNoReviews)
	require.Equal(t, 1, r.PRsWithNoApprovals)
	require.Equal(t, "0.00", r.AvgTimeToFirstReview)
	require.Equal(t, "0.00", r.AvgReviewsPerPR)
	require.Equal(t, "4.00", r.AvgTimeToMerge)
	require.Empty(t, r.TopReviewers)
}

func TestGenerateReport_DeclinedDoesNotFeedMergedStats(t *testing.T) {
	records := []domain.PullRequestRecord{
		{
			Number:    1,
			State:     domain.PRStateClosed,
			CreatedAt: t0,
			Additions: 500,
			Reviews:   []domain.ReviewRecord{review("carol", "APPROVED", at(time.Hour))},
		},
	}

	r := GenerateReport(records, t0)

	require.Equal(t, 1, r.TotalPRs)
	require.Equal(t, 1, r.DeclinedPRs)
	require.Zero(t, r.MergedPRs)
	require.Equal(t, "0.00", r.AvgTimeToMerge)
	require.Equal(t, "0.00", r.AvgLinesChanged)
	require.Equal(t, "0.00", r.AvgReviewsPerPR)
	require.Zero(t, r.TotalApprovals)
	require.Zero(t, r.PRsWithNoReviews)
	require.Empty(t, r.TopReviewers)
}

func TestGenerateReport_OpenPRAge(t *testing.T) {
	records := []domain.PullRequestRecord{
		{Number: 1, State: domain.PRStateOpen, CreatedAt: t0},
		{Number: 2, State: domain.PRStateOpen, CreatedAt: t0.Add(6 * time.Hour)},
		{Number: 3, State: domain.PRStateOpen},
	}

	r := GenerateReport(records, t0.Add(10*time.Hour))

	require.Equal(t, 3, r.OpenPRs)
	require.Equal(t, "7.00", r.AvgOpenPRAge)
}

func TestGenerateReport_UnclassifiedIsCounted(t *testing.T) {
	records := []domain.PullRequestRecord{
		{Number: 1, State: domain.PRStateOpen, CreatedAt: t0},
		{Number: 2, State: "locked", CreatedAt: t0},
	}

	r := GenerateReport(records, t0)

	require.Equal(t, 2, r.TotalPRs)
	require.Equal(t, 1, r.OpenPRs)
	require.Equal(t, 1, r.UnclassifiedPRs)
	require.LessOrEqual(t, r.MergedPRs+r.DeclinedPRs+r.OpenPRs, r.TotalPRs)
}

func TestGenerateReport_FirstReviewUsesEarliestValidTimestamp(t *testing.T) {
	records := []domain.PullRequestRecord{
		{
			Number:    1,
			State:     domain.PRStateClosed,
			CreatedAt: t0,
			MergedAt:  at(10 * time.Hour),
			Reviews: []domain.ReviewRecord{
				review("a", "COMMENTED", at(5*time.Hour)),
				review("b", "COMMENTED", nil),
				review("c", "APPROVED", at(3*time.Hour)),
				review("d", "COMMENTED", &time.Time{}),
			},
		},
		{
			Number:    2,
			State:     domain.PRStateClosed,
			CreatedAt: t0,
			MergedAt:  at(2 * time.Hour),
			Reviews: []domain.ReviewRecord{
				review("a", "COMMENTED", nil),
			},
		},
	}

	r := GenerateReport(records, t0)

	require.Equal(t, "3.00", r.AvgTimeToFirstReview)
	require.Equal(t, 1, r.PRsWithNoApprovals)
	require.Zero(t, r.PRsWithNoReviews)
	require.Equal(t, "2.50", r.AvgReviewsPerPR)
}

func TestGenerateReport_UnattributedReviews(t *testing.T) {
	records := []domain.PullRequestRecord{
		{
			Number:    1,
			State:     domain.PRStateClosed,
			CreatedAt: t0,
			MergedAt:  at(time.Hour),
			Reviews: []domain.ReviewRecord{
				review("", "APPROVED", at(time.Hour)),
				{State: "APPROVED", Author: &domain.ReviewAuthor{}},
			},
		},
	}

	r := GenerateReport(records, t0)

	require.Equal(t, "2.00", r.AvgReviewsPerPR)
	require.Zero(t, r.TotalApprovals)
	require.Zero(t, r.PRsWithNoApprovals)
	require.Empty(t, r.TopReviewers)
}

func TestGenerateReport_AvatarFirstNonNilWins(t *testing.T) {
	withAvatar := func(login, avatar string) domain.ReviewRecord {
		return domain.ReviewRecord{
			State:  "COMMENTED",
			Author: &domain.ReviewAuthor{Login: login, AvatarURL: strPtr(avatar)},
		}
	}

	records := []domain.PullRequestRecord{
		{
			Number:   1,
			State:    domain.PRStateClosed,
			MergedAt: at(time.Hour),
			Reviews: []domain.ReviewRecord{
				review("alice", "COMMENTED", nil),
				withAvatar("alice", "https://avatars/alice-1"),
				withAvatar("alice", "https://avatars/alice-2"),
			},
		},
	}

	r := GenerateReport(records, t0)

	require.Len(t, r.TopReviewers, 1)
	require.Equal(t, 3, r.TopReviewers[0].Reviews)
	require.NotNil(t, r.TopReviewers[0].AvatarURL)
	require.Equal(t, "https://avatars/alice-1", *r.TopReviewers[0].AvatarURL)
	require.Equal(t, "0.00", r.AvgTimeToMerge)
}

func TestGenerateReport_TopReviewersRanking(t *testing.T) {
	approvalsByLogin := []struct {
		login     string
		approvals int
	}{
		{"r1", 1},
		{"r2", 3},
		{"r3", 1},
		{"r4", 0},
		{"r5", 3},
		{"r6", 2},
		{"r7", 1},
	}

	var reviews []domain.ReviewRecord
	for _, a := range approvalsByLogin {
		reviews = append(reviews, review(a.login, "COMMENTED", nil))
		for i := 0; i < a.approvals; i++ {
			reviews = append(reviews, review(a.login, "APPROVED", nil))
		}
	}

	records := []domain.PullRequestRecord{
		{Number: 1, State: domain.PRStateClosed, CreatedAt: t0, MergedAt: at(time.Hour), Reviews: reviews},
	}

	r := GenerateReport(records, t0)

	require.Len(t, r.TopReviewers, 5)

	got := make([]string, 0, len(r.TopReviewers))
	for _, tr := range r.TopReviewers {
		got = append(got, fmt.Sprintf("%s:%d", tr.Login, tr.Approvals))
	}
	require.Equal(t, []string{"r2:3", "r5:3", "r6:2", "r1:1", "r3:1"}, got)
	require.Equal(t, 11, r.TotalApprovals)
	require.Equal(t, 4, r.TopReviewers[0].Reviews)
}

func TestGenerateReport_IsDeterministic(t *testing.T) {
	records := []domain.PullRequestRecord{
		{Number: 1, State: domain.PRStateOpen, CreatedAt: t0},
		{
			Number:    2,
			State:     domain.PRStateClosed,
			CreatedAt: t0,
			MergedAt:  at(3 * time.Hour),
			Reviews:   []domain.ReviewRecord{review("x", "APPROVED", at(time.Hour))},
		},
	}

	now := t0.Add(48 * time.Hour)
	require.Equal(t, GenerateReport(records, now), GenerateReport(records, now))
}
