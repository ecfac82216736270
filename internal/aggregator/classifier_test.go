package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alnoi/pr-velocity-service/internal/domain"
)

func TestClassify_Nil(t *testing.T) {
	p := Classify(nil)

	require.NotNil(t, p.Merged)
	require.NotNil(t, p.Declined)
	require.NotNil(t, p.Open)
	require.Empty(t, p.Merged)
	require.Empty(t, p.Declined)
	require.Empty(t, p.Open)
	require.Zero(t, p.Unclassified)
}

func TestClassify_Rules(t *testing.T) {
	merged := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []domain.PullRequestRecord{
		{Number: 1, State: domain.PRStateOpen},
		{Number: 2, State: domain.PRStateClosed, MergedAt: &merged},
		{Number: 3, State: domain.PRStateClosed},
		{Number: 4, State: domain.PRStateOpen, MergedAt: &merged},
		{Number: 5, State: "draft"},
		{Number: 6, State: domain.PRStateClosed, MergedAt: &time.Time{}},
		{Number: 7, State: domain.PRStateOpen},
	}

	p := Classify(records)

	require.Equal(t, []int{2, 4}, numbers(p.Merged))
	require.Equal(t, []int{3, 6}, numbers(p.Declined))
	require.Equal(t, []int{1, 7}, numbers(p.Open))
	require.Equal(t, 1, p.Unclassified)
}

func TestClassify_IsPartition(t *testing.T) {
	merged := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	states := []domain.PRState{domain.PRStateOpen, domain.PRStateClosed, "unknown", ""}

	var records []domain.PullRequestRecord
	n := 0
	for _, st := range states {
		for _, m := range []*time.Time{nil, &merged} {
			n++
			records = append(records, domain.PullRequestRecord{Number: n, State: st, MergedAt: m})
		}
	}

	p := Classify(records)

	seen := map[int]int{}
	for _, group := range [][]domain.PullRequestRecord{p.Merged, p.Declined, p.Open} {
		for _, pr := range group {
			seen[pr.Number]++
		}
	}
	for num, count := range seen {
		require.Equal(t, 1, count, "record %d in several groups", num)
	}

	classified := len(p.Merged) + len(p.Declined) + len(p.Open)
	require.LessOrEqual(t, classified, len(records))
	require.Equal(t, len(records), classified+p.Unclassified)
}

func numbers(prs []domain.PullRequestRecord) []int {
	res := make([]int, 0, len(prs))
	for _, pr := range prs {
		res = append(res, pr.Number)
	}
	return res
}
