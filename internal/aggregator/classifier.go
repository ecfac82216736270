package aggregator

import "github.com/alnoi/pr-velocity-service/internal/domain"

// Partition holds records split by status. Relative input order is kept.
type Partition struct {
	Merged   []domain.PullRequestRecord
	Declined []domain.PullRequestRecord
	Open     []domain.PullRequestRecord

	// Unclassified counts records that matched no rule and were dropped.
	Unclassified int
}

// Classify splits records into merged, declined and open groups.
// A merge timestamp wins over state; records that are neither open nor
// closed and have no merge timestamp are dropped.
func Classify(records []domain.PullRequestRecord) Partition {
	p := Partition{
		Merged:   []domain.PullRequestRecord{},
		Declined: []domain.PullRequestRecord{},
		Open:     []domain.PullRequestRecord{},
	}

	for _, pr := range records {
		switch {
		case pr.IsMerged():
			p.Merged = append(p.Merged, pr)
		case pr.State == domain.PRStateClosed:
			p.Declined = append(p.Declined, pr)
		case pr.State == domain.PRStateOpen:
			p.Open = append(p.Open, pr)
		default:
			p.Unclassified++
		}
	}

	return p
}
