package domain

import "time"

type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
)

// ReviewStateApproved is the only review state that counts as an approval.
const ReviewStateApproved = "APPROVED"

// PullRequestRecord is a pull request as supplied by the retrieval layer.
// Optional fields are pointers; absent numeric fields are zero.
type PullRequestRecord struct {
	Number    int
	State     PRState
	CreatedAt time.Time
	MergedAt  *time.Time
	Additions int
	Deletions int
	Reviews   []ReviewRecord
}

// IsMerged reports whether a merge timestamp is present.
func (pr PullRequestRecord) IsMerged() bool {
	return pr.MergedAt != nil && !pr.MergedAt.IsZero()
}

func (pr PullRequestRecord) LinesChanged() int {
	return pr.Additions + pr.Deletions
}

type ReviewRecord struct {
	State       string
	SubmittedAt *time.Time
	Author      *ReviewAuthor
}

type ReviewAuthor struct {
	Login     string
	AvatarURL *string
}

// HasSubmittedAt reports whether the review carries a usable timestamp.
func (r ReviewRecord) HasSubmittedAt() bool {
	return r.SubmittedAt != nil && !r.SubmittedAt.IsZero()
}

func (r ReviewRecord) IsApproval() bool {
	return r.State == ReviewStateApproved
}

// AuthorLogin returns the reviewer login, or "" when the review is unattributed.
func (r ReviewRecord) AuthorLogin() string {
	if r.Author == nil {
		return ""
	}
	return r.Author.Login
}
