package domain

type TopReviewer struct {
	Login     string
	Approvals int
	Reviews   int
	AvatarURL *string
}

// Report is the aggregate snapshot for one window. Averages are pre-rendered
// with two decimals.
type Report struct {
	TotalPRs        int
	MergedPRs       int
	DeclinedPRs     int
	OpenPRs         int
	UnclassifiedPRs int

	AvgOpenPRAge         string
	AvgTimeToMerge       string
	AvgLinesChanged      string
	AvgReviewsPerPR      string
	AvgTimeToFirstReview string

	TotalApprovals     int
	PRsWithNoReviews   int
	PRsWithNoApprovals int

	TopReviewers []TopReviewer
}
