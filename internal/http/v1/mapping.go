package v1

import (
	"github.com/alnoi/pr-velocity-service/internal/domain"
)

func toAPIReport(r domain.Report) Report {
	reviewers := make([]TopReviewer, 0, len(r.TopReviewers))
	for _, tr := range r.TopReviewers {
		reviewers = append(reviewers, TopReviewer{
			User:      tr.Login,
			Approvals: tr.Approvals,
			Reviews:   tr.Reviews,
			AvatarUrl: tr.AvatarURL,
		})
	}

	return Report{
		TotalPRs:             r.TotalPRs,
		MergedPRs:            r.MergedPRs,
		DeclinedPRs:          r.DeclinedPRs,
		OpenPRs:              r.OpenPRs,
		UnclassifiedPRs:      r.UnclassifiedPRs,
		AvgOpenPrAge:         r.AvgOpenPRAge,
		AvgTimeToMerge:       r.AvgTimeToMerge,
		AvgLinesChanged:      r.AvgLinesChanged,
		AvgReviewsPerPR:      r.AvgReviewsPerPR,
		AvgTimeToFirstReview: r.AvgTimeToFirstReview,
		TotalApprovals:       r.TotalApprovals,
		PrsWithNoReviews:     r.PRsWithNoReviews,
		PrsWithNoApprovals:   r.PRsWithNoApprovals,
		TopReviewers:         reviewers,
	}
}
