package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/alnoi/pr-velocity-service/internal/domain"
)

// classifyError maps a failed list call onto a domain error code.
func classifyError(repo domain.Repository, err error) error {
	var (
		rateErr  *gh.RateLimitError
		abuseErr *gh.AbuseRateLimitError
		respErr  *gh.ErrorResponse
	)

	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		return domain.WrapDomainError(domain.ErrorCodeRateLimited,
			"GitHub API rate limit exceeded. Configure GITHUB_TOKEN or wait.", err)
	case errors.As(err, &respErr) && respErr.Response != nil:
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			return domain.WrapDomainError(domain.ErrorCodeRepoNotFound,
				fmt.Sprintf("Repository %q not found. Check the URL or your permissions.", repo.String()), err)
		case http.StatusForbidden, http.StatusTooManyRequests:
			return domain.WrapDomainError(domain.ErrorCodeRateLimited,
				"GitHub API rate limit exceeded. Configure GITHUB_TOKEN or wait.", err)
		case http.StatusUnauthorized:
			return domain.WrapDomainError(domain.ErrorCodeInvalidToken,
				"Invalid GitHub token. Check GITHUB_TOKEN.", err)
		}
	}

	return domain.WrapDomainError(domain.ErrorCodeUpstreamUnavailable, "failed to connect to GitHub", err)
}
