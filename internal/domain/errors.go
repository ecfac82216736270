package domain

type ErrorCode string

const (
	ErrorCodeBadRequest          ErrorCode = "BAD_REQUEST"
	ErrorCodeRangeTooLarge       ErrorCode = "RANGE_TOO_LARGE"
	ErrorCodeRepoNotFound        ErrorCode = "REPO_NOT_FOUND"
	ErrorCodeRateLimited         ErrorCode = "RATE_LIMITED"
	ErrorCodeInvalidToken        ErrorCode = "INVALID_TOKEN"
	ErrorCodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
)

// DomainError is an error the caller can react to by its Code.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func NewDomainError(code ErrorCode, msg string) *DomainError {
	return &DomainError{Code: code, Message: msg}
}

// WrapDomainError keeps the underlying cause reachable through errors.Unwrap.
func WrapDomainError(code ErrorCode, msg string, err error) *DomainError {
	return &DomainError{Code: code, Message: msg, Err: err}
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
