package domain

import (
	"net/url"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Repository struct {
	Owner string
	Name  string
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository accepts "owner/name" or a github.com URL.
func ParseRepository(raw string) (Repository, error) {
	s := strings.TrimSpace(raw)

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return Repository{}, NewDomainError(ErrorCodeBadRequest, "invalid repository url")
		}
		s = u.Path
	} else {
		s = strings.TrimPrefix(s, "github.com/")
	}

	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, NewDomainError(ErrorCodeBadRequest, "repository must be owner/name")
	}

	return Repository{
		Owner: parts[0],
		Name:  strings.TrimSuffix(parts[1], ".git"),
	}, nil
}

// DateRange is a window of whole calendar days in UTC. Both ends are inclusive.
type DateRange struct {
	From time.Time
	To   time.Time
}

func ParseDateRange(from, to string) (DateRange, error) {
	start, err := time.Parse(DateLayout, from)
	if err != nil {
		return DateRange{}, NewDomainError(ErrorCodeBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	end, err := time.Parse(DateLayout, to)
	if err != nil {
		return DateRange{}, NewDomainError(ErrorCodeBadRequest, "Invalid date format. Use YYYY-MM-DD")
	}

	return DateRange{From: start, To: end}, nil
}

// Days is the number of days between From and To.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours() / 24)
}

// Contains reports whether t falls on any day of the window.
func (r DateRange) Contains(t time.Time) bool {
	end := r.To.AddDate(0, 0, 1)
	return !t.Before(r.From) && t.Before(end)
}
