package service

import (
	"time"

	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/repository/specification"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// paginate clamps the caller-supplied window to sane bounds.
func paginate(limit, offset int) specification.Pagination {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return specification.Pagination{Limit: limit, Offset: offset}
}

// parseTimeRange turns the optional from/to query values into bounds.
// Empty values stay zero, which TimestampBetween treats as open.
func parseTimeRange(from, to string) (time.Time, time.Time, error) {
	var f, t time.Time
	var err error
	if from != "" {
		if f, err = time.Parse(time.RFC3339, from); err != nil {
			return f, t, apperror.NewValidation("from must be an RFC3339 timestamp")
		}
	}
	if to != "" {
		if t, err = time.Parse(time.RFC3339, to); err != nil {
			return f, t, apperror.NewValidation("to must be an RFC3339 timestamp")
		}
	}
	if !f.IsZero() && !t.IsZero() && t.Before(f) {
		return f, t, apperror.NewValidation("to must not be before from")
	}
	return f, t, nil
}
