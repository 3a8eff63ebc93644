package shared

import (
	"fmt"
	"time"

	"realestate-backend/internal/domain/apperr"
)

// DateLayout is the wire format of every calendar date.
const DateLayout = "2006-01-02"

func ParseDate(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, apperr.Invalid(fmt.Sprintf("%s: expected YYYY-MM-DD, got %q", field, s))
	}
	return t, nil
}

// ParseOptionalDate treats nil and "" as absent.
func ParseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FormatDate(t time.Time) string { return t.UTC().Format(DateLayout) }

func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}

// Today truncates t to midnight UTC.
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
