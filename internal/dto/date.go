package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/internship-management-api/internal/constants"
)

// ParseDate parses a calendar date sent by a client. Both YYYY-MM-DD and RFC 3339
// timestamps are accepted; nil or blank input yields nil.
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	raw := strings.TrimSpace(*value)
	if t, err := time.Parse(constants.DateLayout, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", raw)
}

// FormatDate renders a date as YYYY-MM-DD, or nil when unset.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(constants.DateLayout)
	return &s
}
