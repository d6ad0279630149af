package pagination

import (
	"net/http"
	"strconv"
)

// Defaults and bounds for the skip/limit window.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params holds the skip/limit window extracted from query strings.
type Params struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// DefaultParams returns the default window.
func DefaultParams() Params {
	return Params{Skip: DefaultSkip, Limit: DefaultLimit}
}

// FieldError names a malformed query parameter and the violated constraint.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return "query parameter '" + e.Field + "' " + e.Message
}

// FromRequest extracts skip/limit parameters from an HTTP request.
// Absent parameters take the defaults; malformed or out-of-range values are
// reported as a FieldError rather than silently ignored.
func FromRequest(r *http.Request) (Params, *FieldError) {
	p := DefaultParams()

	if v := r.URL.Query().Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil || skip < 0 {
			return p, &FieldError{Field: "skip", Message: "must be a non-negative integer"}
		}
		p.Skip = skip
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > MaxLimit {
			return p, &FieldError{Field: "limit", Message: "must be an integer between 1 and 100"}
		}
		p.Limit = limit
	}

	return p, nil
}

// Window returns the [start, end) bounds of the page for a collection of n
// records, clamped so slicing is always safe.
func (p Params) Window(n int) (start, end int) {
	start = p.Skip
	if start > n {
		start = n
	}
	end = start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}
