// Package pagination parses and applies the range parameters accepted by list endpoints.
//
// A list request may carry either a count (first N items) or an inclusive start/end
// index pair. Parsing is pure: it never touches storage.
package pagination

import (
	"math"
	"net/url"
	"strconv"

	"qa-forum/internal/domain/entity"
)

// Query holds the raw range parameters exactly as they appeared in the query string.
// A nil field means the parameter was absent.
type Query struct {
	Count *string
	Start *string
	End   *string
}

// FromValues extracts the range parameters from a query string without validating them.
// Validation is deferred to Parse so callers can resolve path parameters first.
func FromValues(values url.Values) Query {
	return Query{
		Count: lookup(values, "count"),
		Start: lookup(values, "start"),
		End:   lookup(values, "end"),
	}
}

func lookup(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

// MaxLimit caps the number of items a single range can select. Larger counts and
// windows are clamped to it; no collection can hold more items than this.
const MaxLimit = math.MaxInt32

// Range is a validated offset/limit window. The zero value selects every item.
type Range struct {
	Offset int
	Limit  int
}

// All reports whether the range selects the whole collection.
func (r Range) All() bool {
	return r.Limit == 0
}

// Mode names how the range was expressed. It is used as a metric label.
func (r Range) Mode() string {
	switch {
	case r.All():
		return "all"
	case r.Offset == 0:
		return "head"
	default:
		return "window"
	}
}

// Parse validates the query and converts it into a Range.
//
// Rules:
//   - count, when present, must be an integer > 0 and yields offset=0, limit=count
//   - start and end must be supplied together, be integers, start >= 0 and start <= end;
//     they yield offset=start, limit=end-start+1
//   - when both forms are present the start/end pair wins, count is still validated
//   - a limit above MaxLimit is clamped to MaxLimit
//   - no parameters yields the zero Range (everything)
//
// Every failure is an *entity.ValidationError.
func (q Query) Parse() (Range, error) {
	var count int
	if q.Count != nil {
		n, err := strconv.Atoi(*q.Count)
		if err != nil {
			return Range{}, &entity.ValidationError{Field: "count", Message: "must be an integer"}
		}
		if n <= 0 {
			return Range{}, &entity.ValidationError{Field: "count", Message: "must be a positive integer"}
		}
		count = min(n, MaxLimit)
	}

	switch {
	case q.Start != nil && q.End != nil:
		start, err := strconv.Atoi(*q.Start)
		if err != nil {
			return Range{}, &entity.ValidationError{Field: "start", Message: "must be an integer"}
		}
		end, err := strconv.Atoi(*q.End)
		if err != nil {
			return Range{}, &entity.ValidationError{Field: "end", Message: "must be an integer"}
		}
		if start < 0 {
			return Range{}, &entity.ValidationError{Field: "start", Message: "must not be negative"}
		}
		if start > end {
			return Range{}, &entity.ValidationError{Field: "end", Message: "must not be less than start"}
		}
		return Range{Offset: start, Limit: clampSpan(end - start)}, nil
	case q.Start != nil:
		return Range{}, &entity.ValidationError{Field: "end", Message: "is required with start"}
	case q.End != nil:
		return Range{}, &entity.ValidationError{Field: "start", Message: "is required with end"}
	}

	if q.Count != nil {
		return Range{Offset: 0, Limit: count}, nil
	}
	return Range{}, nil
}

// clampSpan converts the distance between an inclusive start and end into a limit.
// span is never negative, so only the upper bound needs care.
func clampSpan(span int) int {
	if span >= MaxLimit {
		return MaxLimit
	}
	return span + 1
}
