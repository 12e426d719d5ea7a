package date

import "fmt"

// Range represents an inclusive range of dates.
//
// A zero From or To means the range is unbounded on that side.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// ParseRange parses optional bounds. An empty string leaves that side unbounded.
func ParseRange(from, to string) (Range, error) {
	var r Range
	var err error
	if from != "" {
		if r.From, err = Parse(from); err != nil {
			return Range{}, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if to != "" {
		if r.To, err = Parse(to); err != nil {
			return Range{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return r, nil
}

// Bounded reports whether the range has both bounds set.
func (r Range) Bounded() bool { return !r.From.IsZero() && !r.To.IsZero() }

// Empty reports whether no date can be contained, that is From is after To.
func (r Range) Empty() bool { return r.Bounded() && r.From.After(r.To) }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

// Days returns the number of days in a bounded range, boundaries included.
// It returns 0 for an empty or unbounded range.
func (r Range) Days() int {
	if !r.Bounded() || r.Empty() {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

func (r Range) String() string {
	from, to := "…", "…"
	if !r.From.IsZero() {
		from = r.From.String()
	}
	if !r.To.IsZero() {
		to = r.To.String()
	}
	return from + " to " + to
}
