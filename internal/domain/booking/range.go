package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyStay     = errors.New("check-out date must be after check-in date")
	ErrReversedRange = errors.New("end date must not be before start date")
	ErrPastStart     = errors.New("start date cannot be in the past")
	ErrStayTooLong   = errors.New("date range exceeds the maximum stay length")
)

// maxStayDays caps a range at roughly a century. Together with
// maxAmountCents it keeps day-count pricing inside int64.
const maxStayDays = 36600

// RangeMode selects how a date range treats its end boundary.
type RangeMode int

const (
	// HalfOpen ranges exclude the end day: a room's checkout day is free and
	// can be the check-in day of the next stay.
	HalfOpen RangeMode = iota
	// Closed ranges occupy the end day: a venue booked through a date cannot
	// be booked again on that date.
	Closed
)

func (m RangeMode) String() string {
	if m == Closed {
		return "closed"
	}
	return "half-open"
}

// DateRange is a whole-day booking interval. Both bounds are calendar dates
// (midnight UTC); the mode decides whether the end day itself is occupied.
type DateRange struct {
	start time.Time
	end   time.Time
	mode  RangeMode
}

// NewDateRange normalizes both instants to calendar dates and validates the
// ordering rule for the mode: half-open ranges need at least one night
// (start < end), closed ranges allow a single-day booking (start == end).
func NewDateRange(start, end time.Time, mode RangeMode) (DateRange, error) {
	s := toDate(start)
	e := toDate(end)

	switch mode {
	case HalfOpen:
		if !e.After(s) {
			return DateRange{}, ErrEmptyStay
		}
	case Closed:
		if e.Before(s) {
			return DateRange{}, ErrReversedRange
		}
	}

	if e.Sub(s) > maxStayDays*24*time.Hour {
		return DateRange{}, ErrStayTooLong
	}
	return DateRange{start: s, end: e, mode: mode}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }
func (r DateRange) Mode() RangeMode  { return r.mode }

// ValidateNotPast rejects ranges starting before the given calendar date.
// Applied on create and update, never to ranges already in storage.
func (r DateRange) ValidateNotPast(today time.Time) error {
	if r.start.Before(toDate(today)) {
		return ErrPastStart
	}
	return nil
}

// Days returns the billable duration. Half-open counts nights (end - start);
// closed counts occupied days (end - start + 1).
func (r DateRange) Days() int {
	days := int(r.end.Sub(r.start).Hours() / 24)
	if r.mode == Closed {
		days++
	}
	return days
}

// Overlaps reports whether the two ranges share at least one occupied day.
// Half-open: a.start < b.end && a.end > b.start, so ranges touching at a
// boundary do not conflict. Closed: inclusive comparisons, so they do.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.mode == Closed {
		return !r.start.After(other.end) && !r.end.Before(other.start)
	}
	return r.start.Before(other.end) && r.end.After(other.start)
}

func (r DateRange) String() string {
	if r.mode == Closed {
		return fmt.Sprintf("[%s,%s]", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
	}
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

// Conflicts reports whether candidate overlaps any of the existing ranges.
func Conflicts(candidate DateRange, existing []DateRange) bool {
	for _, r := range existing {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}

func toDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
