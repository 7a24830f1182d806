package board

import "time"

// Named window filters accepted by the card listing endpoint. Any other
// value (including an empty one) falls back to the last-7-days window.
const (
	FilterToday     = "today"
	FilterThisMonth = "thisMonth"
	FilterLast7Days = "last7days"
)

// Window is a closed time range used to restrict listed cards by creation
// time. Both ends are inclusive.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the window, inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// WindowForFilter computes the time window for a named filter relative to
// now:
//
//	today     -> [start of yesterday, end of today]
//	thisMonth -> [start of day 30 days ago, end of today]
//	default   -> [start of day 7 days ago, end of today]
//
// The "today" filter reaching back into yesterday looks odd but is the
// behaviour the board frontend was built against.
func WindowForFilter(filter string, now time.Time) Window {
	var from time.Time
	switch filter {
	case FilterToday:
		from = startOfDay(now.AddDate(0, 0, -1))
	case FilterThisMonth:
		from = startOfDay(now.AddDate(0, 0, -30))
	default:
		from = startOfDay(now.AddDate(0, 0, -7))
	}

	return Window{From: from, To: endOfDay(now)}
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
