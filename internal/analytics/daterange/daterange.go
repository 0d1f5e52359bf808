// Package daterange turns report range selectors into inclusive time windows and
// the buckets a report groups by.
package daterange

import (
	"regexp"
	"strings"
	"time"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

type Selector string

const (
	ThisMonth  Selector = "thisMonth"
	LastMonth  Selector = "lastMonth"
	Last30Days Selector = "last30days"
	ThisYear   Selector = "thisYear"
	Custom     Selector = "custom"
)

const (
	isoLayout     = "2006-01-02"
	dayLabel      = "2006-01-02"
	monthLabel    = "Jan"
	lastNanoOfDay = 999 * int(time.Millisecond)
)

var (
	customLayouts = []string{isoLayout, "01/02/2006", "1/2/2006"}
	strictPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Range is an inclusive window [Start, End] in the reporting location.
type Range struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

// Contains reports whether Start <= t <= End.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// UTC returns the bounds in UTC, the form the ledger stores.
func (r Range) UTC() (time.Time, time.Time) {
	return r.Start.UTC(), r.End.UTC()
}

// StartDate and EndDate render the calendar days of the window.
func (r Range) StartDate() string { return r.Start.Format(isoLayout) }
func (r Range) EndDate() string   { return r.End.Format(isoLayout) }

// LabelFor returns the bucket label t falls in.
func (r Range) LabelFor(t time.Time) string {
	t = t.In(r.Start.Location())
	if r.Granularity == GranularityMonth {
		return t.Format(monthLabel)
	}
	return t.Format(dayLabel)
}

// Resolve maps a selector to its window relative to now. An empty selector means thisMonth.
func Resolve(selector, startRaw, endRaw string, now time.Time, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}
	today := startOfDay(now.In(loc))

	switch Selector(strings.TrimSpace(selector)) {
	case "", ThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		return dayRange(first, first.AddDate(0, 1, -1)), nil
	case LastMonth:
		first := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, loc)
		return dayRange(first, first.AddDate(0, 1, -1)), nil
	case Last30Days:
		return dayRange(today.AddDate(0, 0, -30), today), nil
	case ThisYear:
		first := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return Range{
			Start:       first,
			End:         endOfDay(time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, loc)),
			Granularity: GranularityMonth,
		}, nil
	case Custom:
		return resolveCustom(startRaw, endRaw, loc)
	default:
		return Range{}, ErrUnknownSelector
	}
}

func resolveCustom(startRaw, endRaw string, loc *time.Location) (Range, error) {
	startRaw, endRaw = strings.TrimSpace(startRaw), strings.TrimSpace(endRaw)
	if startRaw == "" {
		return Range{}, ErrMissingCustomRange
	}
	if endRaw == "" {
		return Range{}, withField(ErrMissingCustomRange, "endDate")
	}
	start, ok := parseLenient(startRaw, loc)
	if !ok {
		return Range{}, ErrInvalidCustomDate
	}
	end, ok := parseLenient(endRaw, loc)
	if !ok {
		return Range{}, withField(ErrInvalidCustomDate, "endDate")
	}
	if end.Before(start) {
		return Range{}, withField(ErrInvalidCustomDate, "endDate")
	}
	return dayRange(start, end), nil
}

func parseLenient(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range customLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseStrict validates an explicit YYYY-MM-DD pair. Checks run in order: presence,
// format, calendar validity, ordering.
func ParseStrict(startRaw, endRaw string, loc *time.Location) (Range, error) {
	if loc == nil {
		loc = time.UTC
	}
	startRaw, endRaw = strings.TrimSpace(startRaw), strings.TrimSpace(endRaw)
	if startRaw == "" {
		return Range{}, ErrDatesRequired
	}
	if endRaw == "" {
		return Range{}, withField(ErrDatesRequired, "endDate")
	}
	if !strictPattern.MatchString(startRaw) {
		return Range{}, ErrInvalidDateFormat
	}
	if !strictPattern.MatchString(endRaw) {
		return Range{}, withField(ErrInvalidDateFormat, "endDate")
	}
	start, err := time.ParseInLocation(isoLayout, startRaw, loc)
	if err != nil {
		return Range{}, ErrInvalidDateValue
	}
	end, err := time.ParseInLocation(isoLayout, endRaw, loc)
	if err != nil {
		return Range{}, withField(ErrInvalidDateValue, "endDate")
	}
	if end.Before(start) {
		return Range{}, ErrEndBeforeStart
	}
	return dayRange(start, end), nil
}

func dayRange(startDay, endDay time.Time) Range {
	return Range{
		Start:       startOfDay(startDay),
		End:         endOfDay(endDay),
		Granularity: GranularityDay,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, lastNanoOfDay, t.Location())
}
