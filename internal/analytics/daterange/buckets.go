package daterange

import "time"

// Bucket is one chart or report row slot.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && !t.After(b.End)
}

// Buckets lists every candidate bucket of r in chronological order, including empty ones.
func Buckets(r Range) []Bucket {
	if r.End.Before(r.Start) {
		return nil
	}
	if r.Granularity == GranularityMonth {
		return monthBuckets(r)
	}
	return dayBuckets(r)
}

func dayBuckets(r Range) []Bucket {
	var out []Bucket
	for day := startOfDay(r.Start); !day.After(r.End); day = day.AddDate(0, 0, 1) {
		out = append(out, Bucket{
			Label: day.Format(dayLabel),
			Start: day,
			End:   endOfDay(day),
		})
	}
	return out
}

func monthBuckets(r Range) []Bucket {
	var out []Bucket
	loc := r.Start.Location()
	for month := time.Date(r.Start.Year(), r.Start.Month(), 1, 0, 0, 0, 0, loc); !month.After(r.End); month = month.AddDate(0, 1, 0) {
		out = append(out, Bucket{
			Label: month.Format(monthLabel),
			Start: month,
			End:   endOfDay(month.AddDate(0, 1, -1)),
		})
	}
	return out
}
