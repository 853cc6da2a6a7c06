// Package progress holds the per-project ledger of daily word-count samples
// and its derived readings.
package progress

import "sort"

// Record is one observed sample: the cumulative document word count on a
// given date. Words is a running total, not a daily delta.
type Record struct {
	Date  Date `json:"date"`
	Words int  `json:"words"`
}

// Point is one entry of the derived daily series: the cumulative count plus
// the non-negative delta against the chronological predecessor.
type Point struct {
	Date  Date `json:"date"`
	Words int  `json:"words"`
	Delta int  `json:"delta"`
}

// Ledger is a project's progress history, keyed by date with at most one
// record per date. It is not kept sorted on write; reads sort as needed.
type Ledger []Record

// Upsert records the cumulative word count for date. An existing record for
// the same date is replaced in place, so applying the same sample twice
// leaves the ledger unchanged and the ledger never grows for a known date.
func (l *Ledger) Upsert(date Date, words int) {
	for i := range *l {
		if (*l)[i].Date == date {
			(*l)[i].Words = words
			return
		}
	}
	*l = append(*l, Record{Date: date, Words: words})
}

// Get returns the record for date, if present.
func (l Ledger) Get(date Date) (Record, bool) {
	for _, r := range l {
		if r.Date == date {
			return r, true
		}
	}
	return Record{}, false
}

// LatestTotal returns the cumulative word count of the most recent sample,
// or 0 for an empty ledger.
func (l Ledger) LatestTotal() int {
	total := 0
	var latest Date
	for _, r := range l {
		if r.Date > latest {
			latest = r.Date
			total = r.Words
		}
	}
	return total
}

// TodayDelta returns the words written on today: the cumulative count for
// today minus yesterday's, clamped at zero. A missing yesterday counts as 0,
// so the first recorded day reports its full cumulative count. No record for
// today yields 0.
func (l Ledger) TodayDelta(today Date) int {
	rec, ok := l.Get(today)
	if !ok {
		return 0
	}
	prev, _ := l.Get(today.Prev())
	return clampDelta(rec.Words - prev.Words)
}

// Series returns the ledger sorted ascending by date with per-day deltas.
// The first point's delta equals its own cumulative count; later deltas are
// clamped at zero when cumulative counts go backwards.
func (l Ledger) Series() []Point {
	sorted := make([]Record, len(l))
	copy(sorted, l)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	points := make([]Point, len(sorted))
	for i, r := range sorted {
		delta := r.Words
		if i > 0 {
			delta = clampDelta(r.Words - sorted[i-1].Words)
		}
		points[i] = Point{Date: r.Date, Words: r.Words, Delta: delta}
	}
	return points
}

// History returns the most recent n points in descending date order. Deltas
// are computed against each point's chronological predecessor in the full
// ledger, not against its neighbor in the truncated list.
func (l Ledger) History(n int) []Point {
	series := l.Series()
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
	if n >= 0 && len(series) > n {
		series = series[:n]
	}
	return series
}

func clampDelta(d int) int {
	if d < 0 {
		return 0
	}
	return d
}
