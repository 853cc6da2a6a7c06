package progress_test

import (
	"testing"
	"time"

	"github.com/akwrites/penlight/internal/domain/progress"
	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	ts := time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)
	require.Equal(t, progress.Date("2024-01-02"), progress.DateOf(ts))
}

func TestDatePrev(t *testing.T) {
	require.Equal(t, progress.Date("2024-01-01"), progress.Date("2024-01-02").Prev())
	require.Equal(t, progress.Date("2023-12-31"), progress.Date("2024-01-01").Prev())
	require.Equal(t, progress.Date("2024-02-29"), progress.Date("2024-03-01").Prev())
	require.True(t, progress.Date("not-a-date").Prev().IsZero())
}

func TestParseDate(t *testing.T) {
	d, err := progress.ParseDate("2024-06-15")
	require.NoError(t, err)
	require.Equal(t, progress.Date("2024-06-15"), d)

	_, err = progress.ParseDate("15/06/2024")
	require.Error(t, err)
}

func TestLedger_Upsert(t *testing.T) {
	var l progress.Ledger

	l.Upsert("2024-01-01", 400)
	require.Len(t, l, 1)

	// Same day again replaces in place.
	l.Upsert("2024-01-01", 450)
	require.Len(t, l, 1)
	rec, ok := l.Get("2024-01-01")
	require.True(t, ok)
	require.Equal(t, 450, rec.Words)

	l.Upsert("2024-01-02", 700)
	require.Len(t, l, 2)
}

func TestLedger_UpsertIdempotent(t *testing.T) {
	var once, twice progress.Ledger
	once.Upsert("2024-01-01", 300)
	twice.Upsert("2024-01-01", 300)
	twice.Upsert("2024-01-01", 300)
	require.Equal(t, once, twice)
}

func TestLedger_LatestTotal(t *testing.T) {
	var l progress.Ledger
	require.Equal(t, 0, l.LatestTotal())

	// Out-of-order writes; latest date wins regardless of insertion order.
	l.Upsert("2024-01-03", 900)
	l.Upsert("2024-01-01", 300)
	l.Upsert("2024-01-02", 550)
	require.Equal(t, 900, l.LatestTotal())
}

func TestLedger_TodayDelta(t *testing.T) {
	var l progress.Ledger
	require.Equal(t, 0, l.TodayDelta("2024-01-02"))

	l.Upsert("2024-01-01", 300)
	l.Upsert("2024-01-02", 550)

	require.Equal(t, 250, l.TodayDelta("2024-01-02"))
	// First day has no baseline: full cumulative count reported.
	require.Equal(t, 300, l.TodayDelta("2024-01-01"))
	// No record for the queried day.
	require.Equal(t, 0, l.TodayDelta("2024-01-05"))
}

func TestLedger_TodayDeltaClampsNegative(t *testing.T) {
	var l progress.Ledger
	l.Upsert("2024-01-01", 500)
	l.Upsert("2024-01-02", 420) // document shrank
	require.Equal(t, 0, l.TodayDelta("2024-01-02"))
}

func TestLedger_TodayDeltaMissingYesterday(t *testing.T) {
	var l progress.Ledger
	l.Upsert("2024-01-01", 300)
	l.Upsert("2024-01-05", 800)
	// Gap before the 5th: missing yesterday treated as zero baseline.
	require.Equal(t, 800, l.TodayDelta("2024-01-05"))
}

func TestLedger_Series(t *testing.T) {
	var l progress.Ledger
	l.Upsert("2024-01-03", 500)
	l.Upsert("2024-01-01", 300)
	l.Upsert("2024-01-02", 550)

	series := l.Series()
	require.Equal(t, []progress.Point{
		{Date: "2024-01-01", Words: 300, Delta: 300},
		{Date: "2024-01-02", Words: 550, Delta: 250},
		{Date: "2024-01-03", Words: 500, Delta: 0}, // non-monotonic, clamped
	}, series)
}

func TestLedger_SeriesDeltasNonNegative(t *testing.T) {
	var l progress.Ledger
	l.Upsert("2024-01-01", 900)
	l.Upsert("2024-01-02", 100)
	l.Upsert("2024-01-03", 400)
	l.Upsert("2024-01-04", 50)

	for _, p := range l.Series() {
		require.GreaterOrEqual(t, p.Delta, 0)
	}
}

func TestLedger_History(t *testing.T) {
	var l progress.Ledger
	for day := 1; day <= 12; day++ {
		l.Upsert(progress.DateOf(time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)), day*100)
	}

	hist := l.History(10)
	require.Len(t, hist, 10)
	require.Equal(t, progress.Date("2024-01-12"), hist[0].Date)
	require.Equal(t, progress.Date("2024-01-03"), hist[9].Date)

	// Delta of the oldest retained entry is against its chronological
	// predecessor, which fell off the truncated list.
	require.Equal(t, 100, hist[9].Delta)
}

func TestLedger_HistoryShorterThanLimit(t *testing.T) {
	var l progress.Ledger
	l.Upsert("2024-01-01", 300)
	hist := l.History(10)
	require.Len(t, hist, 1)
	require.Equal(t, 300, hist[0].Delta)
}
