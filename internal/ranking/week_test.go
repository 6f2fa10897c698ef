package ranking_test

import (
	"testing"
	"time"

	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekKeyFor(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"a Monday maps to itself", "2024-06-03", "2024-06-03"},
		{"a Wednesday maps back to Monday", "2024-06-05", "2024-06-03"},
		{"a Saturday maps back to Monday", "2024-06-08", "2024-06-03"},
		{"a Sunday maps to the previous Monday", "2024-06-09", "2024-06-03"},
		{"the next Monday starts a new week", "2024-06-10", "2024-06-10"},
		{"a week spanning a month boundary", "2024-07-01", "2024-07-01"},
		{"a Sunday across a month boundary", "2024-06-02", "2024-05-27"},
		{"a Sunday across a year boundary", "2023-01-01", "2022-12-26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ranking.WeekKeyFor(tt.date))
		})
	}
}

func TestWeekKeyFor_AlwaysAMondayCoveringTheDate(t *testing.T) {
	// Walk a full year of dates and check the week-key invariants:
	// the key is a Monday, and key <= date <= key+6d.
	day := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		date := day.Format(ranking.DateLayout)
		key := ranking.WeekKeyFor(date)

		mon, err := time.Parse(ranking.DateLayout, key)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, mon.Weekday(), "week key for %s is not a Monday", date)

		assert.LessOrEqual(t, key, date)
		assert.GreaterOrEqual(t, mon.AddDate(0, 0, 6).Format(ranking.DateLayout), date)

		day = day.AddDate(0, 0, 1)
	}
}

func TestWeekKeyFor_SameWeekSameKey(t *testing.T) {
	// All seven days of a Monday-starting span share one key.
	mon := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		date := mon.AddDate(0, 0, i).Format(ranking.DateLayout)
		assert.Equal(t, "2024-06-03", ranking.WeekKeyFor(date), "day %s", date)
	}
}

func TestWeekKeyFor_UnparseableInputIsReturnedUnchanged(t *testing.T) {
	assert.Equal(t, "not-a-date", ranking.WeekKeyFor("not-a-date"))
}

func TestWeekRange(t *testing.T) {
	start, end := ranking.WeekRange("2024-06-03")
	assert.Equal(t, "2024-06-03", start)
	assert.Equal(t, "2024-06-09", end)

	assert.Equal(t, "03/06/2024 – 09/06/2024", ranking.FormatWeekRange("2024-06-03"))
}

func TestEffectiveDate(t *testing.T) {
	dated := ranking.Match{Date: "2024-06-05", CreatedAt: 1_700_000_000}
	assert.Equal(t, "2024-06-05", dated.EffectiveDate())

	undated := ranking.Match{CreatedAt: time.Date(2024, 6, 7, 18, 0, 0, 0, time.UTC).Unix()}
	assert.Equal(t, "2024-06-07", undated.EffectiveDate())

	// No date and no creation timestamp falls back to today.
	blank := ranking.Match{}
	assert.Equal(t, ranking.Today(), blank.EffectiveDate())
}
