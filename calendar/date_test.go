package calendar_test

import (
	"testing"
	"time"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/internal/assert"
)

func TestDate_New(t *testing.T) {
	t.Parallel()
	tests := []struct {
		year, month, day int
		valid            bool
	}{
		{2010, 1, 10, true},
		{2012, 2, 29, true},
		{2011, 2, 29, false},
		{1900, 2, 29, false},
		{2000, 2, 29, true},
		{2010, 4, 31, false},
		{2010, 13, 1, false},
		{2010, 0, 1, false},
		{2010, 1, 0, false},
	}
	for _, tt := range tests {
		_, err := calendar.New(tt.year, tt.month, tt.day)
		if tt.valid {
			assert.IsNil(t, err)
		} else {
			assert.ErrorIs(t, err, calendar.ErrInvalidDate)
		}
	}
}

func TestDate_Arithmetic(t *testing.T) {
	t.Parallel()
	d := calendar.MustNew(2010, 1, 10)

	assert.Equal(t, d.AddDays(0), d)
	assert.Equal(t, d.AddDays(22), calendar.MustNew(2010, 2, 1))
	assert.Equal(t, d.AddDays(-10), calendar.MustNew(2009, 12, 31))
	assert.Equal(t, d.AddDays(365*2+1), calendar.MustNew(2012, 1, 11))

	assert.Equal(t, d.DaysUntil(calendar.MustNew(2010, 2, 1)), 22)
	assert.Equal(t, d.DaysUntil(calendar.MustNew(2009, 12, 31)), -10)
	assert.Equal(t, calendar.MustNew(1600, 1, 1).DaysUntil(calendar.MustNew(2000, 1, 1)), 146097)
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()
	a := calendar.MustNew(2010, 1, 10)
	b := calendar.MustNew(2010, 2, 1)

	assert.Equal(t, a.Compare(b), -1)
	assert.Equal(t, b.Compare(a), 1)
	assert.Equal(t, a.Compare(a), 0)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, calendar.Min(a, b), a)
	assert.Equal(t, calendar.Max(a, b), b)
}

func TestDate_Weekday(t *testing.T) {
	t.Parallel()
	assert.Equal(t, calendar.MustNew(2010, 1, 10).Weekday(), calendar.Sunday)
	assert.Equal(t, calendar.MustNew(2010, 1, 11).Weekday(), calendar.Monday)
	assert.Equal(t, calendar.MustNew(2010, 9, 1).Weekday(), calendar.Wednesday)
	assert.Equal(t, calendar.MustNew(2032, 2, 29).Weekday(), calendar.Sunday)
}

func TestDate_Text(t *testing.T) {
	t.Parallel()
	d, err := calendar.Parse("2010-09-23")
	assert.IsNil(t, err)
	assert.Equal(t, d, calendar.MustNew(2010, 9, 23))
	assert.Equal(t, d.String(), "2010-09-23")

	text, err := d.MarshalText()
	assert.IsNil(t, err)
	var decoded calendar.Date
	assert.IsNil(t, decoded.UnmarshalText(text))
	assert.Equal(t, decoded, d)

	_, err = calendar.Parse("2010-02-30")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	_, err = calendar.Parse("tomorrow")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestDate_Time(t *testing.T) {
	t.Parallel()
	d := calendar.MustNew(2010, 9, 23)
	assert.Equal(t, d.Time(), time.Date(2010, time.September, 23, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, calendar.FromTime(d.Time().Add(23*time.Hour)), d)
	assert.True(t, calendar.Date{}.IsZero())
	assert.True(t, !d.IsZero())
}
