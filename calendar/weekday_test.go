package calendar_test

import (
	"testing"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/internal/assert"
)

func TestWeekdaySet_Normalize(t *testing.T) {
	t.Parallel()
	set, err := calendar.NewWeekdaySet(calendar.Wednesday, calendar.Sunday,
		calendar.Monday, calendar.Wednesday)
	assert.IsNil(t, err)

	assert.Equal(t, set.Len(), 3)
	assert.Equal(t, set.Weekdays(),
		[]calendar.Weekday{calendar.Monday, calendar.Wednesday, calendar.Sunday})
	assert.Equal(t, set.Offset(0), 2)
	assert.Equal(t, set.Offset(1), 4)
	assert.Equal(t, set.Offset(2), 1)
	assert.Equal(t, set.String(), "[Mon,Wed,Sun]")

	assert.True(t, set.Contains(calendar.Sunday))
	assert.True(t, !set.Contains(calendar.Tuesday))
	assert.Equal(t, set.SearchFirst(calendar.Tuesday), 1)
	assert.Equal(t, set.SearchFirst(calendar.Wednesday), 1)
	assert.Equal(t, set.SearchAfter(calendar.Wednesday), 2)
	assert.Equal(t, set.SearchAfter(calendar.Sunday), 3)
}

func TestWeekdaySet_Single(t *testing.T) {
	t.Parallel()
	set, err := calendar.NewWeekdaySet(calendar.Friday)
	assert.IsNil(t, err)
	assert.Equal(t, set.Offset(0), 7)
}

func TestWeekdaySet_Empty(t *testing.T) {
	t.Parallel()
	set, err := calendar.NewWeekdaySet()
	assert.IsNil(t, err)
	assert.True(t, set.IsEmpty())
	assert.True(t, !set.Contains(calendar.Monday))
}

func TestWeekdaySet_Invalid(t *testing.T) {
	t.Parallel()
	_, err := calendar.NewWeekdaySet(calendar.Weekday(7))
	assert.ErrorIs(t, err, calendar.ErrIllegalArgument)
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected calendar.Weekday
	}{
		{"mon", calendar.Monday},
		{"Tuesday", calendar.Tuesday},
		{"WED", calendar.Wednesday},
		{"4", calendar.Friday},
		{" sun ", calendar.Sunday},
	}
	for _, tt := range tests {
		w, err := calendar.ParseWeekday(tt.input)
		assert.IsNil(t, err)
		assert.Equal(t, w, tt.expected)
	}

	for _, input := range []string{"mo", "9", "someday"} {
		_, err := calendar.ParseWeekday(input)
		assert.ErrorIs(t, err, calendar.ErrIllegalArgument)
	}
}
