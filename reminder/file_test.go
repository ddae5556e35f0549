package reminder_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reugn/go-remind/action"
	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/internal/assert"
	"github.com/reugn/go-remind/reminder"
	"github.com/reugn/go-remind/runner"
)

const remindersYAML = `
reminders:
  - name: rent
    message: Pay the rent
    tags: [home]
    warn: 3
    when:
      day: 1
  - name: demo
    message: Sprint demo
    when:
      date: 2010-09-23
      repeat: 14
      count: 3
  - shell: echo $REMIND_DATE
    done: 2010-09-01
    when:
      cron: "0 9 * * MON"
  - name: leap
    message: Leap day
    when:
      month: 2
      day: 29
      weekdays: [sun, 5]
      policy: skip
  - name: fortnight
    message: Even week sync
    when:
      weekdays: [mon]
      only:
        iso_week: even
        not:
          day_of_year: 4
      from: 2010-01-01
      until: 2010-02-28
  - name: payday
    message: Payday
    when:
      day: 1
      then_backward:
        weekdays: [fri]
        count: 1
      shift: -1
`

func TestLoader_Decode(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	loader := &reminder.Loader{Output: &buf}
	set, err := loader.Decode(strings.NewReader(remindersYAML), "test.yaml")
	assert.IsNil(t, err)
	assert.Equal(t, len(set), 6)

	rent := set[0]
	assert.Equal(t, rent.Name, "rent")
	assert.Equal(t, rent.ID, reminder.SourceID("test.yaml", 0))
	assert.Equal(t, rent.Tags, []string{"home"})
	assert.Equal(t, rent.AdvanceWarning, 3)
	assert.True(t, rent.Done.IsZero())
	assert.True(t, !rent.Deferrable)
	assert.IsNil(t, rent.Execute(context.Background(), date(2010, 10, 1)))
	assert.Equal(t, buf.String(), "Pay the rent\n")

	demo := set[1]
	assert.True(t, condition.IsFinite(demo.Condition))
	assertDates(t, demo.Condition.Scan(date(2010, 1, 1)),
		date(2010, 9, 23), date(2010, 10, 7), date(2010, 10, 21))

	shell := set[2]
	assert.Equal(t, shell.Name, "test.yaml#2")
	assert.Equal(t, shell.Done, date(2010, 9, 1))
	assert.True(t, shell.Deferrable)
	_, ok := shell.Action.(*action.ShellAction)
	assert.True(t, ok)
	first, _, err := condition.First(shell.Condition.Scan(date(2010, 9, 23)))
	assert.IsNil(t, err)
	assert.Equal(t, first, date(2010, 9, 27))

	leap := set[3]
	first, _, err = condition.First(leap.Condition.Scan(date(2010, 1, 1)))
	assert.IsNil(t, err)
	assert.Equal(t, first, date(2020, 2, 29))

	fortnight := set[4]
	dates, err := condition.Collect(fortnight.Condition.Scan(date(2010, 1, 1)))
	assert.IsNil(t, err)
	for _, d := range dates {
		assert.Equal(t, d.Weekday(), calendar.Monday)
		assert.Equal(t, calendar.ISOWeek(d)%2, 0)
	}
	assert.Equal(t, dates[0], date(2010, 1, 11))
	assert.Equal(t, len(dates), 4)

	payday := set[5]
	assertDates(t, payday.Condition.Scan(date(2010, 5, 1)),
		date(2010, 5, 27), date(2010, 6, 24))
}

func TestLoader_DecodeDeferrable(t *testing.T) {
	t.Parallel()
	const doc = `
reminders:
  - name: undone
    message: Water the plants
    deferrable: true
    when: {year: 2010, day: 14}
  - name: done
    message: Water the plants
    done: 2010-04-14
    when: {year: 2010, day: 14}
  - name: plain
    message: Water the plants
    when: {year: 2010, day: 14}
  - name: no weekday
    message: Never
    when:
      date: 2010-09-01
      weekdays: []
`
	loader := &reminder.Loader{}
	set, err := loader.Decode(strings.NewReader(doc), "deferrable.yaml")
	assert.IsNil(t, err)
	assert.Equal(t, len(set), 4)

	start := date(2010, 5, 12)
	undone := set[0]
	assert.True(t, undone.Deferrable)
	assert.True(t, undone.Done.IsZero())
	assertDates(t, undone.ConditionFor(runner.ModeRemind).Scan(start),
		date(2010, 4, 14), date(2010, 5, 14))
	assertDates(t, set[1].ConditionFor(runner.ModeRemind).Scan(start),
		date(2010, 5, 14), date(2010, 6, 14))
	assertDates(t, set[2].ConditionFor(runner.ModeRemind).Scan(start),
		date(2010, 5, 14), date(2010, 6, 14))

	dates, err := condition.Collect(set[3].Condition.Scan(date(2010, 1, 1)))
	assert.IsNil(t, err)
	assert.Equal(t, len(dates), 0)
}

func assertDates(t *testing.T, it condition.Iterator, expected ...calendar.Date) {
	t.Helper()
	dates, err := condition.Take(it, len(expected))
	assert.IsNil(t, err)
	assert.Equal(t, dates, expected)
}

func TestLoader_DecodeInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "unknown key",
			yaml: "reminders:\n  - message: x\n    when: {dya: 1}\n",
			err:  reminder.ErrFormat,
		},
		{
			name: "bad weekday",
			yaml: "reminders:\n  - message: x\n    when: {weekdays: [xyz]}\n",
			err:  reminder.ErrFormat,
		},
		{
			name: "missing when",
			yaml: "reminders:\n  - message: x\n",
			err:  reminder.ErrIllegalArgument,
		},
		{
			name: "missing action",
			yaml: "reminders:\n  - when: {day: 1}\n",
			err:  reminder.ErrIllegalArgument,
		},
		{
			name: "message and shell",
			yaml: "reminders:\n  - message: x\n    shell: y\n    when: {day: 1}\n",
			err:  reminder.ErrIllegalArgument,
		},
		{
			name: "conflicting base",
			yaml: "reminders:\n  - message: x\n    when: {date: 2010-09-23, day: 1}\n",
			err:  reminder.ErrIllegalArgument,
		},
		{
			name: "negative warning",
			yaml: "reminders:\n  - message: x\n    warn: -1\n    when: {day: 1}\n",
			err:  reminder.ErrIllegalArgument,
		},
		{
			name: "infinite repeat anchor",
			yaml: "reminders:\n  - message: x\n    when: {day: 1, repeat: 3}\n",
			err:  condition.ErrInfiniteAnchor,
		},
		{
			name: "invalid cron",
			yaml: "reminders:\n  - message: x\n    when: {cron: \"not a cron\"}\n",
			err:  condition.ErrIllegalArgument,
		},
		{
			name: "empty filter",
			yaml: "reminders:\n  - message: x\n    when: {only: {}}\n",
			err:  reminder.ErrIllegalArgument,
		},
		{
			name: "both combine directions",
			yaml: "reminders:\n  - message: x\n    when: {day: 1, then: {every: 1}, then_backward: {every: 1}}\n",
			err:  reminder.ErrIllegalArgument,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loader := &reminder.Loader{}
			_, err := loader.Decode(strings.NewReader(tt.yaml), "invalid.yaml")
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, reminder.ErrFormat)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	assert.IsNil(t, os.WriteFile(first, []byte(remindersYAML), 0o600))
	assert.IsNil(t, os.WriteFile(second, []byte(""), 0o600))

	loader := &reminder.Loader{}
	set, err := loader.Load(first, second)
	assert.IsNil(t, err)
	assert.Equal(t, len(set), 6)
	assert.Equal(t, set[2].ID, reminder.SourceID(first, 2))

	_, err = loader.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
