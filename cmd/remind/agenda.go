package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/logger"
	"github.com/reugn/go-remind/reminder"
	"github.com/reugn/go-remind/runner"
)

// agenda prints the merged events, running the reminder actions under
// date headers.
type agenda struct {
	ctx    context.Context
	w      io.Writer
	today  calendar.Date
	logger logger.Logger

	failures int
}

var _ runner.Handler[*reminder.Reminder] = (*agenda)(nil)

func (a *agenda) OnDateBoundary(date calendar.Date) {
	fmt.Fprintf(a.w, "Reminders for %s (%s)\n", date, relativeDay(a.today, date))
}

func (a *agenda) OnEvent(r *reminder.Reminder, date calendar.Date) {
	if err := r.Execute(a.ctx, date); err != nil {
		a.failures++
		a.logger.Error("Action failed", "reminder", r.Name, "date", date,
			"action", r.Action.Description(), "error", err)
	}
}

// relativeDay describes date as seen from today.
func relativeDay(today, date calendar.Date) string {
	if date == today {
		return "today"
	}
	return humanize.RelTime(date.Time(), today.Time(), "ago", "from now")
}

// eventRecord is the JSON form of an event.
type eventRecord struct {
	Date   calendar.Date `json:"date"`
	Days   int           `json:"days"`
	ID     uuid.UUID     `json:"id"`
	Name   string        `json:"name"`
	Tags   []string      `json:"tags,omitempty"`
	Action string        `json:"action"`
}

// jsonAgenda writes one JSON object per event without running the actions.
type jsonAgenda struct {
	encoder *json.Encoder
	today   calendar.Date
	err     error
}

var _ runner.Handler[*reminder.Reminder] = (*jsonAgenda)(nil)

func newJSONAgenda(w io.Writer, today calendar.Date) *jsonAgenda {
	return &jsonAgenda{encoder: json.NewEncoder(w), today: today}
}

func (a *jsonAgenda) OnDateBoundary(calendar.Date) {}

func (a *jsonAgenda) OnEvent(r *reminder.Reminder, date calendar.Date) {
	if a.err != nil {
		return
	}
	a.err = a.encoder.Encode(eventRecord{
		Date:   date,
		Days:   a.today.DaysUntil(date),
		ID:     r.ID,
		Name:   r.Name,
		Tags:   r.Tags,
		Action: r.Action.Description(),
	})
}
