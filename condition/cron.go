package condition

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-remind/calendar"
)

// cronexpr only produces fire times within these years.
const (
	cronFirstYear = 1970
	cronLastYear  = 2099
)

// cronWindow is the width in days of the windows replayed by a backward
// cron scan.
const cronWindow = 31

// Cron matches every date on which a cron expression fires at least once.
// All times are evaluated in UTC.
type Cron struct {
	expression string
	expr       *cronexpr.Expression
}

var (
	_ Condition = (*Cron)(nil)
	_ Finite    = (*Cron)(nil)
)

// NewCron parses a cron expression and returns a new Cron condition.
func NewCron(expression string) (*Cron, error) {
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, illegalArgumentError(fmt.Sprintf("cron %q: %v", expression, err))
	}
	return &Cron{expression: expression, expr: expr}, nil
}

// Scan implements the Condition interface.
func (c *Cron) Scan(start calendar.Date) Iterator {
	return &cronIterator{expr: c.expr, next: start}
}

// ScanBack implements the Condition interface.
func (c *Cron) ScanBack(start calendar.Date) Iterator {
	return &cronBackIterator{expr: c.expr, end: start}
}

// Finite always returns true, the expression years being bounded.
func (c *Cron) Finite() bool {
	return true
}

// String returns the cron expression.
func (c *Cron) String() string {
	return fmt.Sprintf("Cron(%s)", c.expression)
}

// firstFire returns the first date at or after from on which expr fires.
func firstFire(expr *cronexpr.Expression, from calendar.Date) (calendar.Date, bool) {
	if from.Year > cronLastYear {
		return calendar.Date{}, false
	}
	next := expr.Next(from.Time().Add(-time.Second))
	if next.IsZero() {
		return calendar.Date{}, false
	}
	return calendar.FromTime(next), true
}

type cronIterator struct {
	expr *cronexpr.Expression
	next calendar.Date
	done bool
}

func (it *cronIterator) Next() (calendar.Date, bool) {
	if it.done {
		return calendar.Date{}, false
	}
	d, ok := firstFire(it.expr, it.next)
	if !ok {
		it.done = true
		return calendar.Date{}, false
	}
	it.next = d.AddDays(1)
	return d, true
}

func (it *cronIterator) Err() error {
	return nil
}

// cronBackIterator replays the expression forward over windows of days
// walking back from the start date.
type cronBackIterator struct {
	expr    *cronexpr.Expression
	end     calendar.Date
	pending []calendar.Date
}

func (it *cronBackIterator) Next() (calendar.Date, bool) {
	for len(it.pending) == 0 {
		if it.end.Year < cronFirstYear {
			return calendar.Date{}, false
		}
		from := it.end.AddDays(1 - cronWindow)
		d, ok := firstFire(it.expr, from)
		for ok && !d.After(it.end) {
			it.pending = append(it.pending, d)
			d, ok = firstFire(it.expr, d.AddDays(1))
		}
		it.end = from.AddDays(-1)
	}
	last := len(it.pending) - 1
	d := it.pending[last]
	it.pending = it.pending[:last]
	return d, true
}

func (it *cronBackIterator) Err() error {
	return nil
}
