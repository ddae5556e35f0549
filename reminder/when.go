package reminder

import (
	"fmt"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
)

// When is the declarative form of a condition.
//
// The base is a single date, a cron expression, an Every period, or a
// constrained year/month/day/weekday pattern, the latter being the
// default. The remaining fields wrap the base in this order: repeat,
// then, shift, only, and the from/until/count limit.
type When struct {
	Date     *calendar.Date     `yaml:"date"`
	Year     *int               `yaml:"year"`
	Month    *int               `yaml:"month"`
	Day      *int               `yaml:"day"`
	Weekdays []calendar.Weekday `yaml:"weekdays"`
	Policy   *calendar.Policy   `yaml:"policy"`
	Cron     string             `yaml:"cron"`
	Every    int                `yaml:"every"`

	Repeat       int   `yaml:"repeat"`
	Then         *When `yaml:"then"`
	ThenBackward *When `yaml:"then_backward"`
	Shift        int   `yaml:"shift"`
	Only         *Only `yaml:"only"`

	From  *calendar.Date `yaml:"from"`
	Until *calendar.Date `yaml:"until"`
	Count *int           `yaml:"count"`
}

// Only is the declarative form of a date filter. All the set filters must
// accept a date.
type Only struct {
	EveryNth  int    `yaml:"every_nth"`
	ISOWeek   string `yaml:"iso_week"`
	DayOfYear int    `yaml:"day_of_year"`
	Not       *Only  `yaml:"not"`
}

// Build returns the condition described by w.
func (w *When) Build() (condition.Condition, error) {
	cond, err := w.base()
	if err != nil {
		return nil, err
	}
	if w.Repeat != 0 {
		if cond, err = condition.NewRepeat(cond, w.Repeat); err != nil {
			return nil, err
		}
	}
	if w.Then != nil && w.ThenBackward != nil {
		return nil, illegalArgumentError("then and then_backward are exclusive")
	}
	if w.Then != nil {
		if cond, err = w.combine(cond, w.Then, condition.Forward); err != nil {
			return nil, err
		}
	}
	if w.ThenBackward != nil {
		if cond, err = w.combine(cond, w.ThenBackward, condition.Backward); err != nil {
			return nil, err
		}
	}
	if w.Shift != 0 {
		cond = condition.NewShift(cond, w.Shift)
	}
	if w.Only != nil {
		factory, err := w.Only.factory()
		if err != nil {
			return nil, err
		}
		if cond, err = condition.NewSatisfy(cond, factory); err != nil {
			return nil, err
		}
	}
	return w.limit(cond)
}

func (w *When) base() (condition.Condition, error) {
	constrained := w.Year != nil || w.Month != nil || w.Day != nil || w.Policy != nil
	kinds := 0
	for _, set := range []bool{w.Date != nil, w.Cron != "", w.Every != 0, constrained} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return nil, illegalArgumentError("date, cron, every and year/month/day are exclusive")
	}

	switch {
	case w.Date != nil:
		return condition.NewFixedOn(*w.Date, w.Weekdays), nil
	case w.Cron != "":
		if w.Weekdays != nil {
			return nil, illegalArgumentError("weekdays do not apply to cron")
		}
		return condition.NewCron(w.Cron)
	case w.Every != 0:
		if w.Weekdays != nil {
			return nil, illegalArgumentError("weekdays do not apply to every")
		}
		return condition.NewEvery(w.Every)
	}

	var opts []condition.Option
	if w.Year != nil {
		opts = append(opts, condition.Year(*w.Year))
	}
	if w.Month != nil {
		opts = append(opts, condition.Month(*w.Month))
	}
	if w.Day != nil {
		opts = append(opts, condition.Day(*w.Day))
	}
	if w.Weekdays != nil {
		opts = append(opts, condition.Weekdays(w.Weekdays...))
	}
	if w.Policy != nil {
		opts = append(opts, condition.WithPolicy(*w.Policy))
	}
	return condition.NewConstrained(opts...)
}

func (w *When) combine(outer condition.Condition, then *When,
	dir condition.Direction) (condition.Condition, error) {
	inner, err := then.Build()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", dir, err)
	}
	return condition.NewCombine(outer, inner, dir), nil
}

func (w *When) limit(cond condition.Condition) (condition.Condition, error) {
	var opts []condition.LimitOption
	if w.From != nil {
		opts = append(opts, condition.LimitFrom(*w.From))
	}
	if w.Until != nil {
		opts = append(opts, condition.LimitUntil(*w.Until))
	}
	if w.Count != nil {
		opts = append(opts, condition.LimitCount(*w.Count))
	}
	if len(opts) == 0 {
		return cond, nil
	}
	return condition.NewLimit(cond, opts...)
}

func (o *Only) factory() (condition.PredicateFactory, error) {
	var factories []condition.PredicateFactory
	if o.EveryNth != 0 {
		if o.EveryNth < 0 {
			return nil, illegalArgumentError(fmt.Sprintf("every_nth %d is not positive", o.EveryNth))
		}
		factories = append(factories, condition.EveryNth(o.EveryNth))
	}
	switch o.ISOWeek {
	case "":
	case "odd":
		factories = append(factories, condition.OddISOWeek())
	case "even":
		factories = append(factories, condition.EvenISOWeek())
	default:
		return nil, illegalArgumentError(fmt.Sprintf("iso_week %q is neither odd nor even", o.ISOWeek))
	}
	if o.DayOfYear != 0 {
		if o.DayOfYear < 1 || o.DayOfYear > 366 {
			return nil, illegalArgumentError(fmt.Sprintf("day_of_year %d out of range", o.DayOfYear))
		}
		factories = append(factories, condition.OnDayOfYear(o.DayOfYear))
	}
	if o.Not != nil {
		negated, err := o.Not.factory()
		if err != nil {
			return nil, err
		}
		factories = append(factories, condition.Not(negated))
	}

	switch len(factories) {
	case 0:
		return nil, illegalArgumentError("empty only filter")
	case 1:
		return factories[0], nil
	default:
		return condition.And(factories...), nil
	}
}
