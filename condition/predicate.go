package condition

import "github.com/reugn/go-remind/calendar"

// Predicate decides whether a date is accepted.
type Predicate func(calendar.Date) bool

// PredicateFactory returns a fresh Predicate for every scan, which lets
// stateful predicates such as EveryNth count from the scan start.
type PredicateFactory func() Predicate

// Stateless wraps a pure predicate into a PredicateFactory.
func Stateless(pred Predicate) PredicateFactory {
	return func() Predicate { return pred }
}

// EveryNth accepts every n-th date it is called with, starting with the
// n-th one.
func EveryNth(n int) PredicateFactory {
	return func() Predicate {
		calls := 0
		return func(calendar.Date) bool {
			calls++
			return calls%n == 0
		}
	}
}

// Not negates a predicate.
func Not(f PredicateFactory) PredicateFactory {
	return func() Predicate {
		pred := f()
		return func(d calendar.Date) bool { return !pred(d) }
	}
}

// And accepts the dates accepted by all predicates. Every predicate sees
// every date.
func And(fs ...PredicateFactory) PredicateFactory {
	return func() Predicate {
		preds := build(fs)
		return func(d calendar.Date) bool {
			ok := true
			for _, pred := range preds {
				ok = pred(d) && ok
			}
			return ok
		}
	}
}

// Or accepts the dates accepted by any predicate. Every predicate sees
// every date.
func Or(fs ...PredicateFactory) PredicateFactory {
	return func() Predicate {
		preds := build(fs)
		return func(d calendar.Date) bool {
			ok := false
			for _, pred := range preds {
				ok = pred(d) || ok
			}
			return ok
		}
	}
}

// OddISOWeek accepts the dates of odd ISO weeks.
func OddISOWeek() PredicateFactory {
	return Stateless(func(d calendar.Date) bool {
		return calendar.ISOWeek(d)%2 == 1
	})
}

// EvenISOWeek accepts the dates of even ISO weeks.
func EvenISOWeek() PredicateFactory {
	return Not(OddISOWeek())
}

// OnDayOfYear accepts the n-th day of every year, 1 being January 1.
func OnDayOfYear(n int) PredicateFactory {
	return Stateless(func(d calendar.Date) bool {
		return calendar.DayOfYear(d) == n
	})
}

func build(fs []PredicateFactory) []Predicate {
	preds := make([]Predicate, len(fs))
	for i, f := range fs {
		preds[i] = f()
	}
	return preds
}
