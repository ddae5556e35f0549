package csm

// direction holds the per-direction constants shared by the levels.
type direction struct {
	delta      int
	monthStart int
	monthEnd   int
}

var (
	forward  = direction{delta: 1, monthStart: 1, monthEnd: 12}
	backward = direction{delta: -1, monthStart: 12, monthEnd: 1}
)

func directionOf(back bool) direction {
	if back {
		return backward
	}
	return forward
}

// past reports whether a fixed value is already behind the current one
// in the direction of the scan.
func (dir direction) past(fixed, current int) bool {
	if dir.delta < 0 {
		return fixed > current
	}
	return fixed < current
}

// fixedYearNode allows exactly one pass through the month level.
type fixedYearNode struct{}

var _ yearNode = fixedYearNode{}

func (fixedYearNode) advance() (int, bool) {
	return 0, false
}

// freeYearNode counts years without bound.
type freeYearNode struct {
	year int
	dir  direction
}

var _ yearNode = (*freeYearNode)(nil)

func (n *freeYearNode) advance() (int, bool) {
	n.year += n.dir.delta
	return n.year, true
}

// fixedMonthNode hands out the same month of every new year.
type fixedMonthNode struct {
	month int
}

var _ monthNode = (*fixedMonthNode)(nil)

func (n *fixedMonthNode) advance(carry *int) (yearMonth, outputKind) {
	if carry == nil {
		return yearMonth{}, requested
	}
	return yearMonth{*carry, n.month}, emitted
}

// freeMonthNode cycles through the months of the current year.
type freeMonthNode struct {
	year  int
	month int
	dir   direction
}

var _ monthNode = (*freeMonthNode)(nil)

func (n *freeMonthNode) advance(carry *int) (yearMonth, outputKind) {
	if carry != nil {
		n.year, n.month = *carry, n.dir.monthStart
		return yearMonth{n.year, n.month}, emitted
	}
	if n.month == n.dir.monthEnd {
		return yearMonth{}, requested
	}
	n.month += n.dir.delta
	return yearMonth{n.year, n.month}, emitted
}
