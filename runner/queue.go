package runner

import (
	"container/heap"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
)

// item is the eventQueue item, holding the pending date of a stream.
type item[P any] struct {
	date     calendar.Date
	position int // stream position, breaks ties between equal dates
	payload  P
	it       condition.Iterator
	limit    calendar.Date // last date the stream may be pulled for
	index    int           // maintained by the heap.Interface methods
}

// eventQueue implements the heap.Interface, ordered by date and then by
// stream position.
type eventQueue[P any] []*item[P]

// Len returns the eventQueue length.
func (q eventQueue[P]) Len() int { return len(q) }

// Less is the items less comparator.
func (q eventQueue[P]) Less(i, j int) bool {
	if c := q[i].date.Compare(q[j].date); c != 0 {
		return c < 0
	}
	return q[i].position < q[j].position
}

// Swap exchanges the indexes of the items.
func (q eventQueue[P]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push implements the heap.Interface.Push.
// Adds x as element Len().
func (q *eventQueue[P]) Push(x any) {
	it := x.(*item[P])
	it.index = len(*q)
	*q = append(*q, it)
}

// Pop implements the heap.Interface.Pop.
// Removes and returns element Len() - 1.
func (q *eventQueue[P]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1 // for safety
	*q = old[0 : n-1]
	return it
}

// push adds an item to the queue.
func (q *eventQueue[P]) push(it *item[P]) {
	heap.Push(q, it)
}

// pop removes and returns the earliest item.
func (q *eventQueue[P]) pop() (*item[P], error) {
	if q.Len() == 0 {
		return nil, ErrQueueEmpty
	}
	return heap.Pop(q).(*item[P]), nil
}
