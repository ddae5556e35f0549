package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/condition"
	"github.com/reugn/go-remind/logger"
)

// Stream is a condition carrying an opaque payload.
type Stream[P any] struct {
	Condition condition.Condition

	// Horizon is the number of days past the window end the stream is
	// pulled for in ModeRemind.
	Horizon int

	Payload P
}

// Handler receives the merged events.
type Handler[P any] interface {
	// OnDateBoundary is called once per distinct date, before the events
	// of that date.
	OnDateBoundary(date calendar.Date)

	// OnEvent is called for every event, in date order and then in stream
	// order.
	OnEvent(payload P, date calendar.Date)
}

// HandlerFuncs adapts functions to the Handler interface.
// Nil functions are skipped.
type HandlerFuncs[P any] struct {
	Boundary func(date calendar.Date)
	Event    func(payload P, date calendar.Date)
}

var _ Handler[any] = HandlerFuncs[any]{}

// OnDateBoundary implements the Handler interface.
func (h HandlerFuncs[P]) OnDateBoundary(date calendar.Date) {
	if h.Boundary != nil {
		h.Boundary(date)
	}
}

// OnEvent implements the Handler interface.
func (h HandlerFuncs[P]) OnEvent(payload P, date calendar.Date) {
	if h.Event != nil {
		h.Event(payload, date)
	}
}

// Options configures a Runner.
type Options struct {
	// From and To delimit the window, both inclusive.
	From calendar.Date
	To   calendar.Date

	// Mode selects whether the stream horizons apply.
	Mode Mode

	// OnError decides what happens when a stream fails.
	OnError ErrorPolicy

	// Logger defaults to a NoOpLogger.
	Logger logger.Logger
}

// Runner merges streams into one ordered event sequence.
type Runner[P any] struct {
	opts   Options
	logger logger.Logger
}

// New returns a new Runner with the given options.
func New[P any](opts Options) (*Runner[P], error) {
	if opts.From.IsZero() || opts.To.IsZero() {
		return nil, illegalArgumentError("window bounds are not set")
	}
	if opts.From.After(opts.To) {
		return nil, illegalArgumentError(fmt.Sprintf("window start %v is after its end %v",
			opts.From, opts.To))
	}
	if _, err := ParseMode(opts.Mode.String()); err != nil {
		return nil, err
	}
	if _, err := ParseErrorPolicy(opts.OnError.String()); err != nil {
		return nil, err
	}
	return &Runner[P]{opts: opts, logger: logger.OrNoOp(opts.Logger)}, nil
}

// Options returns the runner options.
func (r *Runner[P]) Options() Options {
	return r.opts
}

// Run merges the streams and feeds the handler until every stream is
// exhausted or past its limit. The context is checked between events.
func (r *Runner[P]) Run(ctx context.Context, streams []Stream[P], handler Handler[P]) error {
	for i, stream := range streams {
		if stream.Condition == nil {
			return illegalArgumentError(fmt.Sprintf("stream %d has no condition", i))
		}
		if stream.Horizon < 0 {
			return illegalArgumentError(fmt.Sprintf("stream %d has a negative horizon", i))
		}
	}

	queue := make(eventQueue[P], 0, len(streams))
	for i, stream := range streams {
		it := &item[P]{
			position: i,
			payload:  stream.Payload,
			it:       stream.Condition.Scan(r.opts.From),
			limit:    r.limit(stream),
		}
		if err := r.advance(&queue, it); err != nil {
			return err
		}
	}
	r.logger.Debug("Merging streams", "streams", len(streams), "pending", queue.Len(),
		"from", r.opts.From, "to", r.opts.To, "mode", r.opts.Mode)

	var last calendar.Date
	for queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := queue.pop()
		if err != nil {
			return err
		}
		if last.IsZero() || next.date != last {
			last = next.date
			handler.OnDateBoundary(last)
		}
		r.logger.Trace("Event", "date", next.date, "stream", next.position)
		handler.OnEvent(next.payload, next.date)

		if err := r.advance(&queue, next); err != nil {
			return err
		}
	}
	return nil
}

// limit returns the last date a stream may produce.
func (r *Runner[P]) limit(stream Stream[P]) calendar.Date {
	if r.opts.Mode == ModeRemind {
		return r.opts.To.AddDays(stream.Horizon)
	}
	return r.opts.To
}

// advance pulls the next date of the stream and requeues it if it is
// within the stream limit.
func (r *Runner[P]) advance(queue *eventQueue[P], it *item[P]) error {
	date, ok := it.it.Next()
	if !ok {
		err := it.it.Err()
		if err == nil {
			return nil
		}
		if r.opts.OnError == Abort {
			return streamError(it.position, err)
		}
		r.logger.Warn("Dropping failed stream", "stream", it.position, "error", err)
		return nil
	}
	if date.After(it.limit) {
		return nil
	}
	it.date = date
	queue.push(it)
	return nil
}

// Event is a merged event.
type Event[P any] struct {
	Date    calendar.Date
	Payload P
}

// Collect runs the streams and returns the ordered events.
func Collect[P any](ctx context.Context, opts Options, streams []Stream[P]) ([]Event[P], error) {
	runner, err := New[P](opts)
	if err != nil {
		return nil, err
	}
	var events []Event[P]
	err = runner.Run(ctx, streams, HandlerFuncs[P]{
		Event: func(payload P, date calendar.Date) {
			events = append(events, Event[P]{Date: date, Payload: payload})
		},
	})
	if err != nil && !errors.Is(err, ErrStream) {
		return nil, err
	}
	return events, err
}
