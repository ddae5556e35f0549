package action

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/reugn/go-remind/calendar"
)

// MessagePrinter writes a fixed message, one line per execution.
type MessagePrinter struct {
	mtx     sync.Mutex
	w       io.Writer
	message string
}

var _ Action = (*MessagePrinter)(nil)

// NewMessagePrinter returns a new MessagePrinter writing to os.Stdout.
func NewMessagePrinter(message string) *MessagePrinter {
	return NewMessagePrinterTo(os.Stdout, message)
}

// NewMessagePrinterTo returns a new MessagePrinter writing to w.
func NewMessagePrinterTo(w io.Writer, message string) *MessagePrinter {
	return &MessagePrinter{w: w, message: message}
}

// Message returns the message to print.
func (p *MessagePrinter) Message() string {
	return p.message
}

// Description returns the description of the MessagePrinter.
func (p *MessagePrinter) Description() string {
	return fmt.Sprintf("MessagePrinter%s%s", Sep, p.message)
}

// Execute writes the message. The date does not affect the output.
func (p *MessagePrinter) Execute(_ context.Context, _ calendar.Date) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	_, err := fmt.Fprintln(p.w, p.message)
	return err
}
