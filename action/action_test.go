package action_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/reugn/go-remind/action"
	"github.com/reugn/go-remind/calendar"
	"github.com/reugn/go-remind/internal/assert"
)

var today = calendar.MustNew(2010, 9, 23)

func TestMessagePrinter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	printer := action.NewMessagePrinterTo(&buf, "pay the rent")

	assert.IsNil(t, printer.Execute(context.Background(), today))
	assert.IsNil(t, printer.Execute(context.Background(), today.AddDays(1)))

	assert.Equal(t, buf.String(), "pay the rent\npay the rent\n")
	assert.Equal(t, printer.Message(), "pay the rent")
	assert.Equal(t, printer.Description(), "MessagePrinter::pay the rent")
}

func TestShellAction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		cmd            string
		expectedStdout string
		expectedStderr string
		expectedCode   int
		expectedStatus action.Status
	}{
		{
			name:           "date variable",
			cmd:            "echo $" + action.DateEnv,
			expectedStdout: "2010-09-23\n",
			expectedStatus: action.StatusOK,
		},
		{
			name:           "stderr",
			cmd:            "printf error >&2",
			expectedStderr: "error",
			expectedStatus: action.StatusOK,
		},
		{
			name:           "exit code",
			cmd:            "exit 3",
			expectedCode:   3,
			expectedStatus: action.StatusFailure,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			shell := action.NewShellAction(tt.cmd)
			assert.Equal(t, shell.Status(), action.StatusNA)

			err := shell.Execute(context.Background(), today)
			assert.Equal(t, err != nil, tt.expectedStatus == action.StatusFailure)
			assert.Equal(t, shell.Stdout(), tt.expectedStdout)
			assert.Equal(t, shell.Stderr(), tt.expectedStderr)
			assert.Equal(t, shell.ExitCode(), tt.expectedCode)
			assert.Equal(t, shell.Status(), tt.expectedStatus)
			assert.Equal(t, shell.Description(), "ShellAction::"+tt.cmd)
		})
	}
}

func TestShellActionWithCallback(t *testing.T) {
	t.Parallel()
	stdout := make(chan string, 1)
	shell := action.NewShellActionWithCallback("printf done",
		func(_ context.Context, sh *action.ShellAction) {
			stdout <- sh.Stdout()
		})

	assert.IsNil(t, shell.Execute(context.Background(), today))
	assert.Equal(t, <-stdout, "done")
}

func TestShellActionCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shell := action.NewShellAction("sleep 5")
	assert.NotNil(t, shell.Execute(ctx, today))
	assert.Equal(t, shell.Status(), action.StatusFailure)
}

func TestFunctionAction(t *testing.T) {
	t.Parallel()
	weekday := action.NewFunctionAction(func(_ context.Context, date calendar.Date) (string, error) {
		return date.Weekday().String(), nil
	})
	assert.Equal(t, weekday.Status(), action.StatusNA)
	assert.IsNil(t, weekday.Result())
	assert.True(t, strings.HasPrefix(weekday.Description(), "FunctionAction::0x"))

	assert.IsNil(t, weekday.Execute(context.Background(), today))
	assert.Equal(t, weekday.Status(), action.StatusOK)
	assert.Equal(t, *weekday.Result(), "Thursday")
	assert.IsNil(t, weekday.Error())

	errFailed := errors.New("failed")
	failing := action.NewFunctionActionWithDesc("failing",
		func(_ context.Context, _ calendar.Date) (int, error) {
			return 0, errFailed
		})
	assert.ErrorIs(t, failing.Execute(context.Background(), today), errFailed)
	assert.Equal(t, failing.Status(), action.StatusFailure)
	assert.IsNil(t, failing.Result())
	assert.ErrorIs(t, failing.Error(), errFailed)
	assert.Equal(t, failing.Description(), "failing")
}

func TestIsolatedAction(t *testing.T) {
	t.Parallel()
	var n atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	isolated := action.NewIsolated(action.NewFunctionAction(
		func(_ context.Context, _ calendar.Date) (bool, error) {
			n.Add(1)
			close(started)
			<-release
			return true, nil
		}))

	done := make(chan error)
	go func() {
		done <- isolated.Execute(context.Background(), today)
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("action did not start")
	}
	assert.ErrorIs(t, isolated.Execute(context.Background(), today), action.ErrRunning)

	close(release)
	assert.IsNil(t, <-done)
	assert.Equal(t, n.Load(), int32(1))
}

func TestStatusString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, action.StatusNA.String(), "n/a")
	assert.Equal(t, action.StatusOK.String(), "ok")
	assert.Equal(t, action.StatusFailure.String(), "failure")
}
