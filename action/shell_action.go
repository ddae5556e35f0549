package action

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/reugn/go-remind/calendar"
)

// DateEnv is the environment variable holding the matched date, in the
// YYYY-MM-DD form, while a ShellAction runs.
const DateEnv = "REMIND_DATE"

// ShellAction runs a shell command for every matched date.
// The command is executed using bash if available; otherwise, sh is used.
type ShellAction struct {
	mtx      sync.Mutex
	cmd      string
	exitCode int
	stdout   string
	stderr   string
	status   Status
	callback func(context.Context, *ShellAction)
}

var _ Action = (*ShellAction)(nil)

// NewShellAction returns a new ShellAction for the given command.
func NewShellAction(cmd string) *ShellAction {
	return &ShellAction{
		cmd:    cmd,
		status: StatusNA,
	}
}

// NewShellActionWithCallback returns a new ShellAction with the given
// callback, invoked after every execution.
func NewShellActionWithCallback(cmd string, f func(context.Context, *ShellAction)) *ShellAction {
	return &ShellAction{
		cmd:      cmd,
		status:   StatusNA,
		callback: f,
	}
}

// Description returns the description of the ShellAction.
func (sh *ShellAction) Description() string {
	return fmt.Sprintf("ShellAction%s%s", Sep, sh.cmd)
}

var (
	shellOnce = sync.Once{}
	shellPath = "bash"
)

func getShell() string {
	shellOnce.Do(func() {
		if _, err := exec.LookPath("/bin/bash"); err != nil {
			shellPath = "sh"
		}
	})
	return shellPath
}

// Execute runs the command with DateEnv set to date.
func (sh *ShellAction) Execute(ctx context.Context, date calendar.Date) error {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, getShell(), "-c", sh.cmd)
	cmd.Env = append(os.Environ(), DateEnv+"="+date.String())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	sh.mtx.Lock()
	sh.stdout, sh.stderr = stdout.String(), stderr.String()
	sh.exitCode = -1
	if cmd.ProcessState != nil {
		sh.exitCode = cmd.ProcessState.ExitCode()
	}
	sh.status = statusOf(err)
	sh.mtx.Unlock()

	if sh.callback != nil {
		sh.callback(ctx, sh)
	}
	return err
}

// ExitCode returns the exit code of the last execution.
func (sh *ShellAction) ExitCode() int {
	sh.mtx.Lock()
	defer sh.mtx.Unlock()
	return sh.exitCode
}

// Stdout returns the captured stdout output of the last execution.
func (sh *ShellAction) Stdout() string {
	sh.mtx.Lock()
	defer sh.mtx.Unlock()
	return sh.stdout
}

// Stderr returns the captured stderr output of the last execution.
func (sh *ShellAction) Stderr() string {
	sh.mtx.Lock()
	defer sh.mtx.Unlock()
	return sh.stderr
}

// Status returns the status of the last execution.
func (sh *ShellAction) Status() Status {
	sh.mtx.Lock()
	defer sh.mtx.Unlock()
	return sh.status
}
