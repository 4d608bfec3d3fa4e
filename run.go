package imgcap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// ExitError reports an external command that started but exited nonzero.
// Stderr carries the command's diagnostic output verbatim.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Cmd, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", e.Cmd, e.Code)
}

// LaunchError reports an external command that could not be started at all,
// for example because the executable is not installed.
type LaunchError struct {
	Cmd string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Cmd, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Run executes an external command and waits for it to finish, capturing its
// standard error stream. A nonzero exit is returned as *ExitError, a command
// that could not be started as *LaunchError. When verbose is set the command
// line is echoed before running.
func Run(ctx context.Context, verbose bool, name string, args ...string) error {
	if verbose {
		log.Printf("running: %s %s", name, strings.Join(args, " "))
	}
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if verbose {
		cmd.Stdout = os.Stdout
	}
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var xerr *exec.ExitError
	if errors.As(err, &xerr) {
		return &ExitError{Cmd: name, Code: xerr.ExitCode(), Stderr: strings.TrimSpace(stderr.String())}
	}
	return &LaunchError{Cmd: name, Err: err}
}
