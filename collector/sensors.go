package collector

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// SourceError reports a failed capture: the command could not be launched,
// or it ran and exited non-zero. Stderr carries whatever diagnostic text the
// command produced before dying.
type SourceError struct {
	Command string
	Exited  bool
	Stderr  string
	Err     error
}

func (e *SourceError) Error() string {
	if e.Exited {
		return fmt.Sprintf("%s command failed: %s", e.Command, e.Stderr)
	}
	return fmt.Sprintf("failed to execute %s command: %v", e.Command, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// CommandSource runs an external command (by default `sensors` with no
// arguments) and captures its standard output.
type CommandSource struct {
	Command string
	Args    []string
}

// NewCommandSource creates a source for the given command line.
func NewCommandSource(command string, args ...string) *CommandSource {
	return &CommandSource{Command: command, Args: args}
}

func (s *CommandSource) Name() string { return s.Command }

// RunAndCapture invokes the command once and blocks until it exits. No
// timeout is applied; a hung command stalls the refresh cycle until it
// returns.
func (s *CommandSource) RunAndCapture() (string, error) {
	cmd := exec.Command(s.Command, s.Args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &SourceError{
				Command: s.Command,
				Exited:  true,
				Stderr:  strings.TrimSpace(stderr.String()),
				Err:     err,
			}
		}
		return "", &SourceError{Command: s.Command, Err: err}
	}
	return stdout.String(), nil
}

// Available reports whether the command can be found on PATH.
func (s *CommandSource) Available() bool {
	_, err := exec.LookPath(s.Command)
	return err == nil
}
