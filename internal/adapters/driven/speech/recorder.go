package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoRecordCommand indicates an empty record command.
var ErrNoRecordCommand = errors.New("no record command configured")

// Recorder captures one utterance of raw audio.
type Recorder interface {
	Record(ctx context.Context) ([]byte, error)
}

// CommandRecorder runs an external program and returns its stdout.
// The command is split on whitespace and run without a shell, e.g.
// "arecord -q -f S16_LE -r 16000 -c 1 -d 5 -t raw".
type CommandRecorder struct {
	args []string
}

// NewCommandRecorder parses command into a recorder.
func NewCommandRecorder(command string) (*CommandRecorder, error) {
	args := strings.Fields(command)
	if len(args) == 0 {
		return nil, ErrNoRecordCommand
	}
	return &CommandRecorder{args: args}, nil
}

// Available reports whether the program is on PATH.
func (r *CommandRecorder) Available() bool {
	_, err := exec.LookPath(r.args[0])
	return err == nil
}

// Record runs the command until it exits or ctx is cancelled.
func (r *CommandRecorder) Record(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.args[0], r.args[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("record audio: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("record audio: %w", err)
	}
	return out, nil
}
