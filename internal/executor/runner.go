package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// ErrCommandNotFound is returned when the binary is not in PATH
var ErrCommandNotFound = errors.New("command not found")

// ExecRunner runs external programs through os/exec
type ExecRunner struct {
	logger *zap.Logger
}

// NewExecRunner creates a runner that executes commands on the host
func NewExecRunner(logger *zap.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Output runs binary with args and returns stdout.
// Stderr is attached to the error when the command fails.
func (r *ExecRunner) Output(ctx context.Context, binary string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, binary)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to run %s: %w (stderr: %s)",
			binary, err, strings.TrimSpace(stderr.String()))
	}

	r.logger.Debug("Command finished",
		zap.String("command", binary),
		zap.Strings("args", args),
		zap.Int("bytes", stdout.Len()))

	return stdout.Bytes(), nil
}

// CommandExists checks if a binary exists in PATH
func CommandExists(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}
