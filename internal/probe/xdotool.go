package probe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/genricoloni/displayfollow/internal/domain"
	"go.uber.org/zap"
)

// ErrInvalidPosition is returned when the probe output lacks numeric X and Y values
var ErrInvalidPosition = errors.New("invalid cursor position")

// XdotoolProbe reads the pointer position with `xdotool getmouselocation --shell`
type XdotoolProbe struct {
	logger *zap.Logger
	runner domain.CommandRunner
	binary string
}

// NewXdotoolProbe creates a probe backed by the xdotool command
func NewXdotoolProbe(logger *zap.Logger, runner domain.CommandRunner, binary string) *XdotoolProbe {
	return &XdotoolProbe{logger: logger, runner: runner, binary: binary}
}

// Position runs xdotool once and parses its shell-style output
func (p *XdotoolProbe) Position(ctx context.Context) (domain.CursorPosition, error) {
	out, err := p.runner.Output(ctx, p.binary, "getmouselocation", "--shell")
	if err != nil {
		return domain.CursorPosition{}, fmt.Errorf("cursor query failed: %w", err)
	}
	return ParseShellLocation(string(out))
}

// ParseShellLocation parses newline-separated KEY=VALUE pairs, e.g.
//
//	X=2400
//	Y=512
//	SCREEN=0
//	WINDOW=73400327
func ParseShellLocation(output string) (domain.CursorPosition, error) {
	values := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(strings.TrimSpace(output)))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok || key == "" {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	x, errX := strconv.Atoi(values["X"])
	y, errY := strconv.Atoi(values["Y"])
	if errX != nil || errY != nil {
		return domain.CursorPosition{}, fmt.Errorf("%w: %q", ErrInvalidPosition, output)
	}

	return domain.CursorPosition{X: x, Y: y}, nil
}
