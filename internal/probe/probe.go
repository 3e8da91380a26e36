package probe

import (
	"fmt"

	"github.com/genricoloni/displayfollow/internal/domain"
	"github.com/genricoloni/displayfollow/internal/executor"
	"go.uber.org/zap"
)

const (
	// SourceXdotool shells out to xdotool on every tick
	SourceXdotool = "xdotool"
	// SourceX11 keeps an X connection open and issues QueryPointer
	SourceX11 = "x11"
)

// NewProbe picks the cursor backend configured by the user
func NewProbe(cfg domain.Config, runner domain.CommandRunner, logger *zap.Logger) (domain.CursorProbe, error) {
	switch cfg.GetCursorSource() {
	case SourceXdotool, "":
		if !executor.CommandExists(cfg.GetXdotoolBinary()) {
			// Not fatal: every tick will fail and be logged until it is installed
			logger.Warn("xdotool not found in PATH, cursor polling will fail",
				zap.String("binary", cfg.GetXdotoolBinary()))
		}
		return NewXdotoolProbe(logger, runner, cfg.GetXdotoolBinary()), nil
	case SourceX11:
		return NewX11Probe(logger), nil
	default:
		return nil, fmt.Errorf("unknown cursor source %q", cfg.GetCursorSource())
	}
}
