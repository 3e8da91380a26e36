package display

import (
	"context"
	"fmt"
	"image"

	"github.com/genricoloni/displayfollow/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

const (
	// SourceXrandr parses `xrandr --query --current`
	SourceXrandr = "xrandr"
	// SourceScreenshot reads Xinerama bounds through kbinani/screenshot
	SourceScreenshot = "screenshot"
)

// XrandrSource lists displays by running xrandr
type XrandrSource struct {
	logger *zap.Logger
	runner domain.CommandRunner
	binary string
}

// NewXrandrSource creates a source backed by the xrandr command
func NewXrandrSource(logger *zap.Logger, runner domain.CommandRunner, binary string) *XrandrSource {
	return &XrandrSource{logger: logger, runner: runner, binary: binary}
}

// Displays runs xrandr and parses its output
func (s *XrandrSource) Displays(ctx context.Context) ([]domain.DisplayGeometry, error) {
	out, err := s.runner.Output(ctx, s.binary, "--query", "--current")
	if err != nil {
		return nil, fmt.Errorf("xrandr query failed: %w", err)
	}

	displays := ParseXrandr(string(out))
	s.logger.Debug("Parsed xrandr output", zap.Int("displays", len(displays)))
	return displays, nil
}

// ScreenshotSource lists displays through kbinani/screenshot.
// It cannot tell which output is primary, so display 0 is treated as main.
type ScreenshotSource struct {
	logger *zap.Logger
	count  func() int
	bounds func(int) image.Rectangle
}

// NewScreenshotSource creates a source backed by kbinani/screenshot
func NewScreenshotSource(logger *zap.Logger) *ScreenshotSource {
	return &ScreenshotSource{
		logger: logger,
		count:  screenshot.NumActiveDisplays,
		bounds: screenshot.GetDisplayBounds,
	}
}

// Displays returns the bounds of every active display
func (s *ScreenshotSource) Displays(ctx context.Context) ([]domain.DisplayGeometry, error) {
	n := s.count()
	if n <= 0 {
		return nil, ErrNoDisplays
	}

	displays := make([]domain.DisplayGeometry, 0, n)
	for i := 0; i < n; i++ {
		b := s.bounds(i)
		if b.Dx() <= 0 || b.Dy() <= 0 {
			s.logger.Debug("Skipping display with empty bounds", zap.Int("display", i))
			continue
		}
		index := len(displays)
		name := fmt.Sprintf("Display-%d", index)
		displays = append(displays, domain.DisplayGeometry{
			Index:  index,
			X:      b.Min.X,
			Y:      b.Min.Y,
			Width:  b.Dx(),
			Height: b.Dy(),
			IsMain: index == 0,
			Name:   name,
			ID:     name,
		})
	}
	return displays, nil
}

// NewSource picks the display listing backend configured by the user
func NewSource(cfg domain.Config, runner domain.CommandRunner, logger *zap.Logger) (domain.DisplaySource, error) {
	switch cfg.GetDisplaySource() {
	case SourceXrandr, "":
		return NewXrandrSource(logger, runner, cfg.GetXrandrBinary()), nil
	case SourceScreenshot:
		return NewScreenshotSource(logger), nil
	default:
		return nil, fmt.Errorf("unknown display source %q", cfg.GetDisplaySource())
	}
}
