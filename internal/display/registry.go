package display

import (
	"context"
	"errors"

	"github.com/genricoloni/displayfollow/internal/domain"
	"go.uber.org/zap"
)

// ErrNoDisplays is returned by sources that found nothing to report
var ErrNoDisplays = errors.New("no displays detected")

// Fallback is used whenever the display listing fails or is empty
var Fallback = domain.DisplayGeometry{
	Index:  0,
	X:      0,
	Y:      0,
	Width:  1920,
	Height: 1080,
	IsMain: true,
	Name:   "Display-0",
	ID:     "Display-0",
}

// Registry is the immutable, non-empty list of displays known to the watcher
type Registry struct {
	displays []domain.DisplayGeometry
}

// NewRegistry builds a registry from displays, substituting Fallback for an empty list
func NewRegistry(displays []domain.DisplayGeometry) *Registry {
	if len(displays) == 0 {
		return &Registry{displays: []domain.DisplayGeometry{Fallback}}
	}
	cp := make([]domain.DisplayGeometry, len(displays))
	copy(cp, displays)
	return &Registry{displays: cp}
}

// LoadRegistry queries the source once. Failures are logged and yield the fallback registry.
func LoadRegistry(ctx context.Context, source domain.DisplaySource, logger *zap.Logger) *Registry {
	displays, err := source.Displays(ctx)
	if err != nil {
		logger.Warn("Display listing failed, falling back to a single 1920x1080 display",
			zap.Error(err))
		return NewRegistry(nil)
	}
	if len(displays) == 0 {
		logger.Warn("Display listing returned no active outputs, falling back to a single 1920x1080 display")
		return NewRegistry(nil)
	}

	for _, d := range displays {
		logger.Info("Display detected",
			zap.Int("index", d.Index),
			zap.String("name", d.Name),
			zap.Int("x", d.X),
			zap.Int("y", d.Y),
			zap.Int("width", d.Width),
			zap.Int("height", d.Height),
			zap.Bool("main", d.IsMain))
	}

	return NewRegistry(displays)
}

// Displays returns a copy of the registered displays
func (r *Registry) Displays() []domain.DisplayGeometry {
	cp := make([]domain.DisplayGeometry, len(r.displays))
	copy(cp, r.displays)
	return cp
}

// Len returns the number of displays
func (r *Registry) Len() int {
	return len(r.displays)
}

// Resolve returns the display owning the cursor: the first display containing it,
// else the first main display, else the first display.
func (r *Registry) Resolve(pos domain.CursorPosition) domain.DisplayGeometry {
	for _, d := range r.displays {
		if d.Contains(pos.X, pos.Y) {
			return d
		}
	}
	for _, d := range r.displays {
		if d.IsMain {
			return d
		}
	}
	return r.displays[0]
}
