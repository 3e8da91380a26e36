//go:build !linux
// +build !linux

package probe

import (
	"context"
	"fmt"

	"github.com/genricoloni/displayfollow/internal/domain"
	"go.uber.org/zap"
)

// X11Probe stub for non-Linux platforms
type X11Probe struct {
	logger *zap.Logger
}

// NewX11Probe creates a stub probe that always fails on non-Linux platforms
func NewX11Probe(logger *zap.Logger) *X11Probe {
	return &X11Probe{logger: logger}
}

// Position returns an error indicating X11 is not supported on this platform
func (p *X11Probe) Position(ctx context.Context) (domain.CursorPosition, error) {
	return domain.CursorPosition{}, fmt.Errorf("X11 pointer queries are only supported on Linux systems")
}

// Close is a no-op on non-Linux platforms
func (p *X11Probe) Close() error {
	return nil
}
