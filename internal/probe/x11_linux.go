//go:build linux
// +build linux

package probe

import (
	"context"
	"fmt"
	"sync"

	"github.com/genricoloni/displayfollow/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

// X11Probe queries the pointer directly from the X server.
// The connection is opened lazily and reopened after a failed query.
type X11Probe struct {
	logger *zap.Logger
	mu     sync.Mutex
	conn   *xgb.Conn
	root   xproto.Window
}

// NewX11Probe creates a probe that talks to $DISPLAY over the X11 protocol
func NewX11Probe(logger *zap.Logger) *X11Probe {
	return &X11Probe{logger: logger}
}

// Position issues a QueryPointer request against the root window
func (p *X11Probe) Position(ctx context.Context) (domain.CursorPosition, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return domain.CursorPosition{}, err
	}

	if p.conn == nil {
		conn, err := xgb.NewConn()
		if err != nil {
			return domain.CursorPosition{}, fmt.Errorf("failed to connect to X server: %w", err)
		}
		p.conn = conn
		p.root = xproto.Setup(conn).DefaultScreen(conn).Root
		p.logger.Info("X11 pointer probe connected")
	}

	reply, err := xproto.QueryPointer(p.conn, p.root).Reply()
	if err != nil {
		p.conn.Close()
		p.conn = nil
		return domain.CursorPosition{}, fmt.Errorf("QueryPointer failed: %w", err)
	}

	return domain.CursorPosition{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

// Close releases the X connection
func (p *X11Probe) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
	return nil
}
