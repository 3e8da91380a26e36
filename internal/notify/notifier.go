package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/genricoloni/displayfollow/internal/domain"
	"go.uber.org/zap"
)

const (
	appName  = "displayfollow"
	iconName = "dialog-warning"
	expireMs = 5000
)

// NopNotifier discards notifications
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(ctx context.Context, summary, body string) error {
	return nil
}

// Close does nothing
func (NopNotifier) Close() error {
	return nil
}

// DBusNotifier shows desktop notifications through the freedesktop Notifications service.
// Repeated notifications replace the previous bubble instead of stacking.
type DBusNotifier struct {
	logger *zap.Logger
	dial   func() (DBusClient, error)

	mu     sync.Mutex
	client DBusClient
	lastID uint32
}

// NewDBusNotifier creates a notifier that connects to the session bus on first use
func NewDBusNotifier(logger *zap.Logger) *DBusNotifier {
	return &DBusNotifier{
		logger: logger,
		dial: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
	}
}

// Notify sends a notification, connecting first if needed
func (n *DBusNotifier) Notify(ctx context.Context, summary, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.client == nil {
		client, err := n.dial()
		if err != nil {
			return fmt.Errorf("session bus connection failed: %w", err)
		}
		n.client = client
	}

	id, err := n.client.Notify(ctx, appName, n.lastID, iconName, summary, body, expireMs)
	if err != nil {
		return fmt.Errorf("notification failed: %w", err)
	}
	n.lastID = id

	n.logger.Debug("Desktop notification sent", zap.Uint32("id", id), zap.String("summary", summary))
	return nil
}

// Close closes the D-Bus connection if one was opened
func (n *DBusNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.client == nil {
		return nil
	}
	err := n.client.Close()
	n.client = nil
	return err
}

// Closer is a notifier holding resources
type Closer interface {
	domain.Notifier
	Close() error
}

// NewNotifier returns a D-Bus notifier when failure notifications are enabled
func NewNotifier(cfg domain.Config, logger *zap.Logger) Closer {
	if !cfg.GetNotifyOnFailure() {
		return NopNotifier{}
	}
	logger.Info("Desktop notifications enabled for failed updates")
	return NewDBusNotifier(logger)
}
