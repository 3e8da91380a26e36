package notify

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsName   = "org.freedesktop.Notifications"
	notificationsPath   = "/org/freedesktop/Notifications"
	notificationsMethod = "org.freedesktop.Notifications.Notify"
)

// DBusClient defines the D-Bus operations the notifier needs.
// This abstraction allows us to fake the session bus in tests.
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Notify calls org.freedesktop.Notifications.Notify and returns the notification id
	Notify(ctx context.Context, appName string, replacesID uint32, icon, summary, body string, expireMs int32) (uint32, error)
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient opens a private connection to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Notify shows a desktop notification
func (c *StdDBusClient) Notify(ctx context.Context, appName string, replacesID uint32, icon, summary, body string, expireMs int32) (uint32, error) {
	obj := c.conn.Object(notificationsName, dbus.ObjectPath(notificationsPath))

	var id uint32
	err := obj.CallWithContext(ctx, notificationsMethod, 0,
		appName, replacesID, icon, summary, body,
		[]string{}, map[string]dbus.Variant{}, expireMs,
	).Store(&id)
	return id, err
}
