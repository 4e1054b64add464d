package avahi

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Conn is the part of *dbus.Conn the proxies send through. A single Conn is
// shared by every proxy derived from it and must outlive them.
type Conn interface {
	SendWithContext(ctx context.Context, msg *dbus.Message, ch chan *dbus.Call) *dbus.Call
}

// ConnectSystemBus opens a private connection to the system bus.
func ConnectSystemBus() (*dbus.Conn, error) {
	conn, connErr := dbus.ConnectSystemBus()
	if connErr != nil {
		return nil, fmt.Errorf("%w: system bus: %v", ErrConnection, connErr)
	}
	return conn, nil
}
