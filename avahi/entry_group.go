package avahi

import (
	"context"
	"time"

	"github.com/Artiqlate/gpsshare/utils"
	"github.com/godbus/dbus/v5"
)

// EntryGroup is a daemon-side set of records, visible to peers after Commit.
type EntryGroup struct {
	proxy *Proxy
}

func NewEntryGroup(path dbus.ObjectPath, conn Conn, timeout time.Duration) (*EntryGroup, error) {
	proxy, proxyErr := NewProxy(BusName, path, utils.AvahiEntryGroupInterface, conn, timeout)
	if proxyErr != nil {
		return nil, proxyErr
	}
	return &EntryGroup{proxy: proxy}, nil
}

func (g *EntryGroup) Path() dbus.ObjectPath {
	return g.proxy.Path()
}

// AddService queues a service record without waiting for the daemon.
func (g *EntryGroup) AddService(ifindex int32, protocol int32, flags uint32,
	name string, serviceType string, domain string,
	host string, port uint16, text string) error {
	_, callErr := g.proxy.Call(context.Background(), "add_service", false,
		ifindex, protocol, flags, name, serviceType, domain, host, port, text)
	return callErr
}

// AddServiceConfirmed is AddService, waiting for the daemon's reply.
func (g *EntryGroup) AddServiceConfirmed(ctx context.Context, ifindex int32, protocol int32, flags uint32,
	name string, serviceType string, domain string,
	host string, port uint16, text string) error {
	_, callErr := g.proxy.Call(ctx, "add_service", true,
		ifindex, protocol, flags, name, serviceType, domain, host, port, text)
	return callErr
}

// Commit publishes the group without waiting for the daemon.
func (g *EntryGroup) Commit() error {
	_, callErr := g.proxy.Call(context.Background(), "commit", false)
	return callErr
}

func (g *EntryGroup) CommitConfirmed(ctx context.Context) error {
	_, callErr := g.proxy.Call(ctx, "commit", true)
	return callErr
}
