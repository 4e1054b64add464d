// Package avahi publishes the gps-share NMEA-0183 service through the
// avahi-daemon D-Bus API.
package avahi

import (
	"context"
	"sync"
	"time"

	"github.com/Artiqlate/gpsshare/utils"
	"github.com/godbus/dbus/v5"
)

// Record constants advertised by Publish.
const (
	IfIndexUnspec  int32  = -1
	ProtoUnspec    int32  = -1
	NoFlags        uint32 = 0
	InstanceName          = "gps-share"
	ServiceType           = "_nmea-0183._tcp"
	DefaultDomain         = ""
	DefaultHost           = ""
	NoText                = ""
)

type State int

const (
	StateStart State = iota
	// StateGroupCreated: the daemon handed out a group, but adding the
	// record or committing it failed.
	StateGroupCreated
	// StateRequested: AddService and Commit were accepted locally only.
	StateRequested
	// StatePublished: the daemon replied to AddService and Commit.
	StatePublished
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateGroupCreated:
		return "group-created"
	case StateRequested:
		return "requested"
	case StatePublished:
		return "published"
	}
	return "unknown"
}

type Option func(*Avahi)

// WithTimeout overrides the reply timeout of every call.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Avahi) {
		a.timeout = timeout
	}
}

func WithLogf(logf func(string, ...interface{})) Option {
	return func(a *Avahi) {
		a.logf = logf
	}
}

// Avahi drives the publication handshake: EntryGroupNew on the server, then
// AddService and Commit on the returned group. Publish calls are serialised.
type Avahi struct {
	logf    func(string, ...interface{})
	conn    Conn
	owned   *dbus.Conn
	server  *Server
	timeout time.Duration

	mu    sync.Mutex
	state State
}

// New opens its own system bus connection, released by Close.
func New(opts ...Option) (*Avahi, error) {
	busConn, busErr := ConnectSystemBus()
	if busErr != nil {
		return nil, busErr
	}
	client, clientErr := NewWithConn(busConn, opts...)
	if clientErr != nil {
		busConn.Close()
		return nil, clientErr
	}
	client.owned = busConn
	return client, nil
}

// NewWithConn shares conn, which the caller keeps ownership of.
func NewWithConn(conn Conn, opts ...Option) (*Avahi, error) {
	a := &Avahi{
		logf:    utils.PrefixLogf("AVAHI"),
		conn:    conn,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	server, serverErr := NewServer(conn, a.timeout)
	if serverErr != nil {
		return nil, serverErr
	}
	a.server = server
	return a, nil
}

// Publish advertises port as gps-share. Only EntryGroupNew waits for the
// daemon, so a nil error means AddService and Commit were sent, not that the
// daemon accepted them. Each call creates a new entry group.
func (a *Avahi) Publish(port uint16) error {
	return a.publish(context.Background(), port, false)
}

// PublishConfirmed is Publish, also waiting for the AddService and Commit
// replies. A nil error means the daemon accepted the group.
func (a *Avahi) PublishConfirmed(ctx context.Context, port uint16) error {
	return a.publish(ctx, port, true)
}

func (a *Avahi) publish(ctx context.Context, port uint16, confirm bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = StateStart

	// TODO: drop the fire-and-forget path once callers move to PublishConfirmed.
	groupPath, groupErr := a.server.EntryGroupNew(ctx)
	if groupErr != nil {
		a.logf("entry group: %v", groupErr)
		return groupErr
	}
	a.logf("group: %s", groupPath)
	a.state = StateGroupCreated

	group, proxyErr := NewEntryGroup(groupPath, a.conn, a.timeout)
	if proxyErr != nil {
		return proxyErr
	}

	if confirm {
		if addErr := group.AddServiceConfirmed(ctx, IfIndexUnspec, ProtoUnspec, NoFlags,
			InstanceName, ServiceType, DefaultDomain, DefaultHost, port, NoText); addErr != nil {
			return addErr
		}
		if commitErr := group.CommitConfirmed(ctx); commitErr != nil {
			return commitErr
		}
		a.state = StatePublished
		return nil
	}

	if addErr := group.AddService(IfIndexUnspec, ProtoUnspec, NoFlags,
		InstanceName, ServiceType, DefaultDomain, DefaultHost, port, NoText); addErr != nil {
		return addErr
	}
	if commitErr := group.Commit(); commitErr != nil {
		return commitErr
	}
	a.state = StateRequested
	return nil
}

// State reports how far the last publish got. A publish which fails after
// EntryGroupNew stays at StateGroupCreated.
func (a *Avahi) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Close releases the connection opened by New. Injected connections are left alone.
func (a *Avahi) Close() error {
	if a.owned == nil {
		return nil
	}
	closeErr := a.owned.Close()
	a.owned = nil
	return closeErr
}
