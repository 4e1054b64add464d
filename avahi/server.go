package avahi

import (
	"context"
	"fmt"
	"time"

	"github.com/Artiqlate/gpsshare/utils"
	"github.com/godbus/dbus/v5"
)

const (
	BusName                  = "org.freedesktop.Avahi"
	RootPath dbus.ObjectPath = "/"
)

// Server is the daemon's root object.
type Server struct {
	proxy *Proxy
}

func NewServer(conn Conn, timeout time.Duration) (*Server, error) {
	proxy, proxyErr := NewProxy(BusName, RootPath, utils.AvahiServerInterface, conn, timeout)
	if proxyErr != nil {
		return nil, proxyErr
	}
	return &Server{proxy: proxy}, nil
}

// EntryGroupNew asks the daemon for a fresh entry group and returns its path.
func (s *Server) EntryGroupNew(ctx context.Context) (dbus.ObjectPath, error) {
	body, callErr := s.proxy.Call(ctx, "entry_group_new", true)
	if callErr != nil {
		return "", callErr
	}
	if len(body) != 1 {
		return "", fmt.Errorf("EntryGroupNew: %w: want 1 argument, got %d", ErrMalformedReply, len(body))
	}
	path, ok := body[0].(dbus.ObjectPath)
	if !ok {
		return "", fmt.Errorf("EntryGroupNew: %w: want object path, got %T", ErrMalformedReply, body[0])
	}
	if !path.IsValid() {
		return "", fmt.Errorf("EntryGroupNew: %w: invalid object path %q", ErrMalformedReply, path)
	}
	return path, nil
}
