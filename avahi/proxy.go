package avahi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Artiqlate/gpsshare/utils"
	"github.com/godbus/dbus/v5"
)

// DefaultTimeout bounds the wait for a method reply.
const DefaultTimeout = 2000 * time.Millisecond

// Proxy stands for one remote object: a bus name, an object path and the
// interface the calls are addressed to. It holds no state between calls.
type Proxy struct {
	name    string
	path    dbus.ObjectPath
	iface   string
	conn    Conn
	timeout time.Duration
}

// NewProxy performs no I/O. A zero timeout selects DefaultTimeout.
func NewProxy(name string, path dbus.ObjectPath, iface string, conn Conn, timeout time.Duration) (*Proxy, error) {
	if name == "" {
		return nil, errors.New("avahi: proxy needs a bus name")
	}
	if !path.IsValid() {
		return nil, fmt.Errorf("avahi: invalid object path %q", path)
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: proxy needs a connection", ErrConnection)
	}
	if busConn, ok := conn.(*dbus.Conn); ok && busConn == nil {
		return nil, fmt.Errorf("%w: proxy needs a connection", ErrConnection)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Proxy{name: name, path: path, iface: iface, conn: conn, timeout: timeout}, nil
}

func (p *Proxy) Destination() string   { return p.name }
func (p *Proxy) Path() dbus.ObjectPath { return p.path }
func (p *Proxy) Interface() string     { return p.iface }

func (p *Proxy) newMessage(method string, expectReply bool, args []interface{}) *dbus.Message {
	msg := &dbus.Message{
		Type: dbus.TypeMethodCall,
		Headers: map[dbus.HeaderField]dbus.Variant{
			dbus.FieldDestination: dbus.MakeVariant(p.name),
			dbus.FieldPath:        dbus.MakeVariant(p.path),
			dbus.FieldInterface:   dbus.MakeVariant(p.iface),
			dbus.FieldMember:      dbus.MakeVariant(utils.ToCamel(method)),
		},
		Body: args,
	}
	if !expectReply {
		msg.Flags |= dbus.FlagNoReplyExpected
	}
	if len(args) > 0 {
		msg.Headers[dbus.FieldSignature] = dbus.MakeVariant(dbus.SignatureOf(args...))
	}
	return msg
}

// Call invokes the snake_case method with args in order. With expectReply it
// blocks until the reply body arrives or the timeout passes; without it, it
// returns once the connection has accepted the message and any failure on
// the daemon side is lost.
func (p *Proxy) Call(ctx context.Context, method string, expectReply bool, args ...interface{}) ([]interface{}, error) {
	member := utils.GenerateMethod(p.iface, method)
	msg := p.newMessage(method, expectReply, args)

	if !expectReply {
		call := p.conn.SendWithContext(ctx, msg, make(chan *dbus.Call, 1))
		if call == nil {
			return nil, fmt.Errorf("%s: %w: message not accepted", member, ErrConnection)
		}
		return nil, classifyErr(member, call.Err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	call := p.conn.SendWithContext(ctx, msg, make(chan *dbus.Call, 1))
	if call == nil {
		return nil, fmt.Errorf("%s: %w: message not accepted", member, ErrConnection)
	}
	select {
	case reply := <-call.Done:
		if reply.Err != nil {
			return nil, classifyErr(member, reply.Err)
		}
		return reply.Body, nil
	case <-ctx.Done():
		return nil, classifyErr(member, ctx.Err())
	}
}
