package avahi

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

// sentCall is one message as seen by fakeBus.
type sentCall struct {
	Destination string
	Path        dbus.ObjectPath
	Interface   string
	Member      string
	NoReply     bool
	Signature   string
	Args        []interface{}
}

type reply struct {
	body    []interface{}
	err     error
	silent  bool
	refused bool
}

// fakeBus stands in for the daemon. Replies are chosen per member; members
// without an entry get an empty successful reply, and EntryGroupNew hands out
// /Client1/EntryGroupN paths.
type fakeBus struct {
	mu      sync.Mutex
	calls   []sentCall
	replies map[string]reply
	groups  int
}

func newFakeBus() *fakeBus {
	return &fakeBus{replies: map[string]reply{}}
}

func (f *fakeBus) on(member string, r reply) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[member] = r
}

func (f *fakeBus) sent() []sentCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentCall(nil), f.calls...)
}

func (f *fakeBus) members() []string {
	var names []string
	for _, c := range f.sent() {
		names = append(names, c.Member)
	}
	return names
}

func headerString(msg *dbus.Message, field dbus.HeaderField) string {
	v, ok := msg.Headers[field]
	if !ok {
		return ""
	}
	switch val := v.Value().(type) {
	case string:
		return val
	case dbus.ObjectPath:
		return string(val)
	case dbus.Signature:
		return val.String()
	}
	return ""
}

func (f *fakeBus) SendWithContext(ctx context.Context, msg *dbus.Message, ch chan *dbus.Call) *dbus.Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	sc := sentCall{
		Destination: headerString(msg, dbus.FieldDestination),
		Path:        dbus.ObjectPath(headerString(msg, dbus.FieldPath)),
		Interface:   headerString(msg, dbus.FieldInterface),
		Member:      headerString(msg, dbus.FieldMember),
		NoReply:     msg.Flags&dbus.FlagNoReplyExpected != 0,
		Signature:   headerString(msg, dbus.FieldSignature),
		Args:        msg.Body,
	}
	f.calls = append(f.calls, sc)

	r, configured := f.replies[sc.Member]
	if r.refused {
		call := &dbus.Call{Err: dbus.ErrClosed, Done: ch}
		ch <- call
		return call
	}
	if sc.NoReply {
		call := &dbus.Call{Done: ch}
		ch <- call
		return call
	}
	if r.silent {
		return &dbus.Call{Done: ch}
	}
	body := r.body
	if !configured && sc.Member == "EntryGroupNew" {
		f.groups++
		body = []interface{}{dbus.ObjectPath(fmt.Sprintf("/Client1/EntryGroup%d", f.groups))}
	}
	call := &dbus.Call{Body: body, Err: r.err, Done: ch}
	ch <- call
	return call
}
