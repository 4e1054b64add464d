package avahi

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

var (
	// ErrConnection means the bus could not be reached or refused the message.
	ErrConnection = errors.New("avahi: bus connection error")
	// ErrTimeout means no reply arrived before the call timeout.
	ErrTimeout = errors.New("avahi: timed out waiting for reply")
	// ErrMalformedReply means a reply arrived but did not have the expected shape.
	ErrMalformedReply = errors.New("avahi: malformed reply")
	// ErrRemote matches any *RemoteError through errors.Is.
	ErrRemote = errors.New("avahi: remote error")
)

// RemoteError is an error reply sent back by the daemon.
type RemoteError struct {
	Method  string
	Name    string
	Details []interface{}
}

func (e *RemoteError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("avahi: %s: %s", e.Method, e.Name)
	}
	return fmt.Sprintf("avahi: %s: %s: %v", e.Method, e.Name, e.Details)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// classifyErr maps errors coming out of godbus onto the package error kinds.
func classifyErr(method string, err error) error {
	if err == nil {
		return nil
	}
	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		return &RemoteError{Method: method, Name: dbusErr.Name, Details: dbusErr.Body}
	}
	var dbusErrPtr *dbus.Error
	if errors.As(err, &dbusErrPtr) && dbusErrPtr != nil {
		return &RemoteError{Method: method, Name: dbusErrPtr.Name, Details: dbusErrPtr.Body}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", method, ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", method, err)
	}
	return fmt.Errorf("%s: %w: %v", method, ErrConnection, err)
}
