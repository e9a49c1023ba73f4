package domain

import "errors"

var (
	// ErrInvalidInput marks a create request whose author or body is empty
	// after trimming. Mapped to a 400 at the HTTP edge.
	ErrInvalidInput = errors.New("author and body are required")

	// ErrStorageUnavailable marks a read or write the repository could not
	// complete. Mapped to a 500 at the HTTP edge.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrBroadcastFull is returned by the hub when a session's buffer is
	// full and the event is dropped. Delivery is at-most-once; callers log
	// this and move on.
	ErrBroadcastFull = errors.New("broadcast buffer full")
)
