package studio

import "errors"

var (
	// ErrNotSignedIn signals an owner operation without a session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrRoomName signals a room submission without a name.
	ErrRoomName = errors.New("room name is required")

	// ErrUnknownInstrument signals an instrument code outside the
	// supported set.
	ErrUnknownInstrument = errors.New("unknown instrument code")
)
