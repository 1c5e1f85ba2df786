package game

import "fmt"

// PeerDisconnectedError reports a player whose connection went away.
// It is expected and recoverable at the table level: the player is
// treated as an implicit fold and removed from the roster.
type PeerDisconnectedError struct {
	Player string
	Err    error
}

func (e *PeerDisconnectedError) Error() string {
	return fmt.Sprintf("player %s disconnected: %v", e.Player, e.Err)
}

func (e *PeerDisconnectedError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports an empty or unreadable response line.
// The player is re-prompted; it is never treated as a fold.
type MalformedResponseError struct {
	Msg string
}

func (e *MalformedResponseError) Error() string {
	if e.Msg == "" {
		return "malformed response"
	}
	return e.Msg
}
