package game

// Conn is the per-player transport the table logic needs: deliver a
// block of text line by line, and read a single trimmed, lowercased
// response line. The network listener owns the real connection; tests
// substitute an in-memory implementation.
type Conn interface {
	// WriteLines writes each line of text prefixed with a newline, or
	// with a carriage return when overwrite is set so a progress
	// counter can redraw in place.
	WriteLines(text string, overwrite bool) error

	// ReadLine reads one response line, trimmed and lowercased. An
	// empty line is reported as a *MalformedResponseError so the
	// caller can re-prompt.
	ReadLine() (string, error)

	// RemoteAddr identifies the peer for display and logging.
	RemoteAddr() string
}
