package server

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"

	"github.com/pkg/errors"

	"github.com/pbui/pokerd/game"
	"github.com/pbui/pokerd/logging"
)

var serverLogger = logging.GetZeroLogger("server::server", nil)

// Server owns the player listener: it accepts connections, wraps each
// in the line transport, and runs one PlayerActor loop per connection.
// Connection failures stay isolated to their own actor.
type Server struct {
	config game.Config
	table  *game.Table

	listener net.Listener
	started  chan struct{}
}

// New creates a server for the given table.
func New(config game.Config, table *game.Table) *Server {
	return &Server{
		config:  config,
		table:   table,
		started: make(chan struct{}),
	}
}

// Serve binds the configured address and accepts players until the
// context is canceled.
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.ListenAddr())
	if err != nil {
		return errors.Wrapf(err, "Unable to listen on %s", s.config.ListenAddr())
	}
	s.listener = listener
	close(s.started)
	serverLogger.Info().Str("address", listener.Addr().String()).Msg("Serving")

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "Error accepting connection")
		}
		go s.handleConnection(ctx, conn)
	}
}

// Addr returns the bound listener address, blocking until Serve has
// bound it or the context ends.
func (s *Server) Addr(ctx context.Context) (string, error) {
	select {
	case <-s.started:
		return s.listener.Addr().String(), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	actor := game.NewPlayerActor(s.table, newLineConn(conn))
	serverLogger.Info().Str(logging.AddressKey, conn.RemoteAddr().String()).Msg("Player connected")

	err := actor.Run(ctx)
	var disconnected *game.PeerDisconnectedError
	switch {
	case err == nil || errors.As(err, &disconnected) || errors.Is(err, context.Canceled):
		serverLogger.Info().Str(logging.PlayerNameKey, actor.Name()).Msg("Player disconnected")
	default:
		serverLogger.Error().Str(logging.PlayerNameKey, actor.Name()).Msg(err.Error())
	}
}

// lineConn adapts a net.Conn to the table's line discipline: every
// delivered line is prefixed with a newline, or a carriage return when
// redrawing a waiting counter in place; responses are trimmed and
// lowercased.
type lineConn struct {
	conn   net.Conn
	reader *bufio.Reader
}

func newLineConn(conn net.Conn) *lineConn {
	return &lineConn{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

func (c *lineConn) WriteLines(text string, overwrite bool) error {
	prefix := "\n"
	if overwrite {
		prefix = "\r"
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(prefix)
		b.WriteString(line)
	}
	_, err := io.WriteString(c.conn, b.String())
	return errors.Wrap(err, "Error writing to player")
}

func (c *lineConn) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "Error reading from player")
	}
	response := strings.ToLower(strings.TrimSpace(line))
	if response == "" {
		return "", &game.MalformedResponseError{Msg: "empty response line"}
	}
	return response, nil
}

func (c *lineConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
