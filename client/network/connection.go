// Package network maintains the websocket connection to the game
// server and pumps inbound messages through the message handler.
package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/castlegate/frontier/pkg/journal"
	"github.com/castlegate/frontier/pkg/log"
	"github.com/castlegate/frontier/pkg/messages"
)

// MessageHandler consumes one inbound message and returns the reply
// the server is waiting for, or nil when none is required.
type MessageHandler interface {
	Handle(msg *messages.Message) (*messages.Message, error)
}

// Connection is a websocket connection to the game server. Inbound
// messages are handled strictly in arrival order on the goroutine
// running Run; this ordering is what the message handlers rely on.
type Connection struct {
	serverURL string
	handler   MessageHandler
	journal   *journal.Journal

	conn *websocket.Conn
	// writeMu serializes writes: replies go out from the delivery
	// goroutine while player actions arrive from the interactive one.
	writeMu sync.Mutex
}

type NewConnectionOptions struct {
	ServerURL string
	Handler   MessageHandler
	Journal   *journal.Journal
}

// NewConnection creates a connection. Connect must be called before
// Run or Send.
func NewConnection(opts NewConnectionOptions) *Connection {
	return &Connection{
		serverURL: opts.ServerURL,
		handler:   opts.Handler,
		journal:   opts.Journal,
	}
}

// Connect establishes the websocket connection.
func (c *Connection) Connect() error {
	log.Info("Connecting to server at %s", c.serverURL)
	conn, _, err := websocket.DefaultDialer.Dial(c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	c.conn = conn
	return nil
}

// Run reads and handles messages until the context is cancelled, the
// connection drops, or a handler reports a fatal error. The calling
// goroutine is the delivery goroutine: it owns all object store
// mutation for the lifetime of the connection.
func (c *Connection) Run(ctx context.Context) error {
	defer c.conn.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error("Error reading message from %s: %v", c.conn.RemoteAddr().String(), err)
			}
			log.Trace("Connection closed for %s", c.conn.RemoteAddr().String())
			return err
		}

		msg, err := messages.DeserializeMessage(frame)
		if err != nil {
			return fmt.Errorf("failed to deserialize message: %v", err)
		}
		c.record(ctx, journal.DirectionInbound, msg.Tag, frame)

		reply, err := c.handler.Handle(msg)
		if err != nil {
			return fmt.Errorf("failed to handle message: %v", err)
		}
		if reply == nil {
			continue
		}
		if err := c.Send(ctx, reply); err != nil {
			return fmt.Errorf("failed to send reply: %v", err)
		}
	}
}

// Send serializes and writes a message to the server.
func (c *Connection) Send(ctx context.Context, msg *messages.Message) error {
	frame, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return fmt.Errorf("failed to write message: %v", err)
	}
	c.record(ctx, journal.DirectionOutbound, msg.Tag, frame)
	return nil
}

// Close closes the websocket connection.
func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// record journals a frame. The journal is diagnostics, not state:
// failures are logged and traffic continues.
func (c *Connection) record(ctx context.Context, direction, tag string, frame []byte) {
	if c.journal == nil {
		return
	}
	if err := c.journal.Record(ctx, direction, tag, frame); err != nil {
		log.Warn("Failed to journal %s %s frame: %v", direction, tag, err)
	}
}
