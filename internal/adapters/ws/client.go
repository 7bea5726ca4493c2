// Package ws connects the reconciler to the upstream push channel.
package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"trustdesk/internal/logging"
)

// closeGrace bounds how long the close frame may take to write.
const closeGrace = time.Second

// Sink receives frames and connection state. *feed.Reconciler satisfies it.
type Sink interface {
	Ingest(raw []byte) error
	SetConnected(bool)
	Connected() bool
}

// Client holds at most one push-channel connection. It never reconnects on
// its own; anything missed while disconnected is lost.
type Client struct {
	url    string
	dialer *websocket.Dialer
	sink   Sink
	log    *logrus.Logger

	mu      sync.Mutex
	running bool
}

func New(url string, sink Sink, log *logrus.Logger) *Client {
	return &Client{url: url, dialer: websocket.DefaultDialer, sink: sink, log: log}
}

// Start opens the connection in the background unless one is already live.
func (c *Client) Start(ctx context.Context) bool {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return false
	}
	c.running = true
	c.mu.Unlock()

	go func() {
		if err := c.Run(ctx); err != nil {
			logging.LogError(c.log, "ws", "Start", "push channel", c.url, err)
		}
	}()
	return true
}

func (c *Client) Connected() bool { return c.sink.Connected() }

// Run dials once and pumps frames into the sink until the socket drops or ctx
// ends. Cancelling ctx closes the socket.
func (c *Client) Run(ctx context.Context) error {
	c.mu.Lock()
	c.running = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		c.sink.SetConnected(false)
		return fmt.Errorf("dial %s: %w", c.url, err)
	}
	c.sink.SetConnected(true)
	c.log.WithField("url", c.url).Info("connected to live service")

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// WriteControl may run alongside other writers; WriteMessage may not.
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(closeGrace))
			_ = conn.Close()
		case <-done:
		}
	}()

	defer func() {
		_ = conn.Close()
		c.sink.SetConnected(false)
		c.log.WithField("url", c.url).Info("disconnected from live service")
	}()

	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			var ce *websocket.CloseError
			if errors.As(err, &ce) {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		if mt != websocket.TextMessage {
			continue
		}
		// malformed frames are logged by the sink and dropped
		_ = c.sink.Ingest(data)
	}
}
