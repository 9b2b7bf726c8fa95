package relay

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"drivethru/internal/pkg/config"
	"drivethru/internal/pkg/errs"

	"github.com/gorilla/websocket"
)

// Peer is one live channel as the hub sees it.
type Peer interface {
	// Send queues a frame without blocking; false means it was dropped.
	Send(payload []byte) bool
	Close()
}

// Upgrader accepts any origin; the lane pages and the API are served from the same demo host.
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Conn wraps a websocket with a single writer goroutine fed by a bounded queue.
type Conn struct {
	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	cfg       config.RelayConfig
	logger    *slog.Logger
}

func NewConn(ws *websocket.Conn, cfg config.RelayConfig, logger *slog.Logger) *Conn {
	return &Conn{
		ws:     ws,
		send:   make(chan []byte, cfg.SendBuffer),
		done:   make(chan struct{}),
		cfg:    cfg,
		logger: logger.With("remote_addr", ws.RemoteAddr().String()),
	}
}

func (c *Conn) Send(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	case <-c.done:
		return false
	default:
		c.logger.Warn("relay send queue full, dropping frame", "queued", len(c.send))
		return false
	}
}

func (c *Conn) SendJSON(v any) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("failed to encode relay frame", "error", err)
		return false
	}
	return c.Send(payload)
}

// Close asks the write pump to flush what is queued, send a close frame and drop the socket.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) WritePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			if err := c.write(websocket.TextMessage, payload); err != nil {
				c.logger.Debug("relay write failed", "error", err)
				c.Close()
				return
			}

		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}

		case <-c.done:
			c.drain()
			_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (c *Conn) drain() {
	for {
		select {
		case payload := <-c.send:
			if err := c.write(websocket.TextMessage, payload); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *Conn) write(messageType int, payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(messageType, payload)
}

// ReadPump blocks until the peer goes away or handle fails. A normal close returns nil.
func (c *Conn) ReadPump(handle func(payload []byte) error) error {
	c.ws.SetReadLimit(c.cfg.ReadLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				return errs.Wrap(err, "read relay frame")
			}
			return nil
		}
		if err := handle(payload); err != nil {
			return err
		}
	}
}
