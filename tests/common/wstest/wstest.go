package wstest

import (
	"encoding/json"
	"errors"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const readTimeout = 2 * time.Second

// Client is a test-side websocket peer.
type Client struct {
	t  *testing.T
	ws *websocket.Conn
}

// Dial opens path on srv and closes the socket when the test ends.
func Dial(t *testing.T, srv *httptest.Server, path string) *Client {
	t.Helper()
	ws, resp, err := websocket.DefaultDialer.Dial(URL(srv, path), nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = ws.Close() })
	return &Client{t: t, ws: ws}
}

func URL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func (c *Client) SendJSON(v any) {
	c.t.Helper()
	require.NoError(c.t, c.ws.WriteJSON(v))
}

func (c *Client) SendText(text string) {
	c.t.Helper()
	require.NoError(c.t, c.ws.WriteMessage(websocket.TextMessage, []byte(text)))
}

// ReadFrame waits for the next text frame and decodes it as a JSON object.
func (c *Client) ReadFrame() map[string]any {
	c.t.Helper()
	raw := c.ReadRaw()
	var frame map[string]any
	require.NoError(c.t, json.Unmarshal(raw, &frame), "frame: %s", raw)
	return frame
}

func (c *Client) ReadRaw() []byte {
	c.t.Helper()
	require.NoError(c.t, c.ws.SetReadDeadline(time.Now().Add(readTimeout)))
	_, raw, err := c.ws.ReadMessage()
	require.NoError(c.t, err)
	return raw
}

// ReadUntil skips frames until match accepts one.
func (c *Client) ReadUntil(match func(map[string]any) bool) map[string]any {
	c.t.Helper()
	for {
		frame := c.ReadFrame()
		if match(frame) {
			return frame
		}
	}
}

// ExpectClosed waits for the server to end the connection.
func (c *Client) ExpectClosed() {
	c.t.Helper()
	require.NoError(c.t, c.ws.SetReadDeadline(time.Now().Add(readTimeout)))
	for {
		_, _, err := c.ws.ReadMessage()
		if err == nil {
			continue
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			c.t.Fatalf("connection still open: %v", err)
		}
		return
	}
}

func (c *Client) Close() {
	_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = c.ws.Close()
}

// Eventually polls cond, for state that settles after a frame has been read.
func Eventually(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, readTimeout, 10*time.Millisecond)
}
