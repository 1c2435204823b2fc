package gateway

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/protocol"
)

const (
	writeWait = 10 * time.Second

	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096

	sendBufferSize = 64
)

// connection is one client websocket. The identity is bound by the
// first join, create_room, or rejoin message.
type connection struct {
	ws *websocket.Conn
	gw *Gateway

	send chan protocol.ServerMessage

	mu       sync.Mutex
	identity *model.PlayerIdentity

	closeOnce sync.Once
	done      chan struct{}
}

func newConnection(ws *websocket.Conn, gw *Gateway) *connection {
	return &connection{
		ws:   ws,
		gw:   gw,
		send: make(chan protocol.ServerMessage, sendBufferSize),
		done: make(chan struct{}),
	}
}

// playerID returns the bound identity's id, or empty before binding
func (c *connection) playerID() model.PlayerID {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.identity == nil {
		return ""
	}
	return c.identity.ID
}

func (c *connection) getIdentity() *model.PlayerIdentity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// bind attaches an identity and registers the connection for delivery
func (c *connection) bind(identity *model.PlayerIdentity) {
	c.mu.Lock()
	c.identity = identity
	c.mu.Unlock()
	c.gw.hub.register(identity.ID, c)
}

// enqueue queues a message for the write pump. A client too slow to
// drain its buffer is disconnected rather than blocking the sender.
func (c *connection) enqueue(msg protocol.ServerMessage) {
	select {
	case <-c.done:
	case c.send <- msg:
	default:
		c.gw.logger.Warn("send buffer full, dropping connection",
			slog.String("player_id", string(c.playerID())))
		c.close()
	}
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

// readPump consumes client messages until the connection drops, then
// runs the disconnect pipeline
func (c *connection) readPump() {
	defer func() {
		c.close()
		c.gw.onConnectionClosed(c)
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.gw.logger.Warn("websocket read failed",
					slog.String("player_id", string(c.playerID())),
					slog.Any("error", err))
			}
			return
		}

		var msg protocol.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError(protocol.CodeValidation, "malformed message")
			continue
		}
		c.gw.dispatch(c, msg)
	}
}

// writePump serializes queued messages onto the wire and keeps the
// connection alive with pings
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *connection) sendError(code, message string) {
	c.enqueue(protocol.ServerMessage{
		Type:    protocol.TypeError,
		Payload: protocol.Error{Code: code, Message: message},
	})
}
