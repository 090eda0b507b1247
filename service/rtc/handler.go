package rtc

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/auctionhaus/go-auctionhaus/service/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxInboundSize = 1024
	sendQueueSize  = 32
)

// inbound is the only message shape clients may send: room management.
type inbound struct {
	Type      string `json:"type"`
	AuctionID string `json:"auctionId"`
}

const (
	inboundJoin  = "join-auction"
	inboundLeave = "leave-auction"
)

type client struct {
	id    string
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]struct{}
}

// Handler upgrades an HTTP request to a websocket session on the hub and
// joins it to the auction room named by the :id path param. checkOrigin
// gates the upgrade; pass nil to accept any origin.
func Handler(hub *Hub, checkOrigin func(r *http.Request) bool) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin,
	}
	if checkOrigin == nil {
		upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.For(c).Warnf("websocket upgrade failed: %s", err)
			return
		}

		session := &client{
			id:    uuid.New().String(),
			hub:   hub,
			conn:  conn,
			send:  make(chan []byte, sendQueueSize),
			rooms: map[string]struct{}{},
		}
		if !hub.add(session) {
			conn.Close()
			return
		}
		if room := c.Param("id"); room != "" {
			hub.subscribe(session, room)
		}

		go session.writePump()
		go session.readPump()
	}
}

// readPump relays join/leave requests to the hub until the peer goes away.
// Exactly one reader per connection.
func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.For(nil).Debugf("client %s read: %s", c.id, err)
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil || msg.AuctionID == "" {
			continue
		}
		switch msg.Type {
		case inboundJoin:
			c.hub.subscribe(c, msg.AuctionID)
		case inboundLeave:
			c.hub.unsubscribe(c, msg.AuctionID)
		}
	}
}

// writePump drains the send queue and keeps the connection alive with pings.
// Exactly one writer per connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
