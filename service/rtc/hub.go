package rtc

import (
	"context"
	"encoding/json"

	"github.com/auctionhaus/go-auctionhaus/service/logger"
)

// Hub fans events out to websocket clients grouped into per-auction rooms.
// All room state is owned by the Run goroutine and touched only through the
// hub's channels, so no locks are needed. Publication is fire-and-forget:
// a full hub or a slow client loses messages, never blocks a writer.
type Hub struct {
	register   chan *client
	unregister chan *client
	join       chan subscription
	leave      chan subscription
	broadcast  chan roomMessage

	rooms   map[string]map[*client]struct{}
	clients map[*client]struct{}

	done chan struct{}
}

type subscription struct {
	client *client
	room   string
}

type roomMessage struct {
	room string
	data []byte
}

// Envelope is the wire shape of every outbound event.
type Envelope struct {
	Type      string `json:"type"`
	AuctionID string `json:"auctionId"`
	Payload   any    `json:"payload"`
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		join:       make(chan subscription),
		leave:      make(chan subscription),
		broadcast:  make(chan roomMessage, 256),
		rooms:      map[string]map[*client]struct{}{},
		clients:    map[*client]struct{}{},
		done:       make(chan struct{}),
	}
}

// Run owns the hub state until ctx is cancelled. Call it once, in its own
// goroutine.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.unregister:
			h.drop(c)
		case sub := <-h.join:
			if _, ok := h.clients[sub.client]; !ok {
				continue
			}
			room := h.rooms[sub.room]
			if room == nil {
				room = map[*client]struct{}{}
				h.rooms[sub.room] = room
			}
			room[sub.client] = struct{}{}
			sub.client.rooms[sub.room] = struct{}{}
		case sub := <-h.leave:
			h.leaveRoom(sub.client, sub.room)
		case msg := <-h.broadcast:
			for c := range h.rooms[msg.room] {
				select {
				case c.send <- msg.data:
				default:
					// the client is not draining its queue; cut it
					// loose instead of backing up the whole room
					h.drop(c)
				}
			}
		}
	}
}

// Publish delivers an event to everyone in an auction's room. Safe to call
// from any goroutine; drops the event if the hub is saturated or stopped.
func (h *Hub) Publish(auctionID, event string, payload any) {
	data, err := json.Marshal(Envelope{Type: event, AuctionID: auctionID, Payload: payload})
	if err != nil {
		logger.For(nil).Errorf("marshaling %s event for auction %s: %s", event, auctionID, err)
		return
	}
	select {
	case h.broadcast <- roomMessage{room: auctionID, data: data}:
	case <-h.done:
	default:
		logger.For(nil).Warnf("hub saturated, dropping %s event for auction %s", event, auctionID)
	}
}

// add registers a connection, reporting false once the hub has stopped so
// the caller can close the connection instead of parking a goroutine on a
// channel nobody reads.
func (h *Hub) add(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) subscribe(c *client, room string) {
	select {
	case h.join <- subscription{client: c, room: room}:
	case <-h.done:
	}
}

func (h *Hub) unsubscribe(c *client, room string) {
	select {
	case h.leave <- subscription{client: c, room: room}:
	case <-h.done:
	}
}

func (h *Hub) drop(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	for room := range c.rooms {
		h.leaveRoom(c, room)
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) leaveRoom(c *client, room string) {
	delete(c.rooms, room)
	members := h.rooms[room]
	if members == nil {
		return
	}
	delete(members, c)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}
