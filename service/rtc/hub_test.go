package rtc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})
	return hub
}

func newTestClient(hub *Hub, queueSize int) *client {
	return &client{
		id:    "test-client",
		hub:   hub,
		send:  make(chan []byte, queueSize),
		rooms: map[string]struct{}{},
	}
}

func recv(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case data, ok := <-ch:
		require.True(t, ok, "send channel closed")
		return data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func assertQuiet(t *testing.T, ch chan []byte) {
	t.Helper()
	time.Sleep(100 * time.Millisecond)
	select {
	case data, ok := <-ch:
		if ok {
			t.Fatalf("unexpected message: %s", data)
		}
	default:
	}
}

func TestPublishReachesRoomMembers(t *testing.T) {
	hub := newTestHub(t)

	member := newTestClient(hub, 4)
	bystander := newTestClient(hub, 4)
	hub.register <- member
	hub.register <- bystander
	hub.join <- subscription{client: member, room: "QmAuction"}

	hub.Publish("QmAuction", "new-bid", map[string]any{"amount": 2.5})

	var envelope Envelope
	require.NoError(t, json.Unmarshal(recv(t, member.send), &envelope))
	assert.Equal(t, "new-bid", envelope.Type)
	assert.Equal(t, "QmAuction", envelope.AuctionID)

	assertQuiet(t, bystander.send)
}

func TestPublishToEmptyRoomIsANoop(t *testing.T) {
	hub := newTestHub(t)

	watcher := newTestClient(hub, 4)
	hub.register <- watcher
	hub.join <- subscription{client: watcher, room: "QmOther"}

	hub.Publish("QmAuction", "auction-update", nil)

	assertQuiet(t, watcher.send)
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := newTestHub(t)

	member := newTestClient(hub, 4)
	hub.register <- member
	hub.join <- subscription{client: member, room: "QmAuction"}
	hub.leave <- subscription{client: member, room: "QmAuction"}

	hub.Publish("QmAuction", "auction-update", nil)

	assertQuiet(t, member.send)
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := newTestHub(t)

	// an unbuffered send queue with no reader models a client that never
	// drains
	slow := newTestClient(hub, 0)
	hub.register <- slow
	hub.join <- subscription{client: slow, room: "QmAuction"}

	hub.Publish("QmAuction", "auction-update", 1)

	select {
	case _, ok := <-slow.send:
		assert.False(t, ok, "expected send channel to be closed")
	case <-time.After(time.Second):
		t.Fatal("slow client was not dropped")
	}
}

func TestUnregisterClosesClient(t *testing.T) {
	hub := newTestHub(t)

	member := newTestClient(hub, 4)
	hub.register <- member
	hub.join <- subscription{client: member, room: "QmAuction"}
	hub.unregister <- member

	select {
	case _, ok := <-member.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("unregistered client was not closed")
	}

	// publishing afterwards must not panic or deliver
	hub.Publish("QmAuction", "auction-update", nil)
}

func TestShutdownClosesAllClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	member := newTestClient(hub, 4)
	hub.register <- member

	cancel()
	<-hub.done

	_, ok := <-member.send
	assert.False(t, ok)
}

func TestStoppedHubReleasesSessionTraffic(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	cancel()
	<-hub.done

	// connections racing a shutdown must not park forever on hub channels
	late := newTestClient(hub, 4)
	finished := make(chan bool, 1)
	go func() {
		added := hub.add(late)
		hub.subscribe(late, "QmAuction")
		hub.unsubscribe(late, "QmAuction")
		hub.remove(late)
		finished <- added
	}()

	select {
	case added := <-finished:
		assert.False(t, added, "expected registration on a stopped hub to be refused")
	case <-time.After(time.Second):
		t.Fatal("session traffic blocked after hub stopped")
	}
}

func TestJoinWithoutRegisterIsIgnored(t *testing.T) {
	hub := newTestHub(t)

	ghost := newTestClient(hub, 4)
	hub.join <- subscription{client: ghost, room: "QmAuction"}

	hub.Publish("QmAuction", "auction-update", nil)

	assertQuiet(t, ghost.send)
}
