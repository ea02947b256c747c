package hub

import (
	"testing"
	"time"
)

// registerTestClient adds a client with a tiny send buffer and no
// connection; the write pump never runs, so the buffer fills up.
func registerTestClient(h *Hub, buffer int) *Client {
	c := &Client{hub: h, send: make(chan Message, buffer)}
	h.register <- c
	return c
}

func waitForCount(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", h.ClientCount(), want)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestBroadcast_DeliversToClient(t *testing.T) {
	h := New("test")
	go h.Run()

	c := registerTestClient(h, 4)
	waitForCount(t, h, 1)

	h.Broadcast(Message{Type: JSONMessage, Data: []byte("dog (90%)")})

	select {
	case msg := <-c.send:
		if string(msg.Data) != "dog (90%)" {
			t.Errorf("message = %q, want %q", msg.Data, "dog (90%)")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered within 2s")
	}
}

func TestBroadcast_DropsSlowClient(t *testing.T) {
	h := New("test")
	go h.Run()

	registerTestClient(h, 1)
	waitForCount(t, h, 1)

	// Reads of the client count must stay consistent while the broadcast
	// loop evicts the slow client.
	counting := make(chan struct{})
	go func() {
		defer close(counting)
		for i := 0; i < 100; i++ {
			h.ClientCount()
		}
	}()

	// First message fills the buffer, second finds it full and evicts.
	h.Broadcast(Message{Type: JSONMessage, Data: []byte("a")})
	h.Broadcast(Message{Type: JSONMessage, Data: []byte("b")})

	waitForCount(t, h, 0)
	<-counting
}

func TestBroadcastJSON(t *testing.T) {
	h := New("test")
	go h.Run()

	c := registerTestClient(h, 4)
	waitForCount(t, h, 1)

	if err := h.BroadcastJSON(map[string]string{"text": "Uncertain"}); err != nil {
		t.Fatalf("BroadcastJSON() error = %v", err)
	}

	select {
	case msg := <-c.send:
		if msg.Type != JSONMessage {
			t.Errorf("message type = %v, want JSONMessage", msg.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered within 2s")
	}
}

func TestBroadcastJSON_Unencodable(t *testing.T) {
	h := New("test")
	if err := h.BroadcastJSON(func() {}); err == nil {
		t.Error("BroadcastJSON(func) error = nil, want error")
	}
}
