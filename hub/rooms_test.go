package hub

import "testing"

func newTestClient(id string) *Client {
	return &Client{
		ID:        id,
		SendQueue: make(chan WSMessage, 16),
		Done:      make(chan struct{}),
	}
}

func drain(client *Client) []WSMessage {
	var msgs []WSMessage
	for {
		select {
		case msg := <-client.SendQueue:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func TestRoomNames(t *testing.T) {
	if got := TeamRoom(7); got != "team_7" {
		t.Fatalf("unexpected team room name: %s", got)
	}
	if got := WhiteboardRoom(7); got != "whiteboard_7" {
		t.Fatalf("unexpected whiteboard room name: %s", got)
	}
	if TeamRoom(7) != TeamRoom(7) {
		t.Fatal("room naming must be deterministic")
	}
}

func TestRoomLifecycle(t *testing.T) {
	h := New(nil, []byte("secret"))
	a := newTestClient("a")
	b := newTestClient("b")

	h.joinRoom(a, "team_7")
	h.joinRoom(b, "team_7")
	if got := h.roomSize("team_7"); got != 2 {
		t.Fatalf("expected 2 members, got %d", got)
	}

	// Re-joining must not duplicate membership.
	h.joinRoom(a, "team_7")
	if got := h.roomSize("team_7"); got != 2 {
		t.Fatalf("expected rejoin to be idempotent, got %d members", got)
	}

	h.leaveRoom(a, "team_7")
	if got := h.roomSize("team_7"); got != 1 {
		t.Fatalf("expected 1 member after leave, got %d", got)
	}

	// Leaving a room never joined is a no-op, not an error.
	h.leaveRoom(a, "team_99")
	h.leaveRoom(a, "team_7")

	h.leaveRoom(b, "team_7")
	if got := h.roomSize("team_7"); got != 0 {
		t.Fatalf("expected empty room, got %d members", got)
	}
	h.mu.Lock()
	_, exists := h.rooms["team_7"]
	h.mu.Unlock()
	if exists {
		t.Fatal("empty room should have been deleted")
	}
}

func TestBroadcastExcludeSender(t *testing.T) {
	h := New(nil, []byte("secret"))
	sender := newTestClient("sender")
	peer := newTestClient("peer")
	h.joinRoom(sender, "team_7")
	h.joinRoom(peer, "team_7")

	h.broadcast("team_7", WSMessage{Type: "user_typing"}, sender)

	if msgs := drain(sender); len(msgs) != 0 {
		t.Fatalf("sender should not receive its own excluded broadcast, got %v", msgs)
	}
	peerMsgs := drain(peer)
	if len(peerMsgs) != 1 || peerMsgs[0].Type != "user_typing" {
		t.Fatalf("peer should receive the broadcast, got %v", peerMsgs)
	}

	h.broadcast("team_7", WSMessage{Type: "new_message"}, nil)
	if msgs := drain(sender); len(msgs) != 1 || msgs[0].Type != "new_message" {
		t.Fatalf("sender should receive inclusive broadcast, got %v", msgs)
	}
}

func TestLeaveAllRooms(t *testing.T) {
	h := New(nil, []byte("secret"))
	a := newTestClient("a")
	h.joinRoom(a, "team_7")
	h.joinRoom(a, "team_9")
	h.joinRoom(a, "whiteboard_7")

	h.leaveAllRooms(a)

	for _, room := range []string{"team_7", "team_9", "whiteboard_7"} {
		if got := h.roomSize(room); got != 0 {
			t.Fatalf("expected %s empty after leaveAllRooms, got %d", room, got)
		}
	}
}
