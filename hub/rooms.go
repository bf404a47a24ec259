package hub

import "fmt"

// TeamRoom names the broadcast group for a team's chat, presence, polls and
// join requests. Derived, never stored.
func TeamRoom(teamID int) string {
	return fmt.Sprintf("team_%d", teamID)
}

// WhiteboardRoom names the broadcast group for a team's whiteboard.
func WhiteboardRoom(teamID int) string {
	return fmt.Sprintf("whiteboard_%d", teamID)
}

func (h *Hub) joinRoom(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = map[*Client]bool{}
		h.rooms[room] = members
	}
	members[client] = true

	subs, ok := h.subscriptions[client]
	if !ok {
		subs = map[string]bool{}
		h.subscriptions[client] = subs
	}
	subs[room] = true
}

// leaveRoom is no-op safe: leaving a room never joined does nothing.
func (h *Hub) leaveRoom(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeFromRoom(client, room)
}

func (h *Hub) leaveAllRooms(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room := range h.subscriptions[client] {
		h.removeFromRoom(client, room)
	}
	delete(h.subscriptions, client)
}

// removeFromRoom requires h.mu held. Empty rooms are deleted so room
// lifecycle is observable instead of implicit.
func (h *Hub) removeFromRoom(client *Client, room string) {
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
	if subs, ok := h.subscriptions[client]; ok {
		delete(subs, room)
	}
}

// broadcast fans msg out to every current room member. A non-nil except
// skips the sender; chat messages and poll votes echo back to the sender,
// transient UI signals do not.
func (h *Hub) broadcast(room string, msg WSMessage, except *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for member := range h.rooms[room] {
		if member == except {
			continue
		}
		safeSend(member, msg)
	}
}

func (h *Hub) roomSize(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}
