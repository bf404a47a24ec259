package hub

import "log"

// Whiteboard rooms manage membership only; presence tracking stays
// team-room-specific, so nothing is written to the registry here.

func (h *Hub) handleJoinWhiteboard(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[JoinWhiteboardClient](wsMsg.Data)
	if err != nil {
		h.sendError(client, "Invalid join_whiteboard data")
		return
	}

	if _, err := h.resolvePrincipal(client, data.credentials); err != nil {
		h.sendError(client, ErrInvalidCredentials.Error())
		return
	}

	h.joinRoom(client, WhiteboardRoom(data.TeamID))

	snapshot, err := h.store.LoadWhiteboard(data.TeamID)
	if err != nil {
		log.Println("join_whiteboard snapshot load failed:", err)
	}

	safeSend(client, WSMessage{Type: "joined_whiteboard", Data: JoinedWhiteboard{
		Status: "success",
		TeamID: data.TeamID,
		Data:   snapshot,
	}})
}

func (h *Hub) handleLeaveWhiteboard(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[LeaveWhiteboardClient](wsMsg.Data)
	if err != nil {
		return
	}
	h.leaveRoom(client, WhiteboardRoom(data.TeamID))
}

// handleWhiteboardDraw covers both the committed element and the
// live-preview variant; they differ only in the outbound event name. The
// sender is excluded, it already rendered its own stroke.
func (h *Hub) handleWhiteboardDraw(client *Client, wsMsg *WSMessage, outType string) {
	data, err := decodeData[WhiteboardDrawClient](wsMsg.Data)
	if err != nil || data.TeamID == 0 || len(data.Element) == 0 {
		return
	}

	h.broadcast(WhiteboardRoom(data.TeamID), WSMessage{Type: outType, Data: WhiteboardUpdate{
		Username: data.Username,
		Element:  data.Element,
	}}, client)
}

func (h *Hub) handleWhiteboardCursor(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[WhiteboardCursorClient](wsMsg.Data)
	if err != nil || data.TeamID == 0 || data.X == nil || data.Y == nil {
		return
	}

	h.broadcast(WhiteboardRoom(data.TeamID), WSMessage{Type: "whiteboard_cursor_update", Data: WhiteboardCursorUpdate{
		Username: data.Username,
		X:        *data.X,
		Y:        *data.Y,
	}}, client)
}

// handleWhiteboardClear requires authentication and echoes to the sender so
// the clearing client gets confirmation of its own action. The durable
// snapshot goes with it.
func (h *Hub) handleWhiteboardClear(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[WhiteboardClearClient](wsMsg.Data)
	if err != nil {
		return
	}

	principal, err := h.resolvePrincipal(client, data.credentials)
	if err != nil {
		return
	}

	if err := h.store.ClearWhiteboard(data.TeamID); err != nil {
		log.Println("whiteboard_clear snapshot delete failed:", err)
	}

	h.broadcast(WhiteboardRoom(data.TeamID), WSMessage{Type: "whiteboard_cleared", Data: WhiteboardCleared{
		Username: principal.Username,
		TeamID:   data.TeamID,
	}}, nil)
}
