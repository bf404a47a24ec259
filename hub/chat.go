package hub

import "log"

// handleSendMessage validates chat membership, persists the message, then
// fans it out to the team room including the sender: the echo confirms the
// message was stored. Content is relayed verbatim; escaping belongs to the
// presentation layer.
func (h *Hub) handleSendMessage(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[SendMessageClient](wsMsg.Data)
	if err != nil {
		h.sendError(client, "Invalid send_message data")
		return
	}
	if data.Content == "" || data.ChatID == 0 || data.TeamID == 0 {
		h.sendError(client, ErrMissingField.Error())
		return
	}

	principal, err := h.resolvePrincipal(client, data.credentials)
	if err != nil {
		h.sendError(client, ErrInvalidCredentials.Error())
		return
	}

	isMember, err := h.store.IsChatMember(data.ChatID, principal.ID)
	if err != nil {
		log.Println("send_message membership check failed:", err)
		h.sendError(client, "Failed to verify chat membership")
		return
	}
	if !isMember {
		h.sendError(client, ErrNotAChatMember.Error())
		return
	}

	message, err := h.store.InsertMessage(data.ChatID, principal.ID, data.Content)
	if err != nil {
		log.Println("send_message insert failed:", err)
		h.sendError(client, "Failed to store message")
		return
	}

	h.broadcast(TeamRoom(data.TeamID), WSMessage{Type: "new_message", Data: NewMessage{
		ID:        message.ID,
		ChatID:    data.ChatID,
		UserID:    principal.ID,
		Username:  principal.Username,
		Avatar:    principal.Avatar,
		Content:   data.Content,
		CreatedAt: message.CreatedAt,
	}}, nil)
}

// handleTyping is deliberately unauthenticated: a typing flag is a
// low-stakes transient signal not worth a store round trip. The sender is
// excluded, it knows it is typing.
func (h *Hub) handleTyping(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[TypingClient](wsMsg.Data)
	if err != nil {
		return
	}

	h.broadcast(TeamRoom(data.TeamID), WSMessage{Type: "user_typing", Data: UserTyping{
		Username: data.Username,
		ChatID:   data.ChatID,
		IsTyping: data.IsTyping,
	}}, client)
}
