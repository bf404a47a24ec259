package hub

import "log"

// handleJoinTeam walks the join state machine: authenticate, verify durable
// team membership, join the team room, register presence, tell the room,
// answer the caller with an online snapshot. Re-joining an already joined
// team re-registers and re-broadcasts, which is harmless.
func (h *Hub) handleJoinTeam(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[JoinTeamClient](wsMsg.Data)
	if err != nil {
		h.sendError(client, "Invalid join_team data")
		return
	}
	if data.Username == "" || (data.Password == "" && data.Token == "") || data.TeamID == 0 {
		h.sendError(client, "Missing credentials or team_id")
		return
	}

	principal, err := h.resolvePrincipal(client, data.credentials)
	if err != nil {
		h.sendError(client, ErrInvalidCredentials.Error())
		return
	}

	isMember, err := h.store.IsTeamMember(data.TeamID, principal.ID)
	if err != nil {
		log.Println("join_team membership check failed:", err)
		h.sendError(client, "Failed to verify team membership")
		return
	}
	if !isMember {
		h.sendError(client, ErrNotATeamMember.Error())
		return
	}

	room := TeamRoom(data.TeamID)
	h.joinRoom(client, room)
	h.registry.Register(data.TeamID, principal.ID, client)

	// Includes the sender: the rest of the room must learn this user is
	// online, the sender already knows.
	h.broadcast(room, WSMessage{Type: "user_online", Data: UserOnline{
		UserID:   principal.ID,
		Username: principal.Username,
		TeamID:   data.TeamID,
	}}, nil)

	safeSend(client, WSMessage{Type: "joined_team", Data: JoinedTeam{
		Status:      "success",
		TeamID:      data.TeamID,
		OnlineUsers: h.registry.OnlineUserIDs(data.TeamID),
	}})
}

// handleLeaveTeam drops out silently on bad credentials. There is no
// membership re-check: a user who already left is indistinguishable from
// one who never joined, and both are no-ops.
func (h *Hub) handleLeaveTeam(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[JoinTeamClient](wsMsg.Data)
	if err != nil {
		return
	}

	principal, err := h.resolvePrincipal(client, data.credentials)
	if err != nil {
		return
	}

	room := TeamRoom(data.TeamID)
	h.leaveRoom(client, room)
	h.registry.Unregister(data.TeamID, principal.ID)

	h.broadcast(room, WSMessage{Type: "user_offline", Data: UserOffline{
		UserID: principal.ID,
		TeamID: data.TeamID,
	}}, client)
}

// handleGetOnlineUsers is an unauthenticated snapshot read, unicast back to
// the caller.
func (h *Hub) handleGetOnlineUsers(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[GetOnlineUsersClient](wsMsg.Data)
	if err != nil || data.TeamID == 0 {
		h.sendError(client, "Missing team_id")
		return
	}

	safeSend(client, WSMessage{Type: "online_users_list", Data: OnlineUsersList{
		TeamID:      data.TeamID,
		OnlineUsers: h.registry.OnlineUserIDs(data.TeamID),
	}})
}
