package hub

// Poll and join-request events are pure relay: the HTTP layer already
// persisted the poll, vote or request before these arrive. Broadcasts here
// are notifications, never the ledger; the durable store's counts stay
// authoritative.

func (h *Hub) handlePollCreated(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[PollCreatedClient](wsMsg.Data)
	if err != nil || data.TeamID == 0 || len(data.Poll) == 0 {
		return
	}

	// The creator already has the poll client-side.
	h.broadcast(TeamRoom(data.TeamID), WSMessage{Type: "new_poll", Data: data.Poll}, client)
}

func (h *Hub) handlePollVote(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[PollVoteClient](wsMsg.Data)
	if err != nil || data.TeamID == 0 || data.PollID == 0 || data.OptionID == 0 {
		return
	}

	// Includes the sender to confirm the tally update.
	h.broadcast(TeamRoom(data.TeamID), WSMessage{Type: "poll_updated", Data: PollUpdated{
		PollID:   data.PollID,
		OptionID: data.OptionID,
		Votes:    data.Votes,
		Voter:    data.Username,
	}}, nil)
}

func (h *Hub) handleJoinRequestCreated(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[JoinRequestCreatedClient](wsMsg.Data)
	if err != nil || data.TeamID == 0 || len(data.Request) == 0 {
		return
	}

	h.broadcast(TeamRoom(data.TeamID), WSMessage{Type: "new_join_request", Data: NewJoinRequest{
		TeamID:  data.TeamID,
		Request: data.Request,
	}}, nil)
}

func (h *Hub) handleJoinRequestApproved(client *Client, wsMsg *WSMessage) {
	data, err := decodeData[JoinRequestApprovedClient](wsMsg.Data)
	if err != nil || data.TeamID == 0 {
		return
	}

	h.broadcast(TeamRoom(data.TeamID), WSMessage{Type: "member_joined", Data: MemberJoined{
		TeamID:   data.TeamID,
		UserID:   data.UserID,
		Username: data.Username,
	}}, nil)
}
