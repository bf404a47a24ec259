package hub

import "errors"

// Handler failure taxonomy. Every one of these reaches the client as a
// unicast error event and nothing else; none is fatal to the connection.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrNotATeamMember     = errors.New("Not a team member")
	ErrNotAChatMember     = errors.New("Not a chat member")
	ErrMissingField       = errors.New("Missing required fields")
)

func (h *Hub) sendError(client *Client, message string) {
	safeSend(client, WSMessage{Type: "error", Data: ChatError{Message: message}})
}
