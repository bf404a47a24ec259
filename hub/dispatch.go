package hub

import "log"

func (h *Hub) dispatchMessage(client *Client, wsMsg WSMessage) {
	switch wsMsg.Type {
	case "join_team":
		h.handleJoinTeam(client, &wsMsg)
	case "leave_team":
		h.handleLeaveTeam(client, &wsMsg)
	case "get_online_users":
		h.handleGetOnlineUsers(client, &wsMsg)
	case "send_message":
		h.handleSendMessage(client, &wsMsg)
	case "typing":
		h.handleTyping(client, &wsMsg)
	case "join_whiteboard":
		h.handleJoinWhiteboard(client, &wsMsg)
	case "leave_whiteboard":
		h.handleLeaveWhiteboard(client, &wsMsg)
	case "whiteboard_draw":
		h.handleWhiteboardDraw(client, &wsMsg, "whiteboard_update")
	case "whiteboard_drawing":
		h.handleWhiteboardDraw(client, &wsMsg, "whiteboard_live_drawing")
	case "whiteboard_cursor":
		h.handleWhiteboardCursor(client, &wsMsg)
	case "whiteboard_clear":
		h.handleWhiteboardClear(client, &wsMsg)
	case "poll_created":
		h.handlePollCreated(client, &wsMsg)
	case "poll_vote":
		h.handlePollVote(client, &wsMsg)
	case "join_request_created":
		h.handleJoinRequestCreated(client, &wsMsg)
	case "join_request_approved":
		h.handleJoinRequestApproved(client, &wsMsg)
	case "join_request_rejected":
		// Accepted but intentionally not relayed; the requester polls the
		// request status over HTTP.
	default:
		log.Println("Unknown message type:", wsMsg.Type)
		h.sendError(client, "Unknown websocket message type")
	}
}
