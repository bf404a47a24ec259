package hub

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func decodeData[T any](raw interface{}) (T, error) {
	var data T
	bytes, err := json.Marshal(raw)
	if err != nil {
		return data, err
	}
	err = json.Unmarshal(bytes, &data)
	return data, err
}

// HandleSocket upgrades the request and runs the connection's read loop.
// Events from one connection are handled in receipt order; the loop only
// exits when the connection drops, after which all presence state for the
// handle is torn down.
func (h *Hub) HandleSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return
	}
	conn.SetReadLimit(256 * 1024)
	defer conn.Close()

	client := &Client{
		Conn:      conn,
		ID:        uuid.New().String(),
		SendQueue: make(chan WSMessage, 64),
		Done:      make(chan struct{}),
	}
	go client.WritePump()

	safeSend(client, WSMessage{Type: "connected", Data: Connected{SID: client.ID}})

	for {
		_, msgBytes, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(msgBytes, &wsMsg); err != nil {
			log.Println("Invalid message format:", err)
			continue
		}

		h.dispatchMessage(client, wsMsg)
	}

	h.disconnect(client)
	close(client.SendQueue)
	close(client.Done)
}

// disconnect handles the only cancellation signal there is: the connection
// going away. Every team the handle was registered in gets its offline
// notification, not just one.
func (h *Hub) disconnect(client *Client) {
	h.leaveAllRooms(client)

	for _, membership := range h.registry.UnregisterConn(client) {
		h.broadcast(TeamRoom(membership.TeamID), WSMessage{
			Type: "user_offline",
			Data: UserOffline{UserID: membership.UserID, TeamID: membership.TeamID},
		}, client)
	}
}
