package hub

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one live websocket connection. It has no identity until an
// authenticated event succeeds; after that the resolved principal is cached
// alongside the session token.
type Client struct {
	Conn      *websocket.Conn
	ID        string
	SendQueue chan WSMessage
	Done      chan struct{}

	mu       sync.Mutex
	userID   int
	username string
	avatar   string
	authed   bool
}

func (c *Client) WritePump() {
	defer c.Conn.Close()
	for {
		select {
		case msg, ok := <-c.SendQueue:
			if !ok {
				return
			}
			if err := c.Conn.WriteJSON(msg); err != nil {
				log.Println("Client WritePump error:", err)
				return
			}
		case <-c.Done:
			return
		}
	}
}

func safeSend(client *Client, msg WSMessage) {
	if client == nil || client.SendQueue == nil {
		return
	}
	select {
	case client.SendQueue <- msg:
	default:
		log.Printf("safeSend: send queue full for client %s, dropping %s", client.ID, msg.Type)
	}
}
