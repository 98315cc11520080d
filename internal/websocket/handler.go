package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches one connection to a conversation's event stream.
func ServeWs(hub *Hub, c *websocket.Conn, conversationId uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, ConversationID: conversationId, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
