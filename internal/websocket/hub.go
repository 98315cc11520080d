package websocket

import (
	"sync"

	"github.com/google/uuid"

	"ai-facilitator-be/internal/pkg/logger"
)

// Hub routes conversation events to the websocket clients watching that
// conversation. One conversation can have several clients (participant
// screen plus a facilitator view).
type Hub struct {
	// Registered clients map: ConversationID -> List of Clients
	clients map[uuid.UUID][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ConversationID] = append(h.clients[client.ConversationID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"conversation_id": client.ConversationID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.ConversationID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.ConversationID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.ConversationID]) == 0 {
					delete(h.clients, client.ConversationID)
					h.logger.Info("Hub", "Conversation has no more clients", map[string]interface{}{"conversation_id": client.ConversationID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a payload to every client watching the conversation.
// It is called while the machine lock is held, so it must not block:
// clients with a full buffer get disconnected instead.
func (h *Hub) Broadcast(conversationId string, payload []byte) {
	id, err := uuid.Parse(conversationId)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"conversation_id": id})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}
