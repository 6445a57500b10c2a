package ws

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Hub owns the connection registry: one logical channel per user id, where
// every open session of that user is a member. The registry is an explicit
// table passed by reference, never package-level state.
type Hub struct {
	channels map[uuid.UUID]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	relay      chan relayRequest

	mutex  sync.RWMutex
	logger zerolog.Logger
}

type relayRequest struct {
	userID  uuid.UUID
	payload []byte
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		channels:   make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		relay:      make(chan relayRequest, 1024),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			members, ok := h.channels[client.userID]
			if !ok {
				members = make(map[*Client]struct{})
				h.channels[client.userID] = members
			}
			members[client] = struct{}{}
			sessions := len(members)
			h.mutex.Unlock()
			h.logger.Info().Stringer("user_id", client.userID).Int("sessions", sessions).Msg("ws connected")

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if members, ok := h.channels[client.userID]; ok {
				if _, member := members[client]; member {
					delete(members, client)
					close(client.send)
				}
				if len(members) == 0 {
					delete(h.channels, client.userID)
				}
			}
			h.mutex.Unlock()
			h.logger.Info().Stringer("user_id", client.userID).Msg("ws disconnected")

		case req := <-h.relay:
			h.mutex.RLock()
			members := make([]*Client, 0, len(h.channels[req.userID]))
			for c := range h.channels[req.userID] {
				members = append(members, c)
			}
			h.mutex.RUnlock()

			for _, client := range members {
				select {
				case client.send <- req.payload:
				default:
					// Slow consumer: drop the session rather than block
					// delivery to everyone else.
					h.Unregister(client)
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Relay queues payload for every open session of the given user. Delivery
// order per sender is preserved because relay requests are processed FIFO
// and each session's send channel is FIFO.
func (h *Hub) Relay(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.relay <- relayRequest{userID: userID, payload: payload}:
	default:
		h.logger.Warn().Stringer("user_id", userID).Msg("ws relay dropped, buffer full")
	}
}

// SessionCount reports how many sessions a user currently has open.
func (h *Hub) SessionCount(userID uuid.UUID) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.channels[userID])
}
