package ws

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"gigconnect/internal/usecase/chat"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	sendTimeout = 10 * time.Second
)

// Client is one authenticated websocket session. userID is bound once at
// handshake and never changes for the connection's lifetime.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID uuid.UUID
	send   chan []byte

	chat   chat.Usecase
	logger zerolog.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID, chatUC chat.Usecase, logger zerolog.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 64),
		chat:   chatUC,
		logger: logger,
	}
}

// ReadPump processes inbound frames sequentially: the persist-and-relay for
// one send_message completes or fails before the next frame is read, which
// gives per-sender-per-receiver ordering.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug().Err(err).Stringer("user_id", c.userID).Msg("ws read error")
			}
			return
		}
		c.handleFrame(raw)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleFrame(raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.deliver(errorEvent("invalid message format"))
		return
	}

	switch env.Type {
	case EventSendMessage:
		c.handleSendMessage(env.Data)
	default:
		c.deliver(errorEvent("unknown event type"))
	}
}

func (c *Client) handleSendMessage(data json.RawMessage) {
	var payload SendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.deliver(errorEvent("invalid message format"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	m, err := c.chat.Send(ctx, c.userID, payload.RecipientID, payload.Content)
	if err != nil {
		// Nothing was stored, so nothing is relayed: the receiver never
		// observes a partially-sent message.
		c.deliver(errorEvent(sendErrorMessage(err)))
		return
	}

	relayed, err := messageEvent(EventNewMessage, m)
	if err != nil {
		c.deliver(errorEvent("internal error"))
		return
	}
	ack, err := messageEvent(EventMessageSent, m)
	if err != nil {
		c.deliver(errorEvent("internal error"))
		return
	}

	c.hub.Relay(m.ReceiverID, relayed)
	// The ack targets the originating connection only, never the sender's
	// other open sessions.
	c.deliver(ack)
}

// deliver writes directly to this session, bypassing the hub.
func (c *Client) deliver(payload []byte) {
	select {
	case c.send <- payload:
	default:
	}
}

func sendErrorMessage(err error) string {
	if errors.Is(err, chat.ErrInvalidInput) {
		return "recipientId and content are required"
	}
	return "failed to send message"
}
