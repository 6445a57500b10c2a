package ws

import (
	"encoding/json"

	"github.com/google/uuid"

	"gigconnect/internal/domain/message"
)

const (
	// Client → server.
	EventSendMessage = "send_message"

	// Server → client.
	EventNewMessage  = "new_message"
	EventMessageSent = "message_sent"
	EventError       = "error"
)

// Envelope frames every websocket message in both directions.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type SendMessagePayload struct {
	RecipientID uuid.UUID `json:"recipientId"`
	Content     string    `json:"content"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func marshalEvent(eventType string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: eventType, Data: data})
}

// messageEvent renders the canonical stored record; relay and ack use the
// same bytes so sender and receiver observe an identical message.
func messageEvent(eventType string, m message.Message) ([]byte, error) {
	return marshalEvent(eventType, m)
}

func errorEvent(msg string) []byte {
	b, err := marshalEvent(EventError, ErrorPayload{Message: msg})
	if err != nil {
		return []byte(`{"type":"error","data":{"message":"internal error"}}`)
	}
	return b
}
