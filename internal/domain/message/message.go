package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Message is append-only: once stored it is never edited or deleted. There
// is no conversation entity; the (sender, receiver) pair identifies a
// thread implicitly.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

var ErrEmptyContent = errors.New("empty message content")

type Repository interface {
	// Create assigns the server-side timestamp and returns the stored
	// record, the canonical copy relayed to both parties.
	Create(ctx context.Context, senderID, receiverID uuid.UUID, content string) (Message, error)
}
