package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gigconnect/internal/domain/message"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreFailure = errors.New("failed to store message")
)

type Usecase interface {
	// Send persists the message and returns the stored record. Callers relay
	// the returned record verbatim to both parties; on error nothing was
	// stored and nothing may be relayed.
	Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (message.Message, error)
}

type Service struct {
	messages message.Repository
}

func NewService(messages message.Repository) *Service {
	return &Service{messages: messages}
}

func (s *Service) Send(ctx context.Context, senderID, receiverID uuid.UUID, content string) (message.Message, error) {
	if senderID == uuid.Nil || receiverID == uuid.Nil {
		return message.Message{}, ErrInvalidInput
	}
	if strings.TrimSpace(content) == "" {
		return message.Message{}, fmt.Errorf("%w: %w", ErrInvalidInput, message.ErrEmptyContent)
	}

	m, err := s.messages.Create(ctx, senderID, receiverID, content)
	if err != nil {
		return message.Message{}, ErrStoreFailure
	}
	return m, nil
}
