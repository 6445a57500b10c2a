package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"gigconnect/internal/domain/message"
)

type mockMessageRepo struct {
	stored []message.Message
	err    error
}

func (m *mockMessageRepo) Create(_ context.Context, senderID, receiverID uuid.UUID, content string) (message.Message, error) {
	if m.err != nil {
		return message.Message{}, m.err
	}
	msg := message.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	m.stored = append(m.stored, msg)
	return msg, nil
}

func TestSend_ReturnsStoredRecord(t *testing.T) {
	repo := &mockMessageRepo{}
	svc := NewService(repo)

	sender := uuid.New()
	receiver := uuid.New()
	m, err := svc.Send(context.Background(), sender, receiver, "hi")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Fatalf("expected assigned message id")
	}
	if m.SenderID != sender || m.ReceiverID != receiver || m.Content != "hi" {
		t.Fatalf("unexpected message: %+v", m)
	}
	if len(repo.stored) != 1 {
		t.Fatalf("expected exactly one persisted message, got %d", len(repo.stored))
	}
}

func TestSend_EmptyContent(t *testing.T) {
	repo := &mockMessageRepo{}
	svc := NewService(repo)

	_, err := svc.Send(context.Background(), uuid.New(), uuid.New(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !errors.Is(err, message.ErrEmptyContent) {
		t.Fatalf("expected the empty-content sentinel, got %v", err)
	}
	if len(repo.stored) != 0 {
		t.Fatalf("nothing may be persisted on invalid input")
	}
}

func TestSend_StoreFailure(t *testing.T) {
	repo := &mockMessageRepo{err: errors.New("connection refused")}
	svc := NewService(repo)

	_, err := svc.Send(context.Background(), uuid.New(), uuid.New(), "hi")
	if !errors.Is(err, ErrStoreFailure) {
		t.Fatalf("expected ErrStoreFailure, got %v", err)
	}
}

func TestSend_NilParticipants(t *testing.T) {
	svc := NewService(&mockMessageRepo{})

	if _, err := svc.Send(context.Background(), uuid.Nil, uuid.New(), "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil sender, got %v", err)
	}
	if _, err := svc.Send(context.Background(), uuid.New(), uuid.Nil, "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil receiver, got %v", err)
	}
}
