package repository

import (
	"context"

	"gigconnect/internal/database"
	"gigconnect/internal/domain/message"

	"github.com/google/uuid"
)

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Create lets the database assign created_at so both parties observe one
// canonical timestamp regardless of process clocks.
func (r *PostgresMessageRepository) Create(ctx context.Context, senderID, receiverID uuid.UUID, content string) (message.Message, error) {
	m := message.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO messages (id, sender_id, receiver_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		m.ID, m.SenderID, m.ReceiverID, m.Content,
	).Scan(&m.CreatedAt)
	if err != nil {
		return message.Message{}, err
	}
	return m, nil
}
