package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/partnerlink/backend/internal/models"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// GetOrCreateConversation finds the conversation between two users, creating
// it on first contact. Participants are stored in a canonical order so the
// pair maps to exactly one row.
func (r *MessageRepo) GetOrCreateConversation(ctx context.Context, a, b uuid.UUID) (*models.Conversation, error) {
	if b.String() < a.String() {
		a, b = b, a
	}

	var c models.Conversation
	err := r.pool.QueryRow(ctx, `
		INSERT INTO conversations (user_a_id, user_b_id)
		VALUES ($1, $2)
		ON CONFLICT (user_a_id, user_b_id) DO UPDATE SET updated_at = now()
		RETURNING id, user_a_id, user_b_id, created_at, updated_at
	`, a, b).Scan(&c.ID, &c.UserAID, &c.UserBID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MessageRepo) GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	var c models.Conversation
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_a_id, user_b_id, created_at, updated_at
		FROM conversations WHERE id = $1
	`, id).Scan(&c.ID, &c.UserAID, &c.UserBID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MessageRepo) ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_a_id, user_b_id, created_at, updated_at
		FROM conversations
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []models.Conversation
	for rows.Next() {
		var c models.Conversation
		if err := rows.Scan(&c.ID, &c.UserAID, &c.UserBID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

func (r *MessageRepo) CreateMessage(ctx context.Context, m *models.Message) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (conversation_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, m.ConversationID, m.SenderID, m.Content).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE conversations SET updated_at = now() WHERE id = $1`, m.ConversationID)
	return err
}

func (r *MessageRepo) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, conversation_id, sender_id, content, read, created_at
		FROM messages WHERE conversation_id = $1
		ORDER BY created_at
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.Read, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepo) LastMessage(ctx context.Context, conversationID uuid.UUID) (*models.Message, error) {
	var m models.Message
	err := r.pool.QueryRow(ctx, `
		SELECT id, conversation_id, sender_id, content, read, created_at
		FROM messages WHERE conversation_id = $1
		ORDER BY created_at DESC LIMIT 1
	`, conversationID).Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Content, &m.Read, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepo) CountUnread(ctx context.Context, conversationID, userID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages
		WHERE conversation_id = $1 AND sender_id != $2 AND NOT read
	`, conversationID, userID).Scan(&n)
	return n, err
}

// MarkRead marks every message sent to userID in the conversation as read.
func (r *MessageRepo) MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE messages SET read = true
		WHERE conversation_id = $1 AND sender_id != $2 AND NOT read
	`, conversationID, userID)
	return err
}
