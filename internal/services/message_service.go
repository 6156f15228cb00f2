package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/events"
	"github.com/partnerlink/backend/internal/models"
	"github.com/partnerlink/backend/internal/repositories"
	"go.uber.org/zap"
)

type MessageService struct {
	messageRepo *repositories.MessageRepo
	userRepo    *repositories.UserRepo
	publisher   events.Publisher
	log         *zap.Logger
}

func NewMessageService(
	messageRepo *repositories.MessageRepo,
	userRepo *repositories.UserRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		log:         log,
	}
}

// Send delivers a message from sender to recipient, creating the conversation
// on first contact.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, fmt.Errorf("recipient not found")
	}

	conv, err := s.messageRepo.GetOrCreateConversation(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.messageRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.StreamMessages, events.Event{
		Type:   events.EventMessageSent,
		UserID: recipientID.String(),
		Payload: map[string]any{
			"conversation_id": conv.ID.String(),
			"message_id":      msg.ID.String(),
			"sender_id":       senderID.String(),
		},
	})

	return msg, nil
}

// Conversations lists the user's conversations newest-activity first, with
// peer display info, last message and unread count.
func (s *MessageService) Conversations(ctx context.Context, userID uuid.UUID) ([]models.ConversationSummary, error) {
	conversations, err := s.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.ConversationSummary, 0, len(conversations))
	for _, conv := range conversations {
		summary := models.ConversationSummary{Conversation: conv, PeerName: "Unknown User"}

		peer, err := s.userRepo.GetOrNil(ctx, conv.OtherUser(userID))
		if err != nil {
			return nil, err
		}
		if peer != nil {
			summary.PeerName = peer.FullName
			summary.PeerPhoto = peer.ProfilePhotoURL
		}

		if last, err := s.messageRepo.LastMessage(ctx, conv.ID); err == nil {
			summary.LastMessage = last
		}
		if unread, err := s.messageRepo.CountUnread(ctx, conv.ID, userID); err == nil {
			summary.UnreadCount = unread
		}

		out = append(out, summary)
	}
	return out, nil
}

// Thread returns the conversation's messages and marks the user's side read.
func (s *MessageService) Thread(ctx context.Context, conversationID, userID uuid.UUID) ([]models.Message, error) {
	conv, err := s.messageRepo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("conversation not found")
	}
	if conv.UserAID != userID && conv.UserBID != userID {
		return nil, fmt.Errorf("conversation not found")
	}

	messages, err := s.messageRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkRead(ctx, conversationID, userID); err != nil {
		s.log.Warn("failed to mark conversation read",
			zap.String("conversation_id", conversationID.String()), zap.Error(err))
	}

	return messages, nil
}
