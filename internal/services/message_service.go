// Package services – MessageService
//
// This file implements MessageService, which records inbound chat messages
// and maintains the per-chat UserState that the dashboard counts as users.
// Recording a message creates the chat identity on first contact.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include the chat identifier.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/repo"
)

const maxMessageTypeLen = 32

// MessageInput is one inbound message as reported by the bot.
type MessageInput struct {
	ChatID      string     `json:"chatId"      validate:"required"`
	ThreadID    string     `json:"threadId"    validate:"max=128"`
	MessageType string     `json:"messageType"`
	Content     string     `json:"content"`
	ReceivedAt  *time.Time `json:"receivedAt"`
}

// MessageService coordinates message persistence and chat identities.
type MessageService struct {
	DB *gorm.DB
}

// Record stores the message and ensures the chat identity exists, both in
// one transaction.
func (s *MessageService) Record(ctx context.Context, in MessageInput) (*domain.Message, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "Record", trace.WithAttributes(attribute.String("chat.id", in.ChatID)))
	defer span.End()

	in.ChatID = trimmed(in.ChatID)
	if err := checkInput(in); err != nil {
		return nil, err
	}
	mt := strings.ToLower(strings.TrimSpace(in.MessageType))
	if len(mt) > maxMessageTypeLen {
		return nil, classed(ErrInvalidInput, "Invalid messageType")
	}
	var at time.Time
	if in.ReceivedAt != nil {
		at = *in.ReceivedAt
	}

	var msg *domain.Message
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.EnsureUserState(ctx, tx, in.ChatID); err != nil {
			return err
		}
		m, err := repo.CreateMessage(ctx, tx, in.ChatID, in.ThreadID, mt, in.Content, at)
		if err != nil {
			return err
		}
		msg = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// SetCooldown marks chatID as rate limited (or clears it).
func (s *MessageService) SetCooldown(ctx context.Context, chatID string, on bool) (*domain.UserState, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "SetCooldown", trace.WithAttributes(
		attribute.String("chat.id", chatID),
		attribute.Bool("cooldown", on),
	))
	defer span.End()

	if err := repo.SetCooldown(ctx, s.DB, chatID, on); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return repo.GetUserState(ctx, s.DB, chatID)
}

// CountUsers returns the number of distinct chat identities.
func (s *MessageService) CountUsers(ctx context.Context) (int64, error) {
	tr := otel.Tracer("services/MessageService")
	ctx, span := tr.Start(ctx, "CountUsers")
	defer span.End()

	return repo.CountUserStates(ctx, s.DB)
}
