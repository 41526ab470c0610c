// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for inbound
// messages and the per-chat UserState rows they create.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

// EnsureUserState creates the UserState for chatID if it is missing. It is
// safe to call concurrently: a losing insert is ignored by the unique index.
func EnsureUserState(ctx context.Context, db *gorm.DB, chatID string) error {
	now := time.Now().UTC()
	st := &domain.UserState{ChatID: chatID, CreatedAt: now, UpdatedAt: now}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "chat_id"}}, DoNothing: true}).
		Create(st).Error
}

// GetUserState fetches the state row for chatID.
func GetUserState(ctx context.Context, db *gorm.DB, chatID string) (*domain.UserState, error) {
	var st domain.UserState
	if err := db.WithContext(ctx).Where("chat_id = ?", chatID).First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// SetCooldown flips the rate-limit flag for chatID.
func SetCooldown(ctx context.Context, db *gorm.DB, chatID string, on bool) error {
	res := db.WithContext(ctx).
		Model(&domain.UserState{}).
		Where("chat_id = ?", chatID).
		Updates(map[string]any{"is_on_cooldown": on, "updated_at": time.Now().UTC()})
	return affected(res)
}

// CountUserStates returns the number of distinct chat identities.
func CountUserStates(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.UserState{}).Count(&total).Error
	return total, err
}

// CreateMessage records an inbound message. A zero receivedAt means now.
func CreateMessage(ctx context.Context, db *gorm.DB, chatID, threadID, messageType, content string, receivedAt time.Time) (*domain.Message, error) {
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	if messageType == "" {
		messageType = "text"
	}
	m := &domain.Message{
		ID:          uuid.NewString(),
		ChatID:      chatID,
		ThreadID:    threadID,
		MessageType: messageType,
		Content:     content,
		ReceivedAt:  receivedAt.UTC(),
	}
	return m, db.WithContext(ctx).Create(m).Error
}

// ListMessages returns chatID's messages ordered (ReceivedAt ASC, ID ASC).
func ListMessages(ctx context.Context, db *gorm.DB, chatID string, limit int) ([]domain.Message, error) {
	out := []domain.Message{}
	q := db.WithContext(ctx).Where("chat_id = ?", chatID).Order("received_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
