// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback
// model.
//
// Feedback rows are append-only apart from hard deletes. Listing is paged
// newest first; CountFeedback supplies the total for pagination metadata.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

// CreateFeedback inserts a feedback row. chatID may be nil for anonymous
// submissions.
func CreateFeedback(ctx context.Context, db *gorm.DB, chatID *string, content string, wannaHelp bool) (*domain.Feedback, error) {
	fb := &domain.Feedback{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Content:   content,
		WannaHelp: wannaHelp,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

// GetFeedback fetches one row by id.
func GetFeedback(ctx context.Context, db *gorm.DB, id string) (*domain.Feedback, error) {
	var fb domain.Feedback
	if err := db.WithContext(ctx).Where("id = ?", id).First(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

// CountFeedback returns the number of rows.
func CountFeedback(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Feedback{}).Count(&total).Error
	return total, err
}

// ListFeedbackPage returns a page ordered by creation time descending.
func ListFeedbackPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Feedback, error) {
	out := []domain.Feedback{}
	err := db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteFeedback removes row id.
func DeleteFeedback(ctx context.Context, db *gorm.DB, id string) error {
	return affected(db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Feedback{}))
}
