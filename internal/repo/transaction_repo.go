package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

// CreateTransaction inserts a ledger entry with a fresh UUID.
func CreateTransaction(ctx context.Context, db *gorm.DB, t *domain.Transaction) error {
	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt, t.UpdatedAt = now, now
	return db.WithContext(ctx).Create(t).Error
}

// GetTransaction fetches one entry by id.
func GetTransaction(ctx context.Context, db *gorm.DB, id string) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTransactionsByChat returns chatID's entries, newest first.
func ListTransactionsByChat(ctx context.Context, db *gorm.DB, chatID string) ([]domain.Transaction, error) {
	out := []domain.Transaction{}
	err := db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at DESC, id ASC").
		Find(&out).Error
	return out, err
}

// UpdateTransaction applies column values to entry id.
func UpdateTransaction(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("id = ?", id).
		Updates(fields)
	return affected(res)
}

// DeleteTransaction removes entry id.
func DeleteTransaction(ctx context.Context, db *gorm.DB, id string) error {
	return affected(db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Transaction{}))
}
