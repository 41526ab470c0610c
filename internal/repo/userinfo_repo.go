// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for UserInfo.
//
// Profiles are keyed by chat identity. Writes that match no row return
// ErrNotFound; inserts that hit the unique chat index return ErrDuplicate.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

// CreateUserInfo inserts a profile.
func CreateUserInfo(ctx context.Context, db *gorm.DB, u *domain.UserInfo) error {
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// UserInfoExists reports whether chatID already has a profile.
func UserInfoExists(ctx context.Context, db *gorm.DB, chatID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.UserInfo{}).Where("chat_id = ?", chatID).Count(&n).Error
	return n > 0, err
}

// GetUserInfo fetches the profile for chatID.
func GetUserInfo(ctx context.Context, db *gorm.DB, chatID string) (*domain.UserInfo, error) {
	var u domain.UserInfo
	if err := db.WithContext(ctx).Where("chat_id = ?", chatID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUserInfo applies the given column values to chatID's profile.
func UpdateUserInfo(ctx context.Context, db *gorm.DB, chatID string, fields map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.UserInfo{}).
		Where("chat_id = ?", chatID).
		Updates(fields)
	return affected(res)
}

// DeleteUserInfo removes chatID's profile.
func DeleteUserInfo(ctx context.Context, db *gorm.DB, chatID string) error {
	res := db.WithContext(ctx).Where("chat_id = ?", chatID).Delete(&domain.UserInfo{})
	return affected(res)
}
