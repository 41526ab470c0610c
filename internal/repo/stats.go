// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate queries behind the
// dashboard metrics. Each function is context-aware and independent of the
// others so callers can run them concurrently.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

// TypeCount is one row of a GROUP BY message_type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// FeedbackCounts summarizes feedback by keyword class.
type FeedbackCounts struct {
	Total     int64 `json:"total"`
	Positive  int64 `json:"positive"`
	Negative  int64 `json:"negative"`
	WantsHelp int64 `json:"wantsHelp"`
}

// Keyword sets used to classify feedback. Matching is a case-insensitive
// substring test.
var (
	PositiveKeywords = []string{"positive", "good", "great"}
	NegativeKeywords = []string{"negative", "bad", "poor"}
)

// CountMessages returns the total number of stored messages.
func CountMessages(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Message{}).Count(&n).Error
	return n, err
}

// CountMessagesSince counts messages received at or after since.
func CountMessagesSince(ctx context.Context, db *gorm.DB, since time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Message{}).
		Where("received_at >= ?", since.UTC()).
		Count(&n).Error
	return n, err
}

// CountThreads returns the number of distinct non-empty thread ids.
func CountThreads(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT thread_id) FROM messages WHERE thread_id IS NOT NULL AND thread_id <> ''").
		Scan(&n).Error
	return n, err
}

// CountActiveUsers counts chat identities with at least one message
// received at or after since.
func CountActiveUsers(ctx context.Context, db *gorm.DB, since time.Time) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(DISTINCT us.chat_id)
		   FROM user_states us
		   JOIN messages m ON m.chat_id = us.chat_id
		  WHERE m.received_at >= ?`, since.UTC()).
		Scan(&n).Error
	return n, err
}

// CountCooldowns returns how many chat identities are rate limited.
func CountCooldowns(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.UserState{}).
		Where("is_on_cooldown = ?", true).
		Count(&n).Error
	return n, err
}

// MessageTypeCounts groups messages by type, largest group first.
func MessageTypeCounts(ctx context.Context, db *gorm.DB) ([]TypeCount, error) {
	out := []TypeCount{}
	err := db.WithContext(ctx).Model(&domain.Message{}).
		Select("message_type AS type, COUNT(*) AS count").
		Group("message_type").
		Order("count DESC, message_type ASC").
		Scan(&out).Error
	return out, err
}

// MessageTimesSince returns receipt times of messages at or after since.
// Bucketing happens in Go so the query stays portable across drivers.
func MessageTimesSince(ctx context.Context, db *gorm.DB, since time.Time) ([]time.Time, error) {
	var out []time.Time
	err := db.WithContext(ctx).Model(&domain.Message{}).
		Where("received_at >= ?", since.UTC()).
		Pluck("received_at", &out).Error
	return out, err
}

// UserCreationTimesSince returns creation times of chat identities created
// at or after since.
func UserCreationTimesSince(ctx context.Context, db *gorm.DB, since time.Time) ([]time.Time, error) {
	var out []time.Time
	err := db.WithContext(ctx).Model(&domain.UserState{}).
		Where("created_at >= ?", since.UTC()).
		Pluck("created_at", &out).Error
	return out, err
}

// FeedbackStats classifies feedback with the keyword sets above. A row
// matching both sets counts in both.
func FeedbackStats(ctx context.Context, db *gorm.DB) (FeedbackCounts, error) {
	var fc FeedbackCounts
	if err := db.WithContext(ctx).Model(&domain.Feedback{}).Count(&fc.Total).Error; err != nil {
		return fc, err
	}
	if err := keywordScope(db.WithContext(ctx).Model(&domain.Feedback{}), PositiveKeywords).Count(&fc.Positive).Error; err != nil {
		return fc, err
	}
	if err := keywordScope(db.WithContext(ctx).Model(&domain.Feedback{}), NegativeKeywords).Count(&fc.Negative).Error; err != nil {
		return fc, err
	}
	err := db.WithContext(ctx).Model(&domain.Feedback{}).
		Where("wanna_help = ?", true).
		Count(&fc.WantsHelp).Error
	return fc, err
}

func keywordScope(q *gorm.DB, words []string) *gorm.DB {
	cond := q.Session(&gorm.Session{NewDB: true})
	for i, w := range words {
		if i == 0 {
			cond = cond.Where("LOWER(content) LIKE ?", "%"+w+"%")
			continue
		}
		cond = cond.Or("LOWER(content) LIKE ?", "%"+w+"%")
	}
	return q.Where(cond)
}
