// Package services – FeedbackService
//
// This file implements FeedbackService, which stores free-text feedback left
// through the bot and classifies it by keyword. Classification is a
// case-folded substring test against repo.PositiveKeywords and
// repo.NegativeKeywords, the same sets the dashboard aggregates use.
package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/repo"
	"github.com/CathalystLTDA/zapcont-api/internal/utils"
)

// Sentiment is the keyword class of a feedback text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
	SentimentNeutral  Sentiment = "neutral"
)

// ClassifiedFeedback pairs a stored row with its sentiment.
type ClassifiedFeedback struct {
	domain.Feedback
	Sentiment Sentiment `json:"sentiment"`
}

// FeedbackInput is the payload for leaving feedback.
type FeedbackInput struct {
	ChatID    *string `json:"chatId"`
	Content   string  `json:"content"`
	WannaHelp bool    `json:"wannaHelp"`
}

// FeedbackService implements the feedback use-cases.
type FeedbackService struct {
	DB *gorm.DB
}

// Classify folds content and matches it against both keyword sets.
func Classify(content string) Sentiment {
	folded := cases.Fold().String(content)
	pos := containsAny(folded, repo.PositiveKeywords)
	neg := containsAny(folded, repo.NegativeKeywords)
	switch {
	case pos && neg:
		return SentimentMixed
	case pos:
		return SentimentPositive
	case neg:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func classify(fb domain.Feedback) ClassifiedFeedback {
	return ClassifiedFeedback{Feedback: fb, Sentiment: Classify(fb.Content)}
}

// Create stores feedback. Blank content is rejected; a blank chatId is
// stored as anonymous.
func (s *FeedbackService) Create(ctx context.Context, in FeedbackInput) (*ClassifiedFeedback, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "Create", trace.WithAttributes(attribute.Bool("wanna_help", in.WannaHelp)))
	defer span.End()

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	chatID := in.ChatID
	if chatID != nil && strings.TrimSpace(*chatID) == "" {
		chatID = nil
	}
	fb, err := repo.CreateFeedback(ctx, s.DB, chatID, content, in.WannaHelp)
	if err != nil {
		return nil, err
	}
	out := classify(*fb)
	return &out, nil
}

// Get returns one feedback row.
func (s *FeedbackService) Get(ctx context.Context, id string) (*ClassifiedFeedback, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "Get", trace.WithAttributes(attribute.String("feedback.id", id)))
	defer span.End()

	fb, err := repo.GetFeedback(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrFeedbackNotFound
	}
	if err != nil {
		return nil, err
	}
	out := classify(*fb)
	return &out, nil
}

// ListPage returns one page of feedback, newest first, plus the total.
func (s *FeedbackService) ListPage(ctx context.Context, page, pageSize int) ([]ClassifiedFeedback, int64, error) {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "ListPage", trace.WithAttributes(
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	))
	defer span.End()

	total, err := repo.CountFeedback(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []ClassifiedFeedback{}, 0, nil
	}
	rows, err := repo.ListFeedbackPage(ctx, s.DB, utils.Offset(page, pageSize), pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]ClassifiedFeedback, len(rows))
	for i, fb := range rows {
		out[i] = classify(fb)
	}
	return out, total, nil
}

// Delete removes one feedback row.
func (s *FeedbackService) Delete(ctx context.Context, id string) error {
	tr := otel.Tracer("services/FeedbackService")
	ctx, span := tr.Start(ctx, "Delete", trace.WithAttributes(attribute.String("feedback.id", id)))
	defer span.End()

	err := repo.DeleteFeedback(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrFeedbackNotFound
	}
	return err
}
