package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/repo"
)

// IdempotencyScopeTransactions namespaces Idempotency-Key values used on
// ledger creation.
const IdempotencyScopeTransactions = "transactions"

// TransactionInput is the payload for registering a ledger entry.
type TransactionInput struct {
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description" validate:"required"`
	Type        domain.TransactionType `json:"type"        validate:"required"`
	ChatID      string                 `json:"chatId"      validate:"required"`
}

// TransactionPatch is a partial ledger update.
type TransactionPatch struct {
	Amount      *decimal.Decimal        `json:"amount"`
	Description *string                 `json:"description"`
	Type        *domain.TransactionType `json:"type"`
}

// TransactionService manages ledger entries.
type TransactionService struct {
	DB             *gorm.DB
	IdempotencyTTL time.Duration
}

// Register creates a ledger entry. When key is non-empty and a live record
// exists for it, the entry created by the first attempt is returned with
// replayed=true instead of inserting again.
func (s *TransactionService) Register(ctx context.Context, in TransactionInput, key string) (tx *domain.Transaction, replayed bool, err error) {
	tr := otel.Tracer("services/TransactionService")
	ctx, span := tr.Start(ctx, "Register", trace.WithAttributes(
		attribute.String("chat.id", in.ChatID),
		attribute.Bool("idempotent", key != ""),
	))
	defer span.End()

	if key != "" {
		if prev, err := s.replay(ctx, key); err == nil {
			return prev, true, nil
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, false, err
		}
	}

	in.ChatID = trimmed(in.ChatID)
	if in.Amount.IsZero() {
		return nil, false, ErrMissingFields
	}
	if err := checkInput(in); err != nil {
		return nil, false, err
	}
	if !in.Type.Valid() {
		return nil, false, ErrInvalidTransactionType
	}
	if in.Amount.IsNegative() {
		return nil, false, ErrInvalidAmount
	}

	t := &domain.Transaction{
		Amount:      in.Amount.Round(2),
		Description: in.Description,
		Type:        in.Type,
		ChatID:      in.ChatID,
	}
	err = s.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := repo.CreateTransaction(ctx, db, t); err != nil {
			return err
		}
		if key == "" {
			return nil
		}
		// An expired record still holds the unique (scope, key) slot.
		if err := repo.DeleteExpiredIdempotencyKey(ctx, db, IdempotencyScopeTransactions, key, time.Now()); err != nil {
			return err
		}
		_, err := repo.CreateIdempotency(ctx, db, IdempotencyScopeTransactions, key, t.ID, http.StatusCreated, s.ttl())
		return err
	})
	if errors.Is(err, repo.ErrDuplicate) {
		// A concurrent request with the same key won.
		prev, rerr := s.replay(ctx, key)
		if rerr != nil {
			return nil, false, rerr
		}
		return prev, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return t, false, nil
}

// HasKey reports whether key maps to a stored ledger entry. A live record
// whose entry has since been deleted does not count.
func (s *TransactionService) HasKey(ctx context.Context, key string, now time.Time) (bool, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, IdempotencyScopeTransactions, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_, err = repo.GetTransaction(ctx, s.DB, rec.ResourceID)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// replay returns the entry stored under key, or repo.ErrNotFound when there is
// no live record. A record whose entry is gone is dropped and reported as
// not found so the key can be reused.
func (s *TransactionService) replay(ctx context.Context, key string) (*domain.Transaction, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, IdempotencyScopeTransactions, key, time.Now())
	if err != nil {
		return nil, err
	}
	t, err := repo.GetTransaction(ctx, s.DB, rec.ResourceID)
	if errors.Is(err, repo.ErrNotFound) {
		if _, derr := repo.DeleteIdempotencyByResource(ctx, s.DB, IdempotencyScopeTransactions, rec.ResourceID); derr != nil {
			return nil, derr
		}
	}
	return t, err
}

func (s *TransactionService) ttl() time.Duration {
	if s.IdempotencyTTL > 0 {
		return s.IdempotencyTTL
	}
	return 24 * time.Hour
}

// Get returns one entry.
func (s *TransactionService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	tr := otel.Tracer("services/TransactionService")
	ctx, span := tr.Start(ctx, "Get", trace.WithAttributes(attribute.String("transaction.id", id)))
	defer span.End()

	t, err := repo.GetTransaction(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTransactionNotFound
	}
	return t, err
}

// ListByChatID returns chatID's entries, newest first.
func (s *TransactionService) ListByChatID(ctx context.Context, chatID string) ([]domain.Transaction, error) {
	tr := otel.Tracer("services/TransactionService")
	ctx, span := tr.Start(ctx, "ListByChatID", trace.WithAttributes(attribute.String("chat.id", chatID)))
	defer span.End()

	return repo.ListTransactionsByChat(ctx, s.DB, chatID)
}

// Update merges p into entry id and returns the result.
func (s *TransactionService) Update(ctx context.Context, id string, p TransactionPatch) (*domain.Transaction, error) {
	tr := otel.Tracer("services/TransactionService")
	ctx, span := tr.Start(ctx, "Update", trace.WithAttributes(attribute.String("transaction.id", id)))
	defer span.End()

	cols := map[string]any{}
	if p.Type != nil {
		if !p.Type.Valid() {
			return nil, ErrInvalidTransactionType
		}
		cols["type"] = *p.Type
	}
	if p.Amount != nil {
		if p.Amount.IsNegative() {
			return nil, ErrInvalidAmount
		}
		cols["amount"] = p.Amount.Round(2)
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}

	if len(cols) > 0 {
		if err := repo.UpdateTransaction(ctx, s.DB, id, cols); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrTransactionNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes entry id and releases any Idempotency-Key stored for it.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	tr := otel.Tracer("services/TransactionService")
	ctx, span := tr.Start(ctx, "Delete", trace.WithAttributes(attribute.String("transaction.id", id)))
	defer span.End()

	err := s.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := repo.DeleteTransaction(ctx, db, id); err != nil {
			return err
		}
		_, err := repo.DeleteIdempotencyByResource(ctx, db, IdempotencyScopeTransactions, id)
		return err
	})
	if errors.Is(err, repo.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}
