package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

func TestGetIdempotency_BlankScopeOrKey(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	now := time.Now().UTC()

	if rec, err := GetIdempotency(context.Background(), db, "  ", "k1", now); rec != nil || err != ErrNotFound {
		t.Fatalf("blank scope: (%v, %v)", rec, err)
	}
	if rec, err := GetIdempotency(context.Background(), db, "c1", "", now); rec != nil || err != ErrNotFound {
		t.Fatalf("blank key: (%v, %v)", rec, err)
	}
}

func TestIdempotency_CreateGetExpire(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	ctx := context.Background()

	rec, err := CreateIdempotency(ctx, db, "c1", "k1", "tx-1", 201, time.Hour)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := GetIdempotency(ctx, db, "c1", "k1", time.Now())
	if err != nil || got.ResourceID != "tx-1" || got.Status != 201 || got.ID != rec.ID {
		t.Fatalf("get = %+v, %v", got, err)
	}

	// Another scope may reuse the key.
	if _, err := CreateIdempotency(ctx, db, "c2", "k1", "tx-2", 201, time.Hour); err != nil {
		t.Fatalf("other scope: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, "c1", "k1", "tx-3", 201, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	later := time.Now().Add(2 * time.Hour)
	if _, err := GetIdempotency(ctx, db, "c1", "k1", later); err != ErrNotFound {
		t.Fatalf("expired record should be ErrNotFound, got %v", err)
	}
	n, err := PurgeExpiredIdempotency(ctx, db, later)
	if err != nil || n != 2 {
		t.Fatalf("purge = %d, %v", n, err)
	}
}

func TestCreateIdempotency_MissingTable(t *testing.T) {
	db := newTestDB(t)
	_, err := CreateIdempotency(context.Background(), db, "c1", "k", "r", 201, time.Hour)
	if err == nil || errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected raw DB error, got %v", err)
	}
}

func TestDeleteIdempotency_ByResourceAndExpiredKey(t *testing.T) {
	db := newTestDB(t, &domain.Idempotency{})
	ctx := context.Background()

	for _, k := range []string{"k1", "k2"} {
		if _, err := CreateIdempotency(ctx, db, "transactions", k, "tx-1", 201, time.Hour); err != nil {
			t.Fatalf("create %s: %v", k, err)
		}
	}
	if _, err := CreateIdempotency(ctx, db, "other", "k1", "tx-1", 201, time.Hour); err != nil {
		t.Fatalf("create other: %v", err)
	}

	n, err := DeleteIdempotencyByResource(ctx, db, "transactions", "tx-1")
	if err != nil || n != 2 {
		t.Fatalf("by resource = %d, %v", n, err)
	}
	if _, err := GetIdempotency(ctx, db, "other", "k1", time.Now()); err != nil {
		t.Fatalf("other scope must survive: %v", err)
	}

	// A live record is kept; an expired one frees the slot.
	if err := DeleteExpiredIdempotencyKey(ctx, db, "other", "k1", time.Now()); err != nil {
		t.Fatalf("delete live: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, "other", "k1", "tx-2", 201, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("live record should still block, got %v", err)
	}
	if err := DeleteExpiredIdempotencyKey(ctx, db, "other", "k1", time.Now().Add(2*time.Hour)); err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, "other", "k1", "tx-2", 201, time.Hour); err != nil {
		t.Fatalf("slot should be free: %v", err)
	}
}
