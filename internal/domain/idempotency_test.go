package domain

import (
	"testing"
	"time"
)

func TestIdempotency_UniqueScopeKey(t *testing.T) {
	db := newDomainDB(t)
	if !db.Migrator().HasIndex(&Idempotency{}, "ux_idem_scope_key") {
		t.Fatalf("expected composite index ux_idem_scope_key")
	}

	now := time.Now().UTC()
	rec := &Idempotency{
		ID:         "id-1",
		Scope:      "chat-1",
		Key:        "k1",
		ResourceID: "tx-1",
		Status:     201,
		ExpiresAt:  now.Add(time.Hour),
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	var got Idempotency
	if err := db.First(&got, "id = ?", "id-1").Error; err != nil {
		t.Fatalf("readback: %v", err)
	}
	if got.Scope != "chat-1" || got.Key != "k1" || got.ResourceID != "tx-1" || got.Status != 201 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt should be filled by autoCreateTime")
	}

	dup := &Idempotency{ID: "id-2", Scope: "chat-1", Key: "k1", ResourceID: "tx-2", Status: 201, ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected unique violation on (scope, key)")
	}

	other := &Idempotency{ID: "id-3", Scope: "chat-2", Key: "k1", ResourceID: "tx-3", Status: 201, ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("same key under another scope must be allowed: %v", err)
	}
}
