package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/repo"
)

func txInput() TransactionInput {
	return TransactionInput{
		Amount:      decimal.RequireFromString("120.505"),
		Description: "Venda de pão",
		Type:        domain.TransactionIncome,
		ChatID:      "c1",
	}
}

func TestTransactionService_RegisterValidation(t *testing.T) {
	s := &TransactionService{DB: newFullDB(t)}
	ctx := context.Background()

	cases := []struct {
		name string
		mut  func(*TransactionInput)
		want error
	}{
		{"zero amount", func(in *TransactionInput) { in.Amount = decimal.Zero }, ErrMissingFields},
		{"no description", func(in *TransactionInput) { in.Description = "" }, ErrMissingFields},
		{"no chat", func(in *TransactionInput) { in.ChatID = "  " }, ErrMissingFields},
		{"no type", func(in *TransactionInput) { in.Type = "" }, ErrMissingFields},
		{"bad type", func(in *TransactionInput) { in.Type = "transfer" }, ErrInvalidTransactionType},
		{"negative", func(in *TransactionInput) { in.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := txInput()
			tc.mut(&in)
			_, _, err := s.Register(ctx, in, "")
			mustIs(t, err, tc.want)
		})
	}
}

func TestTransactionService_RegisterRoundsAndLists(t *testing.T) {
	s := &TransactionService{DB: newFullDB(t)}
	ctx := context.Background()

	tx, replayed, err := s.Register(ctx, txInput(), "")
	if err != nil || replayed {
		t.Fatalf("register = %v replayed=%v", err, replayed)
	}
	if !tx.Amount.Equal(decimal.RequireFromString("120.51")) {
		t.Fatalf("amount = %s", tx.Amount)
	}
	list, err := s.ListByChatID(ctx, "c1")
	if err != nil || len(list) != 1 || list[0].ID != tx.ID {
		t.Fatalf("list = %+v, %v", list, err)
	}
}

func TestTransactionService_IdempotentReplay(t *testing.T) {
	s := &TransactionService{DB: newFullDB(t), IdempotencyTTL: time.Hour}
	ctx := context.Background()

	first, replayed, err := s.Register(ctx, txInput(), "key-1")
	if err != nil || replayed {
		t.Fatalf("first = %v replayed=%v", err, replayed)
	}
	ok, err := s.HasKey(ctx, "key-1", time.Now())
	if err != nil || !ok {
		t.Fatalf("HasKey = %v, %v", ok, err)
	}

	// A retry with the same key returns the first entry even if the body changed.
	changed := txInput()
	changed.Description = "outra"
	second, replayed, err := s.Register(ctx, changed, "key-1")
	if err != nil || !replayed || second.ID != first.ID {
		t.Fatalf("replay = %+v replayed=%v err=%v", second, replayed, err)
	}
	list, _ := s.ListByChatID(ctx, "c1")
	if len(list) != 1 {
		t.Fatalf("replay must not insert, got %d rows", len(list))
	}

	if ok, _ := s.HasKey(ctx, "key-1", time.Now().Add(2*time.Hour)); ok {
		t.Fatalf("key should expire after TTL")
	}
}

func TestTransactionService_DeleteReleasesKey(t *testing.T) {
	s := &TransactionService{DB: newFullDB(t), IdempotencyTTL: time.Hour}
	ctx := context.Background()

	first, _, err := s.Register(ctx, txInput(), "key-1")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := s.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, err := s.HasKey(ctx, "key-1", time.Now()); err != nil || ok {
		t.Fatalf("HasKey after delete = %v, %v", ok, err)
	}

	again, replayed, err := s.Register(ctx, txInput(), "key-1")
	if err != nil || replayed || again.ID == first.ID {
		t.Fatalf("reuse = %+v replayed=%v err=%v", again, replayed, err)
	}
	if ok, _ := s.HasKey(ctx, "key-1", time.Now()); !ok {
		t.Fatalf("key should map to the new entry")
	}
	third, replayed, err := s.Register(ctx, txInput(), "key-1")
	if err != nil || !replayed || third.ID != again.ID {
		t.Fatalf("replay after reuse = %+v replayed=%v err=%v", third, replayed, err)
	}
}

func TestTransactionService_DanglingKeyIsReusable(t *testing.T) {
	db := newFullDB(t)
	s := &TransactionService{DB: db, IdempotencyTTL: time.Hour}
	ctx := context.Background()

	first, _, err := s.Register(ctx, txInput(), "key-1")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	// Remove the entry without going through the service.
	if err := repo.DeleteTransaction(ctx, db, first.ID); err != nil {
		t.Fatalf("raw delete: %v", err)
	}
	if ok, _ := s.HasKey(ctx, "key-1", time.Now()); ok {
		t.Fatalf("dangling key must not count")
	}
	again, replayed, err := s.Register(ctx, txInput(), "key-1")
	if err != nil || replayed || again.ID == first.ID {
		t.Fatalf("reuse = %+v replayed=%v err=%v", again, replayed, err)
	}
}

func TestTransactionService_ExpiredKeyIsReusable(t *testing.T) {
	s := &TransactionService{DB: newFullDB(t), IdempotencyTTL: time.Millisecond}
	ctx := context.Background()

	first, _, err := s.Register(ctx, txInput(), "key-1")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	again, replayed, err := s.Register(ctx, txInput(), "key-1")
	if err != nil || replayed || again.ID == first.ID {
		t.Fatalf("after expiry = %+v replayed=%v err=%v", again, replayed, err)
	}
	list, _ := s.ListByChatID(ctx, "c1")
	if len(list) != 2 {
		t.Fatalf("want 2 entries, got %d", len(list))
	}
}

func TestTransactionService_UpdateDelete(t *testing.T) {
	s := &TransactionService{DB: newFullDB(t)}
	ctx := context.Background()
	tx, _, _ := s.Register(ctx, txInput(), "")

	expense := domain.TransactionExpense
	amt := decimal.RequireFromString("10")
	got, err := s.Update(ctx, tx.ID, TransactionPatch{Type: &expense, Amount: &amt})
	if err != nil || got.Type != expense || !got.Amount.Equal(amt) || got.Description != "Venda de pão" {
		t.Fatalf("update = %+v, %v", got, err)
	}

	bad := domain.TransactionType("gift")
	_, err = s.Update(ctx, tx.ID, TransactionPatch{Type: &bad})
	mustIs(t, err, ErrInvalidTransactionType)

	neg := decimal.NewFromInt(-1)
	_, err = s.Update(ctx, tx.ID, TransactionPatch{Amount: &neg})
	mustIs(t, err, ErrInvalidAmount)

	_, err = s.Update(ctx, "missing", TransactionPatch{Description: sp("x")})
	mustIs(t, err, ErrTransactionNotFound)

	if err := s.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	mustIs(t, s.Delete(ctx, tx.ID), ErrTransactionNotFound)
	_, err = s.Get(ctx, tx.ID)
	mustIs(t, err, ErrNotFound)
}
