package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

func TestUserInfo_CRUD(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	u := &domain.UserInfo{ChatID: "5511999", Nome: "Ana", CPF: "123.456.789-00", DataNascimento: "1990-01-01", Email: "ana@x.com"}
	if err := CreateUserInfo(ctx, db, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps, got %+v", u)
	}

	ok, err := UserInfoExists(ctx, db, "5511999")
	if err != nil || !ok {
		t.Fatalf("exists = %v, %v", ok, err)
	}

	dup := &domain.UserInfo{ChatID: "5511999", Nome: "B", CPF: "1", DataNascimento: "x", Email: "b@x.com"}
	if err := CreateUserInfo(ctx, db, dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	if err := UpdateUserInfo(ctx, db, "5511999", map[string]any{"email": "new@x.com"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := GetUserInfo(ctx, db, "5511999")
	if err != nil || got.Email != "new@x.com" || got.Nome != "Ana" {
		t.Fatalf("get after update = %+v, %v", got, err)
	}

	if err := DeleteUserInfo(ctx, db, "5511999"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetUserInfo(ctx, db, "5511999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUserInfo_MissingRows(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	if err := UpdateUserInfo(ctx, db, "ghost", map[string]any{"nome": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing: %v", err)
	}
	if err := DeleteUserInfo(ctx, db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: %v", err)
	}
	if ok, err := UserInfoExists(ctx, db, "ghost"); ok || err != nil {
		t.Fatalf("exists missing = %v, %v", ok, err)
	}
}
