package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
)

func TestCompany_CRUD(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	a := &domain.Company{CNPJ: "11222333000181", ChatID: "c1", NomeFantasia: "Padaria"}
	b := &domain.Company{CNPJ: "99888777000166", ChatID: "c1", NomeFantasia: "Oficina"}
	other := &domain.Company{CNPJ: "55444333000122", ChatID: "c2"}
	for _, c := range []*domain.Company{a, b, other} {
		if err := CreateCompany(ctx, db, c); err != nil {
			t.Fatalf("create %s: %v", c.CNPJ, err)
		}
	}

	if err := CreateCompany(ctx, db, &domain.Company{CNPJ: a.CNPJ, ChatID: "c9"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	list, err := ListCompaniesByChat(ctx, db, "c1")
	if err != nil || len(list) != 2 {
		t.Fatalf("list = %d, %v", len(list), err)
	}
	empty, err := ListCompaniesByChat(ctx, db, "nobody")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty list should be non-nil and empty, got %#v, %v", empty, err)
	}

	if err := UpdateCompany(ctx, db, a.CNPJ, map[string]any{"telefone": "1199"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := GetCompanyByCNPJ(ctx, db, a.CNPJ)
	if err != nil || got.Telefone != "1199" || got.NomeFantasia != "Padaria" {
		t.Fatalf("get = %+v, %v", got, err)
	}

	if err := DeleteCompany(ctx, db, a.CNPJ); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := DeleteCompany(ctx, db, a.CNPJ); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should be ErrNotFound, got %v", err)
	}
	if ok, _ := CompanyExists(ctx, db, b.CNPJ); !ok {
		t.Fatalf("sibling company should remain")
	}
}
