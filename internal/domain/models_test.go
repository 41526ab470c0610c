package domain

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:domain_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		UserState{}.TableName():   "user_states",
		Message{}.TableName():     "messages",
		UserInfo{}.TableName():    "user_info",
		Company{}.TableName():     "companies",
		Transaction{}.TableName(): "transactions",
		Feedback{}.TableName():    "feedback",
		Idempotency{}.TableName(): "idempotency",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestTransactionType_Valid(t *testing.T) {
	if !TransactionIncome.Valid() || !TransactionExpense.Valid() {
		t.Fatalf("known types must be valid")
	}
	if TransactionType("refund").Valid() || TransactionType("").Valid() {
		t.Fatalf("unknown types must be invalid")
	}
}

func TestMigrations_UniqueKeys(t *testing.T) {
	db := newDomainDB(t)
	m := db.Migrator()

	for _, model := range All() {
		if !m.HasTable(model) {
			t.Fatalf("expected table for %T", model)
		}
	}
	for model, idx := range map[any]string{
		&UserState{}: "ux_user_states_chat",
		&UserInfo{}:  "ux_user_info_chat",
		&Company{}:   "ux_companies_cnpj",
	} {
		if !m.HasIndex(model, idx) {
			t.Fatalf("expected index %s on %T", idx, model)
		}
	}

	if err := db.Create(&Company{CNPJ: "12345678000190", ChatID: "c1"}).Error; err != nil {
		t.Fatalf("insert company: %v", err)
	}
	if err := db.Create(&Company{CNPJ: "12345678000190", ChatID: "c2"}).Error; err == nil {
		t.Fatalf("expected unique violation on cnpj")
	}

	if err := db.Create(&UserState{ChatID: "c1"}).Error; err != nil {
		t.Fatalf("insert user state: %v", err)
	}
	if err := db.Create(&UserState{ChatID: "c1"}).Error; err == nil {
		t.Fatalf("expected unique violation on user_states.chat_id")
	}
}

func TestTransaction_DecimalRoundTrip(t *testing.T) {
	db := newDomainDB(t)

	tx := &Transaction{
		ID:          uuid.NewString(),
		Amount:      decimal.RequireFromString("1234.56"),
		Description: "consultoria",
		Type:        TransactionIncome,
		ChatID:      "c1",
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	var got Transaction
	if err := db.First(&got, "id = ?", tx.ID).Error; err != nil {
		t.Fatalf("readback: %v", err)
	}
	if !got.Amount.Equal(tx.Amount) {
		t.Fatalf("amount = %s; want %s", got.Amount, tx.Amount)
	}

	bad := &Transaction{ID: uuid.NewString(), Amount: decimal.NewFromInt(1), Description: "x", Type: "refund", ChatID: "c1"}
	if err := db.Create(bad).Error; err == nil {
		t.Fatalf("expected check constraint to reject type=refund")
	}
}

func TestFeedback_NullableChatID(t *testing.T) {
	db := newDomainDB(t)
	now := time.Now().UTC()

	anon := &Feedback{ID: uuid.NewString(), Content: "great bot", CreatedAt: now}
	if err := db.Create(anon).Error; err != nil {
		t.Fatalf("insert anonymous feedback: %v", err)
	}
	var got Feedback
	if err := db.First(&got, "id = ?", anon.ID).Error; err != nil {
		t.Fatalf("readback: %v", err)
	}
	if got.ChatID != nil {
		t.Fatalf("expected nil chat id, got %q", *got.ChatID)
	}
}
