// Package domain defines the persistence models for the chat-bot data
// store: chat identities, messages, user profiles, companies, ledger
// transactions, and feedback. The types are mapped with GORM and shared by
// the repository and service layers.
//
// Entities are independent collections correlated only by ChatID; there
// are no foreign keys and no cascades between them. Deletes are hard.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserState is a chat identity as seen by the bot. One row exists per
// chatId; it is created on first contact (message or profile
// registration) and counts as one user for reporting.
type UserState struct {
	ID           uint      `json:"id"           gorm:"primaryKey"`
	ChatID       string    `json:"chatId"       gorm:"type:varchar(64);not null;uniqueIndex:ux_user_states_chat"`
	IsOnCooldown bool      `json:"isOnCooldown" gorm:"not null;default:false;index"`
	CreatedAt    time.Time `json:"createdAt"    gorm:"index"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the database table name for UserState.
func (UserState) TableName() string { return "user_states" }

// Message is one inbound chat message recorded by the bot.
//
// ThreadID groups messages into a conversation; MessageType is the
// transport-level kind (text, audio, image, ...).
type Message struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	ChatID      string    `json:"chatId"      gorm:"type:varchar(64);not null;index:idx_messages_chat"`
	ThreadID    string    `json:"threadId"    gorm:"type:varchar(128);index"`
	MessageType string    `json:"messageType" gorm:"type:varchar(32);not null;default:'text';index"`
	Content     string    `json:"content"     gorm:"type:text"`
	ReceivedAt  time.Time `json:"receivedAt"  gorm:"not null;index"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// UserInfo is the personal profile registered for a chat identity.
// JSON names follow the bot's wire contract (Portuguese field names).
type UserInfo struct {
	ID             uint      `json:"id"             gorm:"primaryKey"`
	ChatID         string    `json:"chatId"         gorm:"type:varchar(64);not null;uniqueIndex:ux_user_info_chat"`
	Nome           string    `json:"nome"           gorm:"type:varchar(255);not null"`
	CPF            string    `json:"cpf"            gorm:"column:cpf;type:varchar(14);not null"`
	DataNascimento string    `json:"dataNascimento" gorm:"type:varchar(32);not null"`
	Email          string    `json:"email"          gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName returns the database table name for UserInfo.
func (UserInfo) TableName() string { return "user_info" }

// Company is a business registered by a chat identity. A chat identity may
// own several companies; CNPJ is the natural key.
type Company struct {
	ID           uint      `json:"id"           gorm:"primaryKey"`
	CNPJ         string    `json:"cnpj"         gorm:"column:cnpj;type:varchar(18);not null;uniqueIndex:ux_companies_cnpj"`
	ChatID       string    `json:"chatId"       gorm:"type:varchar(64);not null;index"`
	NomeFantasia string    `json:"nomeFantasia" gorm:"type:varchar(255)"`
	RazaoSocial  string    `json:"razaoSocial"  gorm:"type:varchar(255)"`
	Telefone     string    `json:"telefone"     gorm:"type:varchar(32)"`
	Email        string    `json:"email"        gorm:"type:varchar(255)"`
	Endereco     string    `json:"endereco"     gorm:"type:varchar(255)"`
	Cidade       string    `json:"cidade"       gorm:"type:varchar(128)"`
	Bairro       string    `json:"bairro"       gorm:"type:varchar(128)"`
	Estado       string    `json:"estado"       gorm:"type:varchar(2)"`
	CEP          string    `json:"cep"          gorm:"column:cep;type:varchar(9)"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Company.
func (Company) TableName() string { return "companies" }

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a single ledger entry. Entries stand alone; no balance is
// derived or enforced.
type Transaction struct {
	ID          string          `json:"id"          gorm:"type:char(36);primaryKey"`
	Amount      decimal.Decimal `json:"amount"      gorm:"type:decimal(14,2);not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Type        TransactionType `json:"type"        gorm:"type:varchar(16);not null;check:type IN ('income','expense')"`
	ChatID      string          `json:"chatId"      gorm:"type:varchar(64);not null;index:idx_transactions_chat"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TableName returns the database table name for Transaction.
func (Transaction) TableName() string { return "transactions" }

// Feedback is free-text feedback left through the bot. ChatID is optional
// because the web form posts anonymously.
type Feedback struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	ChatID    *string   `json:"chatId"    gorm:"type:varchar(64);index"`
	Content   string    `json:"content"   gorm:"type:text;not null"`
	WannaHelp bool      `json:"wannaHelp" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedback" }

// All lists every model for migrations.
func All() []any {
	return []any{
		&UserState{},
		&Message{},
		&UserInfo{},
		&Company{},
		&Transaction{},
		&Feedback{},
		&Idempotency{},
	}
}
