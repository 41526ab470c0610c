// Package handlers holds the Gin handlers for the chat-bot data store, the
// dashboard metrics, and the NFE.io proxy.
//
// Handlers are transport-thin: they bind input, call application services,
// and translate results into HTTP responses. Services are consumed through
// the narrow interfaces below so tests can substitute them.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

//
// Service contracts (context-aware)
//

// UserInfoService manages chat-bot user profiles.
type UserInfoService interface {
	Register(ctx context.Context, in services.UserInfoInput) (*domain.UserInfo, error)
	Get(ctx context.Context, chatID string) (*domain.UserInfo, error)
	Update(ctx context.Context, chatID string, p services.UserInfoPatch) (*domain.UserInfo, error)
	Delete(ctx context.Context, chatID string) error
}

// CompanyService manages companies registered through the bot.
type CompanyService interface {
	Create(ctx context.Context, in services.CompanyInput) (*domain.Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*domain.Company, error)
	ListByChatID(ctx context.Context, chatID string) ([]domain.Company, error)
	Update(ctx context.Context, cnpj string, p services.CompanyPatch) (*domain.Company, error)
	Delete(ctx context.Context, cnpj string) error
}

// TransactionService manages ledger entries.
type TransactionService interface {
	// Register creates an entry; a repeated Idempotency-Key returns the
	// original entry with replayed=true.
	Register(ctx context.Context, in services.TransactionInput, key string) (*domain.Transaction, bool, error)
	ListByChatID(ctx context.Context, chatID string) ([]domain.Transaction, error)
	Update(ctx context.Context, id string, p services.TransactionPatch) (*domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}

// FeedbackService stores and classifies free-text feedback.
type FeedbackService interface {
	Create(ctx context.Context, in services.FeedbackInput) (*services.ClassifiedFeedback, error)
	Get(ctx context.Context, id string) (*services.ClassifiedFeedback, error)
	ListPage(ctx context.Context, page, pageSize int) ([]services.ClassifiedFeedback, int64, error)
	Delete(ctx context.Context, id string) error
}

// MessageService ingests chat messages and maintains chat identities.
type MessageService interface {
	Record(ctx context.Context, in services.MessageInput) (*domain.Message, error)
	SetCooldown(ctx context.Context, chatID string, on bool) (*domain.UserState, error)
	CountUsers(ctx context.Context) (int64, error)
}

// MetricsService builds the dashboard snapshot and the health report.
type MetricsService interface {
	Snapshot(ctx context.Context) (*services.Snapshot, error)
	Health(ctx context.Context) services.Health
}

// InvoiceService proxies company and invoice calls to NFE.io.
type InvoiceService interface {
	GetCompanyV1(ctx context.Context, companyID string) (*nfeio.Response, error)
	CreateCompanyV1(ctx context.Context, raw []byte) (*nfeio.Response, error)
	UpdateCompanyV1(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error)
	DeleteCompanyV1(ctx context.Context, companyID string) error

	ListCompaniesV2(ctx context.Context, rawQuery string) (*nfeio.Response, error)
	GetCompanyV2(ctx context.Context, companyID string) (*nfeio.Response, error)
	CreateCompanyV2(ctx context.Context, raw []byte) (*nfeio.Response, error)
	UpdateCompanyV2(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error)
	DeleteCompanyV2(ctx context.Context, companyID string) error

	IssueLegacy(ctx context.Context, raw []byte) (*nfeio.Response, error)
	IssueV1(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error)
	GetInvoice(ctx context.Context, companyID, invoiceID string) (*nfeio.Response, error)
	SendEmail(ctx context.Context, companyID, invoiceID string) (*nfeio.Response, error)
	PDF(ctx context.Context, companyID, invoiceID string) (*services.Rendition, error)
	XML(ctx context.Context, companyID, invoiceID string) (*services.Rendition, error)

	IssueProduct(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error)
}

//
// Handler wiring
//

// Services bundles the dependencies of Handlers.
type Services struct {
	UserInfo     UserInfoService
	Companies    CompanyService
	Transactions TransactionService
	Feedback     FeedbackService
	Messages     MessageService
	Metrics      MetricsService
	Invoices     InvoiceService
}

// Handlers groups every HTTP endpoint of the API.
type Handlers struct {
	users    UserInfoService
	cos      CompanyService
	txs      TransactionService
	fbs      FeedbackService
	msgs     MessageService
	metrics  MetricsService
	invoices InvoiceService

	now func() time.Time
}

// New constructs a Handlers instance bound to the given services.
func New(s Services) *Handlers {
	return &Handlers{
		users:    s.UserInfo,
		cos:      s.Companies,
		txs:      s.Transactions,
		fbs:      s.Feedback,
		msgs:     s.Messages,
		metrics:  s.Metrics,
		invoices: s.Invoices,
		now:      time.Now,
	}
}

// timestamp renders the current time the way the dashboard expects.
func (h *Handlers) timestamp() string {
	return h.now().UTC().Format(services.ISOTime)
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
