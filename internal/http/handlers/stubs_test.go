package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// ---- stubs; unset methods panic through the embedded nil interface ----

type stubUsers struct {
	UserInfoService
	get      func(ctx context.Context, chatID string) (*domain.UserInfo, error)
	register func(ctx context.Context, in services.UserInfoInput) (*domain.UserInfo, error)
}

func (s stubUsers) Get(ctx context.Context, chatID string) (*domain.UserInfo, error) {
	return s.get(ctx, chatID)
}

func (s stubUsers) Register(ctx context.Context, in services.UserInfoInput) (*domain.UserInfo, error) {
	return s.register(ctx, in)
}

type stubCompanies struct {
	CompanyService
	get  func(ctx context.Context, cnpj string) (*domain.Company, error)
	list func(ctx context.Context, chatID string) ([]domain.Company, error)
}

func (s stubCompanies) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Company, error) {
	return s.get(ctx, cnpj)
}

func (s stubCompanies) ListByChatID(ctx context.Context, chatID string) ([]domain.Company, error) {
	return s.list(ctx, chatID)
}

type stubTransactions struct {
	TransactionService
	register func(ctx context.Context, in services.TransactionInput, key string) (*domain.Transaction, bool, error)
}

func (s stubTransactions) Register(ctx context.Context, in services.TransactionInput, key string) (*domain.Transaction, bool, error) {
	return s.register(ctx, in, key)
}

type stubFeedback struct {
	FeedbackService
	create func(ctx context.Context, in services.FeedbackInput) (*services.ClassifiedFeedback, error)
	get    func(ctx context.Context, id string) (*services.ClassifiedFeedback, error)
	list   func(ctx context.Context, page, pageSize int) ([]services.ClassifiedFeedback, int64, error)
}

func (s stubFeedback) Create(ctx context.Context, in services.FeedbackInput) (*services.ClassifiedFeedback, error) {
	return s.create(ctx, in)
}

func (s stubFeedback) Get(ctx context.Context, id string) (*services.ClassifiedFeedback, error) {
	return s.get(ctx, id)
}

func (s stubFeedback) ListPage(ctx context.Context, page, pageSize int) ([]services.ClassifiedFeedback, int64, error) {
	return s.list(ctx, page, pageSize)
}

type stubMessages struct {
	MessageService
	record   func(ctx context.Context, in services.MessageInput) (*domain.Message, error)
	cooldown func(ctx context.Context, chatID string, on bool) (*domain.UserState, error)
	count    func(ctx context.Context) (int64, error)
}

func (s stubMessages) Record(ctx context.Context, in services.MessageInput) (*domain.Message, error) {
	return s.record(ctx, in)
}

func (s stubMessages) SetCooldown(ctx context.Context, chatID string, on bool) (*domain.UserState, error) {
	return s.cooldown(ctx, chatID, on)
}

func (s stubMessages) CountUsers(ctx context.Context) (int64, error) { return s.count(ctx) }

type stubMetrics struct {
	snapshot func(ctx context.Context) (*services.Snapshot, error)
	health   services.Health
}

func (s stubMetrics) Snapshot(ctx context.Context) (*services.Snapshot, error) { return s.snapshot(ctx) }
func (s stubMetrics) Health(context.Context) services.Health                  { return s.health }

type stubInvoices struct {
	InvoiceService
	getV1    func(ctx context.Context, companyID string) (*nfeio.Response, error)
	deleteV2 func(ctx context.Context, companyID string) error
	legacy   func(ctx context.Context, raw []byte) (*nfeio.Response, error)
	issueV1  func(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error)
	pdf      func(ctx context.Context, companyID, invoiceID string) (*services.Rendition, error)
	list     func(ctx context.Context, rawQuery string) (*nfeio.Response, error)
}

func (s stubInvoices) GetCompanyV1(ctx context.Context, companyID string) (*nfeio.Response, error) {
	return s.getV1(ctx, companyID)
}

func (s stubInvoices) DeleteCompanyV2(ctx context.Context, companyID string) error {
	return s.deleteV2(ctx, companyID)
}

func (s stubInvoices) IssueLegacy(ctx context.Context, raw []byte) (*nfeio.Response, error) {
	return s.legacy(ctx, raw)
}

func (s stubInvoices) IssueV1(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error) {
	return s.issueV1(ctx, companyID, raw)
}

func (s stubInvoices) PDF(ctx context.Context, companyID, invoiceID string) (*services.Rendition, error) {
	return s.pdf(ctx, companyID, invoiceID)
}

func (s stubInvoices) ListCompaniesV2(ctx context.Context, rawQuery string) (*nfeio.Response, error) {
	return s.list(ctx, rawQuery)
}

// ---- helpers ----

func newRouter(s Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-test")
		c.Next()
	})
	New(s).Register(r.Group("/api"))
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	if er.RequestID != "rid-test" {
		t.Fatalf("request_id not propagated: %+v", er)
	}
	return er
}
