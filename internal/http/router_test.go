package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CathalystLTDA/zapcont-api/internal/config"
	"github.com/CathalystLTDA/zapcont-api/internal/domain"
	"github.com/CathalystLTDA/zapcont-api/internal/http/handlers"
	"github.com/CathalystLTDA/zapcont-api/internal/http/middleware"
	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(domain.All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// newInvoices points the proxy at a fake NFE.io that answers every call
// with a small PDF-looking body.
func newInvoices(t *testing.T) *services.InvoiceService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = io.WriteString(w, "%PDF-1.4 "+strings.Repeat("x", 2048))
	}))
	t.Cleanup(srv.Close)
	api := nfeio.New(nfeio.WithHTTPClient(srv.Client()), nfeio.WithSettings(func() config.NFEIOConfig {
		return config.NFEIOConfig{APIURL: srv.URL, V1APIURL: srv.URL, V2APIURL: srv.URL, APIKey: "k"}
	}))
	return &services.InvoiceService{API: api}
}

func testConfig() config.Config {
	return config.Config{
		APIBasePath:       "/api",
		GinMode:           gin.TestMode,
		MaxBodyBytes:      1 << 20,
		RateRPS:           100,
		RateBurst:         50,
		IdempotencyTTL:    time.Hour,
		MessagesByDayMode: "approximate",
		OTEL:              config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newEngine(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, newTestDB(t), newInvoices(t), cfg)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return body
}

func TestRegisterRoutes_HealthPrometheusAndFallbacks(t *testing.T) {
	r := newEngine(t, testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/health = %d", w.Code)
	}
	if body := decode(t, w); body["status"] != "ok" || body["dbConnection"] != true {
		t.Fatalf("health body = %v", body)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" || w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("request id or security headers missing: %v", w.Header())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, PrometheusPath, nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "zapcont_http_requests_total") {
		t.Fatalf("GET %s bad: code=%d", PrometheusPath, w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound || decode(t, w)["kind"] != handlers.KindNotFound {
		t.Fatalf("GET /nope = %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/health", nil))
	if w.Code != http.StatusMethodNotAllowed || decode(t, w)["kind"] != handlers.KindMethodNotAllowed {
		t.Fatalf("POST /api/health = %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("swagger must be off by default, got %d", w.Code)
	}
}

func TestRegisterRoutes_SwaggerAndRootBasePath(t *testing.T) {
	cfg := testConfig()
	cfg.SwaggerEnabled = true
	cfg.APIBasePath = "/"
	r := newEngine(t, cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "zapcont") {
		t.Fatalf("swagger doc = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health at root = %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	cfg := testConfig()
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://dashboard.example"}}
	r := newEngine(t, cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://dashboard.example")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://dashboard.example" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted origin must not be echoed, got %q", got)
	}
}

func TestRegisterRoutes_TransactionIdempotency(t *testing.T) {
	r := newEngine(t, testConfig())
	body := `{"amount":"12.50","description":"consulta","type":"income","chatId":"5511999990000"}`

	post := func(key string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if key != "" {
			req.Header.Set(middleware.HeaderIdempotencyKey, key)
		}
		r.ServeHTTP(w, req)
		return w
	}

	first := post("tx-1")
	if first.Code != http.StatusCreated {
		t.Fatalf("first POST = %d %s", first.Code, first.Body.String())
	}
	second := post("tx-1")
	if second.Code != http.StatusOK || second.Header().Get(handlers.HeaderIdempotentReplay) != "true" {
		t.Fatalf("replay = %d %v", second.Code, second.Header())
	}
	if decode(t, first)["id"] != decode(t, second)["id"] {
		t.Fatalf("replay must return the first entry")
	}
	if w := post("bad key!"); w.Code != http.StatusBadRequest || decode(t, w)["kind"] != handlers.KindValidation {
		t.Fatalf("invalid key = %d %s", w.Code, w.Body.String())
	}
	if w := post(""); w.Code != http.StatusCreated {
		t.Fatalf("keyless POST = %d", w.Code)
	}

	// Deleting the entry frees its key for a fresh insert.
	w := httptest.NewRecorder()
	id, _ := decode(t, first)["id"].(string)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/transactions/delete/"+id, nil))
	if w.Code != http.StatusOK && w.Code != http.StatusNoContent {
		t.Fatalf("delete = %d %s", w.Code, w.Body.String())
	}
	reused := post("tx-1")
	if reused.Code != http.StatusCreated || reused.Header().Get(handlers.HeaderIdempotentReplay) != "" {
		t.Fatalf("reused key = %d %s", reused.Code, reused.Body.String())
	}
	if decode(t, reused)["id"] == id {
		t.Fatalf("reused key must create a new entry")
	}
}

func TestRegisterRoutes_GzipSkipsRenditions(t *testing.T) {
	r := newEngine(t, testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nfe/v1/ServiceInvoices/c1/invoiceId/i1/pdf", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf = %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Content-Encoding") != "" {
		t.Fatalf("renditions must not be gzipped")
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), `filename="nfe-i1.pdf"`) {
		t.Fatalf("disposition = %q", w.Header().Get("Content-Disposition"))
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	r.ServeHTTP(w, req)
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("json responses should be gzipped, got %v", w.Header())
	}
}

func TestRegisterRoutes_RateLimitByChat(t *testing.T) {
	cfg := testConfig()
	cfg.RateRPS = 0.001
	cfg.RateBurst = 1
	r := newEngine(t, cfg)

	get := func(chat string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set(middleware.HeaderChatID, chat)
		r.ServeHTTP(w, req)
		return w.Code
	}
	if get("a") != http.StatusOK || get("a") != http.StatusTooManyRequests {
		t.Fatalf("second call from chat a should be limited")
	}
	if get("b") != http.StatusOK {
		t.Fatalf("chat b has its own bucket")
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}

	r2 := gin.New()
	r2.Use(limitBody(0))
	r2.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	})
	w = httptest.NewRecorder()
	r2.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")))
	if w.Code != http.StatusOK || w.Body.String() != "0123456789AB" {
		t.Fatalf("zero cap must disable limiting, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	groupWithPrefix(r, "/").GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	groupWithPrefix(r, "").GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })
	groupWithPrefix(r, "/api").GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}

func TestRegisterRoutes_DuplicateNaturalKeysAre400(t *testing.T) {
	r := newEngine(t, testConfig())
	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	company := `{"cnpj":"12.345.678/0001-90","chatId":"5511999999999@c.us","razaoSocial":"Pao Quente LTDA"}`
	if w := post("/api/companies", company); w.Code != http.StatusCreated {
		t.Fatalf("first company = %d %s", w.Code, w.Body.String())
	}
	for _, path := range []string{"/api/companies", "/api/company"} {
		w := post(path, company)
		body := decode(t, w)
		if w.Code != http.StatusBadRequest || body["kind"] != handlers.KindAlreadyExists || body["error"] != "Company already exists" {
			t.Fatalf("%s duplicate = %d %v", path, w.Code, body)
		}
	}

	user := `{"chatId":"5511999999999@c.us","nome":"Ana","cpf":"123.456.789-09","dataNascimento":"1990-05-01","email":"ana@example.com"}`
	if w := post("/api/userInfo", user); w.Code != http.StatusCreated {
		t.Fatalf("first user = %d %s", w.Code, w.Body.String())
	}
	w := post("/api/userInfo", user)
	body := decode(t, w)
	if w.Code != http.StatusBadRequest || body["kind"] != handlers.KindAlreadyExists || body["error"] != "User already exists" {
		t.Fatalf("user duplicate = %d %v", w.Code, body)
	}
}
