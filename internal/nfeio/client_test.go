package nfeio

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/CathalystLTDA/zapcont-api/internal/config"
)

type seen struct {
	method, path, auth, accept, ctype, body string
}

func newUpstream(t *testing.T, status int, ctype, reply string, got *seen) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if got != nil {
			*got = seen{
				method: r.Method,
				path:   r.URL.RequestURI(),
				auth:   r.Header.Get("Authorization"),
				accept: r.Header.Get("Accept"),
				ctype:  r.Header.Get("Content-Type"),
				body:   string(b),
			}
		}
		if ctype != "" {
			w.Header().Set("Content-Type", ctype)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fixed(base string) func() config.NFEIOConfig {
	return func() config.NFEIOConfig {
		return config.NFEIOConfig{APIURL: base + "/base", V1APIURL: base + "/v1", V2APIURL: base + "/v2", APIKey: "secret"}
	}
}

func TestClient_RoutesAndHeaders(t *testing.T) {
	var got seen
	srv := newUpstream(t, 200, "application/json", `{"id":"c1"}`, &got)
	c := New(WithHTTPClient(srv.Client()), WithSettings(fixed(srv.URL)))
	ctx := context.Background()

	cases := []struct {
		name   string
		call   func() (*Response, error)
		method string
		path   string
	}{
		{"v1 get company", func() (*Response, error) { return c.GetCompanyV1(ctx, "c1") }, "GET", "/base/companies/c1"},
		{"v1 delete company", func() (*Response, error) { return c.DeleteCompanyV1(ctx, "c1") }, "DELETE", "/base/companies/c1"},
		{"v1 create company", func() (*Response, error) { return c.CreateCompanyV1(ctx, []byte(`{}`)) }, "POST", "/base/companies"},
		{"v2 list", func() (*Response, error) { return c.ListCompaniesV2(ctx, "pageCount=5") }, "GET", "/v2/companies?pageCount=5"},
		{"v2 update", func() (*Response, error) { return c.UpdateCompanyV2(ctx, "c1", []byte(`{}`)) }, "PUT", "/v2/companies/c1"},
		{"issue", func() (*Response, error) { return c.IssueServiceInvoice(ctx, "c1", []byte(`{}`)) }, "POST", "/base/companies/c1/serviceinvoices"},
		{"invoice get", func() (*Response, error) { return c.GetServiceInvoice(ctx, "c1", "i9") }, "GET", "/v1/companies/c1/serviceinvoices/i9"},
		{"send email", func() (*Response, error) { return c.SendInvoiceEmail(ctx, "c1", "i9") }, "PUT", "/v1/companies/c1/serviceinvoices/i9/sendemail"},
		{"product issue", func() (*Response, error) { return c.IssueProductInvoice(ctx, "c1", []byte(`{}`)) }, "POST", "/v2/companies/c1/productinvoices"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.call()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.method != tc.method || got.path != tc.path {
				t.Fatalf("upstream saw %s %s, want %s %s", got.method, got.path, tc.method, tc.path)
			}
			if got.auth != "Bearer secret" {
				t.Fatalf("Authorization = %q", got.auth)
			}
			if string(res.JSON()) != `{"id":"c1"}` {
				t.Fatalf("body = %s", res.Body)
			}
		})
	}
}

func TestClient_PassesBodyUntouched(t *testing.T) {
	var got seen
	srv := newUpstream(t, 201, "application/json", `{}`, &got)
	c := New(WithHTTPClient(srv.Client()), WithSettings(fixed(srv.URL)))

	body := `{"name":"Acme",  "extra":[1,2]}`
	if _, err := c.CreateCompanyV2(context.Background(), []byte(body)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.body != body || got.ctype != "application/json" {
		t.Fatalf("upstream body=%q ctype=%q", got.body, got.ctype)
	}
}

func TestClient_EscapesIdentifiers(t *testing.T) {
	var got seen
	srv := newUpstream(t, 200, "application/json", `{}`, &got)
	c := New(WithHTTPClient(srv.Client()), WithSettings(fixed(srv.URL)))

	if _, err := c.GetCompanyV2(context.Background(), "a/b"); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.path != "/v2/companies/a%2Fb" {
		t.Fatalf("path = %q", got.path)
	}
}

func TestClient_Renditions(t *testing.T) {
	var got seen
	pdf := "%PDF-1.4 fake"
	srv := newUpstream(t, 200, "application/pdf", pdf, &got)
	c := New(WithHTTPClient(srv.Client()), WithSettings(fixed(srv.URL)))

	res, err := c.InvoicePDF(context.Background(), "c1", "i9")
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if got.accept != "application/pdf" || got.path != "/v1/companies/c1/serviceinvoices/i9/pdf" {
		t.Fatalf("upstream saw accept=%q path=%q", got.accept, got.path)
	}
	if string(res.Body) != pdf || res.ContentType != "application/pdf" {
		t.Fatalf("rendition = %q (%s)", res.Body, res.ContentType)
	}

	if _, err := c.InvoiceXML(context.Background(), "c1", "i9"); err != nil {
		t.Fatalf("xml: %v", err)
	}
	if got.accept != "application/xml" || !strings.HasSuffix(got.path, "/xml") {
		t.Fatalf("xml upstream saw accept=%q path=%q", got.accept, got.path)
	}
}

func TestClient_ClassifiesFailures(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		reply    string
		wantKind Kind
		wantMsg  string
		wantBody string
	}{
		{"bad request", 400, `{"errors":["x"]}`, KindClientError, "Bad Request", ""},
		{"unauthorized", 401, `nope`, KindClientError, "Unauthorized", ""},
		{"timeout", 408, ``, KindTimeout, "Time limit exceeded", ""},
		{"not found relayed", 404, `{"message":"company not found"}`, KindUnavailable, "", `{"message":"company not found"}`},
		{"unavailable relayed", 503, `{"error":"maintenance"}`, KindUnavailable, "", `{"error":"maintenance"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newUpstream(t, tc.status, "application/json", tc.reply, nil)
			c := New(WithHTTPClient(srv.Client()), WithSettings(fixed(srv.URL)))

			_, err := c.GetCompanyV2(context.Background(), "c1")
			ue, ok := AsUpstream(err)
			if !ok {
				t.Fatalf("expected *UpstreamError, got %v", err)
			}
			if ue.Status != tc.status || ue.Kind != tc.wantKind || ue.Message != tc.wantMsg {
				t.Fatalf("got %+v", ue)
			}
			if string(ue.Body) != tc.wantBody {
				t.Fatalf("body = %s, want %s", ue.Body, tc.wantBody)
			}
		})
	}
}

func TestClient_NonJSONErrorBodyIsReplaced(t *testing.T) {
	srv := newUpstream(t, 502, "text/html", "<html>bad gateway</html>", nil)
	c := New(WithHTTPClient(srv.Client()), WithSettings(fixed(srv.URL)))

	_, err := c.InvoicePDF(context.Background(), "c1", "i9")
	ue, ok := AsUpstream(err)
	if !ok || ue.Status != 502 {
		t.Fatalf("expected relayed 502, got %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(ue.Body, &m); err != nil || !strings.Contains(m["message"], "502") {
		t.Fatalf("diagnostic body = %s (%v)", ue.Body, err)
	}
}

func TestClient_NetworkFailureIsInternal(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(WithSettings(fixed(url)))
	_, err := c.GetCompanyV1(context.Background(), "c1")
	ue, ok := AsUpstream(err)
	if !ok || ue.Status != 500 || ue.Kind != KindInternal || ue.Message != "internal error" {
		t.Fatalf("got %v", err)
	}
	if ue.Unwrap() == nil {
		t.Fatalf("cause should be kept for logs")
	}
}

func TestClient_MissingBaseURL(t *testing.T) {
	c := New(WithSettings(func() config.NFEIOConfig { return config.NFEIOConfig{APIKey: "k"} }))
	_, err := c.GetCompanyV2(context.Background(), "c1")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestClient_TimeoutFromSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := New(WithHTTPClient(srv.Client()), WithSettings(func() config.NFEIOConfig {
		return config.NFEIOConfig{V2APIURL: srv.URL, Timeout: 50 * time.Millisecond}
	}))
	_, err := c.GetCompanyV2(context.Background(), "c1")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestClient_ReadsEnvironmentPerCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer rotated" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("NFEIO_V2_API_URL", srv.URL)
	t.Setenv("NFEIO_API_KEY", "old")
	c := New(WithHTTPClient(srv.Client()))

	if _, err := c.GetCompanyV2(context.Background(), "c1"); err == nil {
		t.Fatalf("old key should be rejected")
	}
	t.Setenv("NFEIO_API_KEY", "rotated")
	if _, err := c.GetCompanyV2(context.Background(), "c1"); err != nil {
		t.Fatalf("rotated key should pass: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("hits = %d", hits.Load())
	}
}

func TestResponse_JSONEmptyBody(t *testing.T) {
	r := &Response{Body: []byte("  ")}
	if string(r.JSON()) != "null" {
		t.Fatalf("JSON() = %s", r.JSON())
	}
}
