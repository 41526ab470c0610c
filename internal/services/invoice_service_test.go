package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/CathalystLTDA/zapcont-api/internal/archive"
	"github.com/CathalystLTDA/zapcont-api/internal/config"
	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/schema"
)

type upstreamLog struct {
	mu    sync.Mutex
	calls []string
	body  string
}

func (u *upstreamLog) count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

func newInvoiceService(t *testing.T, status int, reply string) (*InvoiceService, *upstreamLog) {
	t.Helper()
	log := &upstreamLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		log.mu.Lock()
		log.calls = append(log.calls, r.Method+" "+r.URL.Path)
		log.body = string(b)
		log.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)

	api := nfeio.New(nfeio.WithHTTPClient(srv.Client()), nfeio.WithSettings(func() config.NFEIOConfig {
		return config.NFEIOConfig{APIURL: srv.URL + "/base", V1APIURL: srv.URL + "/v1", V2APIURL: srv.URL + "/v2", APIKey: "k"}
	}))
	return &InvoiceService{API: api}, log
}

const companyV2Body = `{"company":{"name":"Acme","tradeName":"Acme","federalTaxNumber":11222333000181,
 "address":{"state":"SP","city":{"code":"3550308","name":"São Paulo"},"district":"Centro",
 "street":"Rua A","number":"1","postalCode":"01000-000","country":"BRA"}}}`

func TestInvoiceService_ValidationBlocksUpstream(t *testing.T) {
	s, log := newInvoiceService(t, 200, `{}`)
	ctx := context.Background()

	_, err := s.CreateCompanyV2(ctx, []byte(`{"company":{"name":1}}`))
	vs, ok := schema.AsViolations(err)
	if !ok || len(vs) == 0 {
		t.Fatalf("expected violations, got %v", err)
	}
	_, err = s.IssueProduct(ctx, "c1", []byte(`not json`))
	if _, ok := schema.AsViolations(err); !ok {
		t.Fatalf("expected violations for malformed JSON, got %v", err)
	}
	if log.count() != 0 {
		t.Fatalf("upstream contacted %d times", log.count())
	}
}

func TestInvoiceService_ForwardsNormalizedBody(t *testing.T) {
	s, log := newInvoiceService(t, 201, `{"id":"new"}`)

	raw := strings.Replace(companyV2Body, `"name":"Acme"`, `"name":"Acme","junk":true`, 1)
	res, err := s.CreateCompanyV2(context.Background(), []byte(raw))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Status != 201 || string(res.JSON()) != `{"id":"new"}` {
		t.Fatalf("response = %+v", res)
	}
	if log.calls[0] != "POST /v2/companies" || strings.Contains(log.body, "junk") {
		t.Fatalf("upstream saw %v body=%s", log.calls, log.body)
	}
}

func TestInvoiceService_IssueLegacyEnvelope(t *testing.T) {
	s, log := newInvoiceService(t, 202, `{"id":"inv"}`)
	ctx := context.Background()

	_, err := s.IssueLegacy(ctx, []byte(`{"body":{}}`))
	mustIs(t, err, ErrMissingEnvelope)
	_, err = s.IssueLegacy(ctx, []byte(`{"company_id":"c1","body":null}`))
	mustIs(t, err, ErrMissingEnvelope)

	_, err = s.IssueLegacy(ctx, []byte(`{"company_id":"c1","body":{"description":"x"}}`))
	vs, ok := schema.AsViolations(err)
	if !ok || !strings.HasPrefix(vs[0].Path, "body.") {
		t.Fatalf("violations should be prefixed with body, got %v", err)
	}

	body := `{"company_id":"c1","body":{"cityServiceCode":"2690","description":"Consultoria","servicesAmount":100,
	  "borrower":{"name":"Cliente","federalTaxNumber":12345678909}}}`
	res, err := s.IssueLegacy(ctx, []byte(body))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if res.Status != 202 || log.calls[0] != "POST /base/companies/c1/serviceinvoices" {
		t.Fatalf("res=%+v calls=%v", res, log.calls)
	}
}

func TestInvoiceService_UpstreamErrorsPassThrough(t *testing.T) {
	s, _ := newInvoiceService(t, 401, `{"message":"bad key"}`)
	_, err := s.GetCompanyV2(context.Background(), "c1")
	ue, ok := nfeio.AsUpstream(err)
	if !ok || ue.Status != 401 || ue.Message != "Unauthorized" {
		t.Fatalf("got %v", err)
	}

	err = s.DeleteCompanyV1(context.Background(), " ")
	mustIs(t, err, ErrMissingID)
}

type fakeArchive struct {
	mu    sync.Mutex
	keys  []string
	fail  bool
	calls int
}

func (f *fakeArchive) Store(_ context.Context, companyID, invoiceID, ext string, data []byte) (archive.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return archive.Object{}, errors.New("s3 down")
	}
	key := companyID + "/" + invoiceID + "." + ext
	f.keys = append(f.keys, key)
	return archive.Object{Key: key, Size: len(data)}, nil
}

func TestInvoiceService_RenditionsAndArchive(t *testing.T) {
	s, log := newInvoiceService(t, 200, "%PDF-1.4 bytes")
	fa := &fakeArchive{}
	s.Archive = fa

	r, err := s.PDF(context.Background(), "c1", "i9")
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	s.Wait()
	if string(r.Body) != "%PDF-1.4 bytes" || r.ContentType != "application/pdf" || r.Filename != "nfe-i9.pdf" {
		t.Fatalf("rendition = %+v", r)
	}
	if log.calls[0] != "GET /v1/companies/c1/serviceinvoices/i9/pdf" {
		t.Fatalf("calls = %v", log.calls)
	}
	if len(fa.keys) != 1 || fa.keys[0] != "c1/i9.pdf" {
		t.Fatalf("archived = %v", fa.keys)
	}

	fa.fail = true
	x, err := s.XML(context.Background(), "c1", "i9")
	s.Wait()
	if err != nil || x.Filename != "nfe-i9.xml" || x.ContentType != "application/xml" {
		t.Fatalf("archive failure must not fail the download: %+v, %v", x, err)
	}
	if fa.calls != 2 {
		t.Fatalf("archive calls = %d", fa.calls)
	}
}

func TestValidateDocument(t *testing.T) {
	out, err := ValidateDocument("company", "2", []byte(companyV2Body))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil || m["company"] == nil {
		t.Fatalf("normalized = %s", out)
	}
	_, err = ValidateDocument("boleto", "v1", []byte(`{}`))
	mustIs(t, err, ErrInvalidInput)
}
