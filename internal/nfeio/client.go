// Package nfeio is a thin HTTP client for the NFE.io invoicing API.
//
// Each method maps to exactly one upstream call. Request bodies are passed
// through untouched; validation happens before the client is reached.
package nfeio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/CathalystLTDA/zapcont-api/internal/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// maxBody caps how much of an upstream response is read into memory.
const maxBody = 32 << 20

// API selects which configured base URL a call goes to.
type API int

const (
	APIBase API = iota // NFEIO_API_URL
	APIV1              // NFEIO_V1_API_URL
	APIV2              // NFEIO_V2_API_URL
)

func (a API) String() string {
	switch a {
	case APIV1:
		return "v1"
	case APIV2:
		return "v2"
	default:
		return "base"
	}
}

// Response is a successful upstream reply.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// JSON returns the body as a raw JSON value. Empty bodies become null.
func (r *Response) JSON() json.RawMessage {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(r.Body)
}

// Client calls NFE.io. Settings are resolved on every call.
type Client struct {
	http     *http.Client
	settings func() config.NFEIOConfig
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithSettings replaces the environment lookup.
func WithSettings(fn func() config.NFEIOConfig) Option {
	return func(c *Client) { c.settings = fn }
}

// New returns a Client whose outbound requests are traced.
func New(opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		settings: config.LoadNFEIO,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do performs a single call against the chosen API. body may be nil.
// accept defaults to application/json.
func (c *Client) Do(ctx context.Context, api API, method, path string, body []byte, accept string) (*Response, error) {
	tr := otel.Tracer("nfeio/Client")
	ctx, span := tr.Start(ctx, "Do", trace.WithAttributes(
		attribute.String("nfeio.api", api.String()),
		attribute.String("http.method", method),
		attribute.String("nfeio.path", path),
	))
	defer span.End()

	res, err := c.do(ctx, api, method, path, body, accept)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream call failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.status_code", res.Status))
	return res, nil
}

func (c *Client) do(ctx context.Context, api API, method, path string, body []byte, accept string) (*Response, error) {
	cfg := c.settings()
	base := baseFor(cfg, api)
	if base == "" {
		return nil, internal(fmt.Errorf("%w: %s", ErrNotConfigured, api))
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, base+path, rd)
	if err != nil {
		return nil, internal(err)
	}
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, internal(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, internal(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ue := classify(resp.StatusCode, data)
		ue.Err = fmt.Errorf("%s %s", method, path)
		return nil, ue
	}
	return &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

func baseFor(cfg config.NFEIOConfig, api API) string {
	switch api {
	case APIV1:
		return strings.TrimRight(cfg.V1APIURL, "/")
	case APIV2:
		return strings.TrimRight(cfg.V2APIURL, "/")
	default:
		return strings.TrimRight(cfg.APIURL, "/")
	}
}

func seg(s string) string { return url.PathEscape(s) }

// ---- companies (v1) ----

func (c *Client) GetCompanyV1(ctx context.Context, companyID string) (*Response, error) {
	return c.Do(ctx, APIBase, http.MethodGet, "/companies/"+seg(companyID), nil, "")
}

func (c *Client) CreateCompanyV1(ctx context.Context, body []byte) (*Response, error) {
	return c.Do(ctx, APIBase, http.MethodPost, "/companies", body, "")
}

func (c *Client) UpdateCompanyV1(ctx context.Context, companyID string, body []byte) (*Response, error) {
	return c.Do(ctx, APIBase, http.MethodPut, "/companies/"+seg(companyID), body, "")
}

func (c *Client) DeleteCompanyV1(ctx context.Context, companyID string) (*Response, error) {
	return c.Do(ctx, APIBase, http.MethodDelete, "/companies/"+seg(companyID), nil, "")
}

// ---- companies (v2) ----

// ListCompaniesV2 forwards the raw query string (pagination etc.) as is.
func (c *Client) ListCompaniesV2(ctx context.Context, rawQuery string) (*Response, error) {
	path := "/companies"
	if rawQuery != "" {
		path += "?" + rawQuery
	}
	return c.Do(ctx, APIV2, http.MethodGet, path, nil, "")
}

func (c *Client) GetCompanyV2(ctx context.Context, companyID string) (*Response, error) {
	return c.Do(ctx, APIV2, http.MethodGet, "/companies/"+seg(companyID), nil, "")
}

func (c *Client) CreateCompanyV2(ctx context.Context, body []byte) (*Response, error) {
	return c.Do(ctx, APIV2, http.MethodPost, "/companies", body, "")
}

func (c *Client) UpdateCompanyV2(ctx context.Context, companyID string, body []byte) (*Response, error) {
	return c.Do(ctx, APIV2, http.MethodPut, "/companies/"+seg(companyID), body, "")
}

func (c *Client) DeleteCompanyV2(ctx context.Context, companyID string) (*Response, error) {
	return c.Do(ctx, APIV2, http.MethodDelete, "/companies/"+seg(companyID), nil, "")
}

// ---- service invoices ----

func invoicesPath(companyID string) string {
	return "/companies/" + seg(companyID) + "/serviceinvoices"
}

func invoicePath(companyID, invoiceID string) string {
	return invoicesPath(companyID) + "/" + seg(invoiceID)
}

// IssueServiceInvoice issues on NFEIO_API_URL. Both issuance routes post
// there; lookups and renditions go to NFEIO_V1_API_URL.
func (c *Client) IssueServiceInvoice(ctx context.Context, companyID string, body []byte) (*Response, error) {
	return c.Do(ctx, APIBase, http.MethodPost, invoicesPath(companyID), body, "")
}

func (c *Client) GetServiceInvoice(ctx context.Context, companyID, invoiceID string) (*Response, error) {
	return c.Do(ctx, APIV1, http.MethodGet, invoicePath(companyID, invoiceID), nil, "")
}

func (c *Client) SendInvoiceEmail(ctx context.Context, companyID, invoiceID string) (*Response, error) {
	return c.Do(ctx, APIV1, http.MethodPut, invoicePath(companyID, invoiceID)+"/sendemail", nil, "")
}

// InvoicePDF downloads the PDF rendition.
func (c *Client) InvoicePDF(ctx context.Context, companyID, invoiceID string) (*Response, error) {
	return c.Do(ctx, APIV1, http.MethodGet, invoicePath(companyID, invoiceID)+"/pdf", nil, "application/pdf")
}

// InvoiceXML downloads the XML rendition.
func (c *Client) InvoiceXML(ctx context.Context, companyID, invoiceID string) (*Response, error) {
	return c.Do(ctx, APIV1, http.MethodGet, invoicePath(companyID, invoiceID)+"/xml", nil, "application/xml")
}

// ---- product invoices ----

func (c *Client) IssueProductInvoice(ctx context.Context, companyID string, body []byte) (*Response, error) {
	return c.Do(ctx, APIV2, http.MethodPost, "/companies/"+seg(companyID)+"/productinvoices", body, "")
}
