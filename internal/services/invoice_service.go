// Package services – InvoiceService
//
// This file implements the NFE.io proxy use-cases. Bodies are validated
// against the schema registry before any upstream call; a rejected body
// never leaves the process. Accepted bodies are forwarded in normalized
// form (unknown keys stripped). Each operation makes exactly one upstream
// call and never retries.
//
// Downloaded renditions may be copied to an archive in the background;
// archive failures are logged and never affect the response.
package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/CathalystLTDA/zapcont-api/internal/archive"
	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/schema"
)

const archiveTimeout = 30 * time.Second

// ErrMissingEnvelope is returned when the legacy issuance envelope lacks
// company_id or body.
var ErrMissingEnvelope = classed(ErrInvalidInput, "Missing company_id or body")

// ErrMissingID is returned when a required path identifier is blank.
var ErrMissingID = classed(ErrInvalidInput, "ID é obrigatório")

// Archiver stores rendition copies.
type Archiver interface {
	Store(ctx context.Context, companyID, invoiceID, ext string, data []byte) (archive.Object, error)
}

// Rendition is a downloaded invoice document.
type Rendition struct {
	Body        []byte
	ContentType string
	Filename    string
}

// InvoiceService proxies company and invoice operations to NFE.io.
type InvoiceService struct {
	API     *nfeio.Client
	Archive Archiver // nil disables archiving

	wg sync.WaitGroup
}

// LegacyEnvelope is the body of POST /api/nfe/ServiceInvoices.
type LegacyEnvelope struct {
	CompanyID string          `json:"company_id"`
	Body      json.RawMessage `json:"body"`
}

func validateAs(kind, version string, raw []byte) ([]byte, error) {
	return schema.MustLookup(kind, version).Validate(raw)
}

func requireID(ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return ErrMissingID
		}
	}
	return nil
}

func (s *InvoiceService) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/InvoiceService").Start(ctx, name, trace.WithAttributes(attrs...))
}

// ---- companies v1 ----

func (s *InvoiceService) GetCompanyV1(ctx context.Context, companyID string) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "GetCompanyV1", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return nil, err
	}
	return s.API.GetCompanyV1(ctx, companyID)
}

func (s *InvoiceService) DeleteCompanyV1(ctx context.Context, companyID string) error {
	ctx, span := s.span(ctx, "DeleteCompanyV1", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return err
	}
	_, err := s.API.DeleteCompanyV1(ctx, companyID)
	return err
}

func (s *InvoiceService) CreateCompanyV1(ctx context.Context, raw []byte) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "CreateCompanyV1")
	defer span.End()
	body, err := validateAs(schema.KindCompany, "v1", raw)
	if err != nil {
		return nil, err
	}
	return s.API.CreateCompanyV1(ctx, body)
}

func (s *InvoiceService) UpdateCompanyV1(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "UpdateCompanyV1", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return nil, err
	}
	body, err := validateAs(schema.KindCompany, "v1", raw)
	if err != nil {
		return nil, err
	}
	return s.API.UpdateCompanyV1(ctx, companyID, body)
}

// ---- companies v2 ----

func (s *InvoiceService) ListCompaniesV2(ctx context.Context, rawQuery string) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "ListCompaniesV2")
	defer span.End()
	return s.API.ListCompaniesV2(ctx, rawQuery)
}

func (s *InvoiceService) GetCompanyV2(ctx context.Context, companyID string) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "GetCompanyV2", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return nil, err
	}
	return s.API.GetCompanyV2(ctx, companyID)
}

func (s *InvoiceService) CreateCompanyV2(ctx context.Context, raw []byte) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "CreateCompanyV2")
	defer span.End()
	body, err := validateAs(schema.KindCompany, "v2", raw)
	if err != nil {
		return nil, err
	}
	return s.API.CreateCompanyV2(ctx, body)
}

func (s *InvoiceService) UpdateCompanyV2(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "UpdateCompanyV2", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return nil, err
	}
	body, err := validateAs(schema.KindCompany, "v2", raw)
	if err != nil {
		return nil, err
	}
	return s.API.UpdateCompanyV2(ctx, companyID, body)
}

func (s *InvoiceService) DeleteCompanyV2(ctx context.Context, companyID string) error {
	ctx, span := s.span(ctx, "DeleteCompanyV2", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return err
	}
	_, err := s.API.DeleteCompanyV2(ctx, companyID)
	return err
}

// ---- service invoices ----

// IssueLegacy issues through the envelope route. The inner body follows
// the relaxed v2 issuance contract.
func (s *InvoiceService) IssueLegacy(ctx context.Context, raw []byte) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "IssueLegacy")
	defer span.End()

	var env LegacyEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, schema.Violations{{Path: "", Message: "Invalid JSON: " + err.Error()}}
	}
	if strings.TrimSpace(env.CompanyID) == "" || len(env.Body) == 0 || string(env.Body) == "null" {
		return nil, ErrMissingEnvelope
	}
	span.SetAttributes(attribute.String("company.id", env.CompanyID))

	body, err := validateAs(schema.KindServiceInvoice, "v2", env.Body)
	if err != nil {
		if vs, ok := schema.AsViolations(err); ok {
			return nil, prefixViolations(vs, "body")
		}
		return nil, err
	}
	return s.API.IssueServiceInvoice(ctx, env.CompanyID, body)
}

// IssueV1 issues a full v1 service invoice document.
func (s *InvoiceService) IssueV1(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "IssueV1", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return nil, err
	}
	body, err := validateAs(schema.KindServiceInvoice, "v1", raw)
	if err != nil {
		return nil, err
	}
	return s.API.IssueServiceInvoice(ctx, companyID, body)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, companyID, invoiceID string) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "GetInvoice", attribute.String("company.id", companyID), attribute.String("invoice.id", invoiceID))
	defer span.End()
	if err := requireID(companyID, invoiceID); err != nil {
		return nil, err
	}
	return s.API.GetServiceInvoice(ctx, companyID, invoiceID)
}

func (s *InvoiceService) SendEmail(ctx context.Context, companyID, invoiceID string) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "SendEmail", attribute.String("company.id", companyID), attribute.String("invoice.id", invoiceID))
	defer span.End()
	if err := requireID(companyID, invoiceID); err != nil {
		return nil, err
	}
	return s.API.SendInvoiceEmail(ctx, companyID, invoiceID)
}

// PDF downloads the PDF rendition.
func (s *InvoiceService) PDF(ctx context.Context, companyID, invoiceID string) (*Rendition, error) {
	return s.rendition(ctx, companyID, invoiceID, "pdf", "application/pdf", s.API.InvoicePDF)
}

// XML downloads the XML rendition.
func (s *InvoiceService) XML(ctx context.Context, companyID, invoiceID string) (*Rendition, error) {
	return s.rendition(ctx, companyID, invoiceID, "xml", "application/xml", s.API.InvoiceXML)
}

func (s *InvoiceService) rendition(ctx context.Context, companyID, invoiceID, ext, ctype string,
	fetch func(context.Context, string, string) (*nfeio.Response, error)) (*Rendition, error) {
	ctx, span := s.span(ctx, "Rendition",
		attribute.String("company.id", companyID),
		attribute.String("invoice.id", invoiceID),
		attribute.String("rendition.format", ext),
	)
	defer span.End()

	if err := requireID(companyID, invoiceID); err != nil {
		return nil, err
	}
	res, err := fetch(ctx, companyID, invoiceID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rendition.bytes", len(res.Body)))

	if s.Archive != nil && len(res.Body) > 0 {
		s.archiveAsync(ctx, companyID, invoiceID, ext, res.Body)
	}
	return &Rendition{
		Body:        res.Body,
		ContentType: ctype,
		Filename:    "nfe-" + invoiceID + "." + ext,
	}, nil
}

func (s *InvoiceService) archiveAsync(ctx context.Context, companyID, invoiceID, ext string, data []byte) {
	logger := zerolog.Ctx(ctx).With().
		Str("company_id", companyID).
		Str("invoice_id", invoiceID).
		Str("format", ext).
		Logger()
	bg := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		actx, cancel := context.WithTimeout(bg, archiveTimeout)
		defer cancel()

		obj, err := s.Archive.Store(actx, companyID, invoiceID, ext, data)
		if err != nil {
			logger.Warn().Err(err).Msg("rendition archive failed")
			return
		}
		logger.Debug().Str("key", obj.Key).Int("pages", obj.Pages).Msg("rendition archived")
	}()
}

// Wait blocks until background archive uploads finish.
func (s *InvoiceService) Wait() { s.wg.Wait() }

// ---- product invoices ----

func (s *InvoiceService) IssueProduct(ctx context.Context, companyID string, raw []byte) (*nfeio.Response, error) {
	ctx, span := s.span(ctx, "IssueProduct", attribute.String("company.id", companyID))
	defer span.End()
	if err := requireID(companyID); err != nil {
		return nil, err
	}
	body, err := validateAs(schema.KindProductInvoice, "v2", raw)
	if err != nil {
		return nil, err
	}
	return s.API.IssueProductInvoice(ctx, companyID, body)
}

// ValidateDocument checks raw against any registered contract without
// contacting the upstream.
func ValidateDocument(kind, version string, raw []byte) ([]byte, error) {
	c, ok := schema.Lookup(kind, version)
	if !ok {
		return nil, classed(ErrInvalidInput, "unknown contract "+kind+"/"+version)
	}
	return c.Validate(raw)
}

func prefixViolations(vs schema.Violations, prefix string) schema.Violations {
	out := make(schema.Violations, len(vs))
	for i, v := range vs {
		p := prefix
		if v.Path != "" {
			p += "." + v.Path
		}
		out[i] = schema.Violation{Path: p, Message: v.Message}
	}
	return out
}
