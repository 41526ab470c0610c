// Package archive keeps a copy of downloaded invoice renditions in S3.
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/CathalystLTDA/zapcont-api/internal/config"
)

// PutObjectAPI is the subset of the S3 client used here.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Object describes what was stored.
type Object struct {
	Key         string
	ContentType string
	Size        int
	Pages       int // 0 when not a PDF or unreadable
}

var ErrEmpty = errors.New("archive: empty rendition")

type Archiver struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// New builds an Archiver around an existing client.
func New(client PutObjectAPI, bucket, prefix string) *Archiver {
	return &Archiver{client: client, bucket: bucket, prefix: prefix}
}

// FromConfig loads AWS credentials from the default chain. It returns nil,
// nil when archiving is disabled.
func FromConfig(ctx context.Context, cfg config.ArchiveConfig) (*Archiver, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("archive: load aws config: %w", err)
	}
	return New(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Prefix), nil
}

// Key returns the object key for a rendition, e.g.
// "renditions/<company>/<invoice>.pdf".
func (a *Archiver) Key(companyID, invoiceID, ext string) string {
	return a.prefix + path.Join(safe(companyID), safe(invoiceID)+"."+strings.TrimPrefix(ext, "."))
}

// Store uploads a rendition. The content type is sniffed from the bytes;
// PDFs get their page count recorded as object metadata.
func (a *Archiver) Store(ctx context.Context, companyID, invoiceID, ext string, data []byte) (Object, error) {
	tr := otel.Tracer("archive/Archiver")
	ctx, span := tr.Start(ctx, "Store", trace.WithAttributes(
		attribute.String("archive.company_id", companyID),
		attribute.String("archive.invoice_id", invoiceID),
	))
	defer span.End()

	if len(data) == 0 {
		return Object{}, ErrEmpty
	}

	mt := mimetype.Detect(data)
	obj := Object{
		Key:         a.Key(companyID, invoiceID, ext),
		ContentType: mt.String(),
		Size:        len(data),
	}
	meta := map[string]string{
		"company-id": companyID,
		"invoice-id": invoiceID,
	}
	if mt.Is("application/pdf") {
		if n, err := PageCount(data); err == nil {
			obj.Pages = n
			meta["page-count"] = strconv.Itoa(n)
		}
	}
	span.SetAttributes(attribute.String("archive.content_type", obj.ContentType))

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(obj.Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(obj.ContentType),
		Metadata:    meta,
	})
	if err != nil {
		span.RecordError(err)
		return Object{}, fmt.Errorf("archive: put %s: %w", obj.Key, err)
	}
	return obj, nil
}

// PageCount reads a PDF in relaxed validation mode and returns its pages.
func PageCount(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.PageCount(bytes.NewReader(data), conf)
}

func safe(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "/", "_")
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}
