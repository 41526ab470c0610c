package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/CathalystLTDA/zapcont-api/internal/config"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

// minimalPDF builds a well-formed PDF with n blank pages and a correct xref.
func minimalPDF(n int) []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	kids := ""
	for i := 0; i < n; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+i)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 595 842] /Resources << >> >>", kids, n))
	for i := 0; i < n; i++ {
		obj("<< /Type /Page /Parent 2 0 R >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func TestPageCount(t *testing.T) {
	n, err := PageCount(minimalPDF(3))
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 3 {
		t.Fatalf("pages = %d, want 3", n)
	}
	if _, err := PageCount([]byte("not a pdf")); err == nil {
		t.Fatalf("expected error for garbage input")
	}
}

func TestStore_PDF(t *testing.T) {
	fake := &fakeS3{}
	a := New(fake, "bucket", "renditions/")
	data := minimalPDF(2)

	obj, err := a.Store(context.Background(), "c1", "i9", "pdf", data)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if obj.Key != "renditions/c1/i9.pdf" || obj.ContentType != "application/pdf" || obj.Pages != 2 || obj.Size != len(data) {
		t.Fatalf("object = %+v", obj)
	}
	if aws.ToString(fake.in.Bucket) != "bucket" || aws.ToString(fake.in.Key) != obj.Key {
		t.Fatalf("put input = %+v", fake.in)
	}
	if fake.in.Metadata["page-count"] != "2" || fake.in.Metadata["invoice-id"] != "i9" {
		t.Fatalf("metadata = %v", fake.in.Metadata)
	}
	if !bytes.Equal(fake.body, data) {
		t.Fatalf("uploaded bytes differ")
	}
}

func TestStore_XMLHasNoPageCount(t *testing.T) {
	fake := &fakeS3{}
	a := New(fake, "bucket", "r/")
	xml := []byte(`<?xml version="1.0" encoding="UTF-8"?><nfeProc><NFe/></nfeProc>`)

	obj, err := a.Store(context.Background(), "c1", "i9", ".xml", xml)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if obj.Key != "r/c1/i9.xml" || obj.Pages != 0 {
		t.Fatalf("object = %+v", obj)
	}
	if _, ok := fake.in.Metadata["page-count"]; ok {
		t.Fatalf("xml should not carry a page count")
	}
	if obj.ContentType == "application/pdf" {
		t.Fatalf("xml detected as pdf")
	}
}

func TestStore_Errors(t *testing.T) {
	a := New(&fakeS3{}, "b", "")
	if _, err := a.Store(context.Background(), "c", "i", "pdf", nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}

	boom := errors.New("access denied")
	a = New(&fakeS3{err: boom}, "b", "")
	if _, err := a.Store(context.Background(), "c", "i", "pdf", []byte("%PDF-1.4 broken")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped put error, got %v", err)
	}
}

func TestKey_SanitizesSegments(t *testing.T) {
	a := New(nil, "b", "p/")
	if got := a.Key("../x", " a/b ", "pdf"); got != "p/.._x/a_b.pdf" {
		t.Fatalf("key = %q", got)
	}
	if got := a.Key("..", "", "xml"); got != "p/_/_.xml" {
		t.Fatalf("key = %q", got)
	}
}

func TestFromConfig_Disabled(t *testing.T) {
	a, err := FromConfig(context.Background(), config.ArchiveConfig{})
	if a != nil || err != nil {
		t.Fatalf("disabled archive should be nil, nil; got %v %v", a, err)
	}
}
