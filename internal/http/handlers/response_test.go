package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/CathalystLTDA/zapcont-api/internal/nfeio"
	"github.com/CathalystLTDA/zapcont-api/internal/schema"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

func Test_fail_500_LogsAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// capture logs from LoggerFrom(c)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-500")
		c.Set("logger", &logger)
		c.Next()
	})
	r.GET("/boom", func(c *gin.Context) {
		failErr(c, fmt.Errorf("db exploded: %w", errors.New("disk full")))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.RequestID != "rid-500" || resp.Kind != KindInternal || resp.Error != msgInternal {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if strings.Contains(w.Body.String(), "disk full") {
		t.Fatalf("cause leaked to client: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), "disk full") {
		t.Fatalf("expected error log with cause, got: %s", buf.String())
	}
}

func Test_failErr_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		status   int
		kind     string
		msg      string
		upstream string
		nViol    int
	}{
		{"violations", schema.Violations{{Path: "company.name", Message: "Required"}, {Path: "", Message: "x"}},
			400, KindValidation, msgValidation, "", 2},
		{"invalid input", services.ErrMissingFields, 400, KindValidation, "Missing required fields", "", 0},
		{"not found", services.ErrUserNotFound, 404, KindNotFound, "User not found", "", 0},
		{"already exists", services.ErrCompanyExists, 400, KindAlreadyExists, "Company already exists", "", 0},
		{"upstream 401", &nfeio.UpstreamError{Status: 401, Kind: nfeio.KindClientError, Message: "Unauthorized"},
			401, KindUpstreamClientError, "Unauthorized", "", 0},
		{"upstream 408", &nfeio.UpstreamError{Status: 408, Kind: nfeio.KindTimeout, Message: "Time limit exceeded"},
			408, KindUpstreamTimeout, "Time limit exceeded", "", 0},
		{"upstream relayed", &nfeio.UpstreamError{Status: 503, Kind: nfeio.KindUnavailable, Body: json.RawMessage(`{"message":"down"}`)},
			503, KindUpstreamUnavailable, "Service Unavailable", `{"message":"down"}`, 0},
		{"upstream internal", &nfeio.UpstreamError{Status: 500, Kind: nfeio.KindInternal, Message: "internal error", Err: errors.New("dial tcp")},
			500, KindInternal, "internal error", "", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { failErr(c, tc.err) })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

			if w.Code != tc.status {
				t.Fatalf("status=%d want %d", w.Code, tc.status)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("json: %v", err)
			}
			if resp.Kind != tc.kind || resp.Error != tc.msg || len(resp.Violations) != tc.nViol {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
			if string(resp.Upstream) != tc.upstream {
				t.Fatalf("upstream = %s, want %s", resp.Upstream, tc.upstream)
			}
			if strings.Contains(w.Body.String(), "dial tcp") {
				t.Fatalf("cause leaked: %s", w.Body.String())
			}
		})
	}
}

func Test_relay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/json", func(c *gin.Context) {
		relay(c, http.StatusCreated, &nfeio.Response{Status: 201, Body: []byte(`{"id":"1"}`)})
	})
	r.GET("/text", func(c *gin.Context) {
		relay(c, http.StatusOK, &nfeio.Response{Status: 200, Body: []byte(`plain`)})
	})
	r.GET("/empty", func(c *gin.Context) {
		relay(c, http.StatusOK, &nfeio.Response{Status: 200})
	})

	for path, want := range map[string]string{
		"/json":  `{"id":"1"}`,
		"/text":  `{"data":"plain"}`,
		"/empty": `null`,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if strings.TrimSpace(w.Body.String()) != want {
			t.Fatalf("%s: body=%s want %s", path, w.Body.String(), want)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
			t.Fatalf("%s: content type %q", path, w.Header().Get("Content-Type"))
		}
	}
}
