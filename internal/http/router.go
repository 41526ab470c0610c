// Package httpapi wires the Gin engine: middleware, services and routes.
//
// Middleware order matters:
//  1. OpenTelemetry
//  2. RequestID
//  3. access log (Logger in debug mode, RedactingLogger otherwise)
//  4. Recovery
//  5. body size limit
//  6. Prometheus metrics
//  7. Idempotency-Key validation (before the limiter so replays bypass it)
//  8. rate limiter keyed by chat id or client IP
//  9. CORS, gzip and security headers
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/CathalystLTDA/zapcont-api/docs"
	"github.com/CathalystLTDA/zapcont-api/internal/config"
	"github.com/CathalystLTDA/zapcont-api/internal/http/handlers"
	"github.com/CathalystLTDA/zapcont-api/internal/http/middleware"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// PrometheusPath serves the scrape endpoint. It lives outside the API base
// path; /metrics under the base path is the dashboard snapshot.
const PrometheusPath = "/prometheus"

var (
	allowMethods  = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	allowHeaders  = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderChatID, middleware.HeaderIdempotencyKey}
	exposeHeaders = []string{"X-Request-ID", "Content-Length", "Content-Disposition", handlers.HeaderIdempotentReplay}
)

// RegisterRoutes attaches middleware and every endpoint to r. The database
// backed services are built here; inv is passed in so the caller can wait
// for its background archiving on shutdown.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, inv *services.InvoiceService, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	txSvc := &services.TransactionService{DB: db, IdempotencyTTL: cfg.IdempotencyTTL}

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	if cfg.GinMode == gin.DebugMode {
		r.Use(middleware.Logger())
	} else {
		r.Use(middleware.RedactingLogger(middleware.RedactOptions{
			MaskHeaders: []string{"X-Api-Key", middleware.HeaderChatID},
		}))
	}
	r.Use(middleware.Recovery())
	r.Use(limitBody(cfg.MaxBodyBytes))
	r.Use(middleware.Metrics())

	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, txSvc.HasKey))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByChatOrIP())
	r.Use(rl.Handler())

	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins)...)

	// Renditions are already compressed formats or served as downloads.
	r.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPathsRegexs([]string{`/(pdf|xml)$`}),
		gzip.WithExcludedPaths([]string{PrometheusPath}),
	))

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:    cfg.Security.EnableHSTS,
		HSTSMaxAge:    cfg.Security.HSTSMaxAge,
		EnablePolicy:  true,
		ExposeHeaders: []string{"Content-Disposition", handlers.HeaderIdempotentReplay},
	}))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.KindNotFound, "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.KindMethodNotAllowed, "Method not allowed")
	})

	r.GET(PrometheusPath, gin.WrapH(promhttp.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	h := handlers.New(handlers.Services{
		UserInfo:     &services.UserInfoService{DB: db},
		Companies:    &services.CompanyService{DB: db},
		Transactions: txSvc,
		Feedback:     &services.FeedbackService{DB: db},
		Messages:     &services.MessageService{DB: db},
		Metrics:      &services.MetricsService{DB: db, Mode: cfg.MessagesByDayMode},
		Invoices:     inv,
	})
	h.Register(groupWithPrefix(r, cfg.APIBasePath))
}

// corsMiddleware allows every origin when none is configured. Otherwise
// allowlisted origins are echoed back.
func corsMiddleware(origins []string) []gin.HandlerFunc {
	if len(origins) == 0 {
		return []gin.HandlerFunc{
			// Set ACAO even without an Origin header so plain health checks see it.
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(cors.Config{
				AllowAllOrigins:  true,
				AllowMethods:     allowMethods,
				AllowHeaders:     allowHeaders,
				ExposeHeaders:    exposeHeaders,
				AllowCredentials: false, // must stay false with AllowAllOrigins
				MaxAge:           12 * time.Hour,
			}),
		}
	}

	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  allowMethods,
			AllowHeaders:  allowHeaders,
			ExposeHeaders: exposeHeaders,
			MaxAge:        12 * time.Hour,
		}),
	}
}

// limitBody caps request bodies with http.MaxBytesReader. Reads past the cap
// fail; handlers turn that into 413. maxBytes <= 0 disables the cap.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
