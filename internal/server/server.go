package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hearthvale/forgecore/internal/catalog"
	"github.com/hearthvale/forgecore/internal/crafting"
	"github.com/hearthvale/forgecore/internal/craftlog"
	"github.com/hearthvale/forgecore/internal/database"
	"github.com/hearthvale/forgecore/internal/discovery"
	"github.com/hearthvale/forgecore/internal/handler"
	"github.com/hearthvale/forgecore/internal/knowledge"
	"github.com/hearthvale/forgecore/internal/logger"
	"github.com/hearthvale/forgecore/internal/metrics"
)

// Services bundles the domain services the HTTP surface exposes
type Services struct {
	Catalog   catalog.Service
	Crafting  crafting.Service
	Knowledge knowledge.Service
	Discovery discovery.Service
	Craftlog  craftlog.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	services   Services
}

// NewServer creates a new Server instance with the full middleware stack and
// route table mounted
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/materials", func(r chi.Router) {
			r.Get("/", handler.HandleListMaterials(services.Catalog))
			r.Post("/", handler.HandleCreateMaterial(services.Catalog))
			r.Get("/by-name", handler.HandleGetMaterialByName(services.Catalog))
			r.Get("/{id}", handler.HandleGetMaterial(services.Catalog))
			r.Put("/{id}", handler.HandleUpdateMaterial(services.Catalog))
			r.Delete("/{id}", handler.HandleDeleteMaterial(services.Catalog))
			r.Get("/{id}/uses", handler.HandleListRecipesUsingMaterial(services.Catalog))
			r.Get("/{id}/sources", handler.HandleListRecipesProducingMaterial(services.Catalog))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(services.Catalog))
			r.Post("/", handler.HandleCreateRecipe(services.Catalog))
			r.Get("/by-name", handler.HandleGetRecipeByName(services.Catalog))
			r.Get("/popular", handler.HandleGetPopularRecipes(services.Craftlog))
			r.Get("/{id}", handler.HandleGetRecipe(services.Catalog))
			r.Put("/{id}", handler.HandleUpdateRecipe(services.Catalog))
			r.Delete("/{id}", handler.HandleDeleteRecipe(services.Catalog))
		})

		r.Route("/craft", func(r chi.Router) {
			r.Post("/", handler.HandleCraft(services.Crafting))
			r.Post("/preview", handler.HandleCraftPreview(services.Crafting))
		})

		r.Post("/discovery", handler.HandleAttemptDiscovery(services.Discovery))

		r.Route("/knowledge", func(r chi.Router) {
			r.Get("/", handler.HandleListKnownRecipes(services.Knowledge))
			r.Post("/learn", handler.HandleLearnRecipe(services.Knowledge))
			r.Post("/forget", handler.HandleForgetRecipe(services.Knowledge))
			r.Get("/{id}", handler.HandleGetKnownRecipe(services.Knowledge))
		})

		r.Get("/history", handler.HandleGetCraftingHistory(services.Craftlog))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:   dbPool,
		services: services,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health checks and metrics scrapes
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
