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

	"github.com/tdnguyen27/StudyPet_Go/internal/database"
	"github.com/tdnguyen27/StudyPet_Go/internal/economy"
	"github.com/tdnguyen27/StudyPet_Go/internal/gacha"
	"github.com/tdnguyen27/StudyPet_Go/internal/handler"
	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
	"github.com/tdnguyen27/StudyPet_Go/internal/metrics"
	"github.com/tdnguyen27/StudyPet_Go/internal/pet"
	"github.com/tdnguyen27/StudyPet_Go/internal/quest"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	economyService economy.Service
	gachaService   gacha.Service
	petService     pet.Service
	questService   quest.Service
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, economyService economy.Service, gachaService gacha.Service, petService pet.Service, questService quest.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(RequestSizeLimitMiddleware(RequestSizeLimit))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/economy", func(r chi.Router) {
			r.Get("/", handler.HandleGetEconomy(economyService))
			r.Post("/task/complete", handler.HandleCompleteTask(economyService))
			r.Post("/task/uncomplete", handler.HandleUncompleteTask(economyService))
			r.Post("/focus", handler.HandleFocusSession(economyService))
			r.Post("/shop/food", handler.HandleBuyFood(economyService))
		})

		r.Route("/gacha", func(r chi.Router) {
			r.Post("/spin", handler.HandleSpin(gachaService))
			r.Post("/spin10", handler.HandleSpin10(gachaService))
		})

		r.Route("/pets", func(r chi.Router) {
			r.Get("/", handler.HandleGetCollection(petService))
			r.Route("/{petID}", func(r chi.Router) {
				r.Post("/feed", handler.HandleFeedPet(petService))
				r.Post("/play", handler.HandlePlayWithPet(petService))
				r.Post("/equip", handler.HandleEquipPet(petService))
				r.Post("/unequip", handler.HandleUnequipPet(petService))
				r.Delete("/", handler.HandleDeletePet(petService))
			})
		})

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", handler.HandleGetQuests(questService))
			r.Post("/event", handler.HandleQuestEvent(questService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		economyService: economyService,
		gachaService:   gachaService,
		petService:     petService,
		questService:   questService,
	}
}

// RequestSizeLimitMiddleware caps request body size
func RequestSizeLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
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

		// Skip logging for health check endpoints and metrics
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
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
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
