// Package api exposes the reports, closings, ledger and catalog over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/timestamp"
	"barbacoa-pos/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP API server.
type Server struct {
	corte   *usecase.CorteUseCase
	reports *usecase.ReportUseCase
	ledger  *usecase.LedgerUseCase
	catalog *usecase.CatalogUseCase
	health  Pinger
}

// NewServer creates a new API server.
func NewServer(corte *usecase.CorteUseCase, reports *usecase.ReportUseCase, ledger *usecase.LedgerUseCase,
	catalog *usecase.CatalogUseCase, health Pinger) *Server {
	return &Server{corte: corte, reports: reports, ledger: ledger, catalog: catalog, health: health}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(metricsMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/sales", s.handleSalesReport)
			r.Get("/hourly", s.handleHourly)
			r.Get("/tips", s.handleMonthlyTips)
		})
		r.Get("/closings/{date}", s.handlePreviewClosing)
		r.Put("/closings/{date}", s.handleSaveClosing)
		r.Post("/orders", s.handlePlaceOrder)
		r.Get("/expenses", s.handleDailyExpenses)
		r.Post("/expenses", s.handleRecordExpense)
		r.Post("/tips", s.handleRecordTip)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handleListProducts)
			r.Post("/", s.handleCreateProduct)
			r.Patch("/{id}", s.handleUpdateProduct)
		})
		r.Route("/waiters", func(r chi.Router) {
			r.Get("/", s.handleListWaiters)
			r.Post("/", s.handleCreateWaiter)
			r.Patch("/{id}", s.handleUpdateWaiter)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"status":  status,
		},
	})
}

// writeUseCaseError maps validation errors to 400, missing rows to 404 and
// everything else to 500.
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsValidation(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	log.Errorf("[API] %s %s: %v", r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, errors.New(name + " is required")
	}
	d, err := timestamp.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

// boolParam returns def when the parameter is absent.
func boolParam(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(name + " must be true or false")
	}
	return b, nil
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
