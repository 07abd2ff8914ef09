package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobilling/internal/adapter/http/dto"
	"github.com/iho/gobilling/internal/domain"
)

// ReportService is the reporting surface the handler consumes.
type ReportService interface {
	TopSpenders(ctx context.Context, now int64, k int) []domain.SpenderEntry
	AccountSummary(ctx context.Context, now int64, accountID string) (*domain.AccountSummary, error)
	StructuredReport(ctx context.Context, now int64) *domain.Report
	LastProcessed() int64
}

// ReportHandler serves the read API. Queries still advance scheduled
// payments, so the core stays single-writer: every request takes the one
// mutex before touching the service.
type ReportHandler struct {
	mu       sync.Mutex
	service  ReportService
	defaultK int
}

// NewReportHandler creates a new ReportHandler. defaultK bounds the
// top-spenders ranking when the request does not pass k.
func NewReportHandler(service ReportService, defaultK int) *ReportHandler {
	return &ReportHandler{service: service, defaultK: defaultK}
}

// GetReport handles GET /api/v1/report. The query timestamp comes from the
// `at` parameter and defaults to the last processed timestamp, so a plain
// request never moves the clock forward.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	at := parseInt64Query(r, "at", h.service.LastProcessed())
	report := h.service.StructuredReport(r.Context(), at)

	writeJSON(w, http.StatusOK, dto.ReportFromDomain(report))
}

// GetTopSpenders handles GET /api/v1/top-spenders.
func (h *ReportHandler) GetTopSpenders(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	at := parseInt64Query(r, "at", h.service.LastProcessed())
	k := parseIntQuery(r, "k", h.defaultK)
	entries := h.service.TopSpenders(r.Context(), at, k)

	writeJSON(w, http.StatusOK, dto.SpendersFromDomain(entries))
}

// GetAccountSummary handles GET /api/v1/accounts/{id}/summary.
func (h *ReportHandler) GetAccountSummary(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	accountID := chi.URLParam(r, "id")
	at := parseInt64Query(r, "at", h.service.LastProcessed())

	summary, err := h.service.AccountSummary(r.Context(), at, accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromDomain(summary))
}
