package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"olist-dashboard/internal/errors"
	"olist-dashboard/internal/observability"
	"olist-dashboard/internal/services"
)

const (
	dateLayout   = "2006-01-02"
	cacheControl = "public, max-age=300"
)

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// filterParams reads start/end/top_n from the query string. Absent dates
// default to the dataset's full range; a malformed date is a client error.
// An inverted range is accepted and yields empty results downstream.
func (h *APIHandlers) filterParams(r *http.Request) (start, end time.Time, topN int, err error) {
	start, end = h.analytics.DateRange()

	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err = time.Parse(dateLayout, raw)
		if err != nil {
			return start, end, 0, errors.BadRequestWrap(err, "invalid start date, want YYYY-MM-DD")
		}
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err = time.Parse(dateLayout, raw)
		if err != nil {
			return start, end, 0, errors.BadRequestWrap(err, "invalid end date, want YYYY-MM-DD")
		}
	}
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		topN, err = strconv.Atoi(raw)
		if err != nil {
			return start, end, 0, errors.BadRequestWrap(err, "invalid top_n, want an integer")
		}
	}
	return start, end, topN, nil
}

func (h *APIHandlers) renderPage(w http.ResponseWriter, r *http.Request, page services.Page) {
	requestID := observability.GetRequestID(r.Context())

	start, end, topN, err := h.filterParams(r)
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	state, err := h.analytics.Render(page, start, end, topN)
	if err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "invalid page"), requestID)
		return
	}

	errors.WriteSuccessWithHeaders(w, state, map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleOverview(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, services.PageOverview)
}

func (h *APIHandlers) HandleSales(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, services.PageSales)
}

func (h *APIHandlers) HandleProducts(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, services.PageProducts)
}

func (h *APIHandlers) HandleCustomers(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, services.PageCustomers)
}

func (h *APIHandlers) HandleReviews(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, services.PageReviews)
}

func (h *APIHandlers) HandlePayments(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, services.PagePayments)
}

func (h *APIHandlers) HandleDelivery(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, services.PageDelivery)
}

// HandlePages returns the fixed page selector list for the sidebar.
func (h *APIHandlers) HandlePages(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, services.Pages, map[string]string{
		"Cache-Control": cacheControl,
	})
}

// HandleRange returns the dataset's min and max purchase dates so the date
// picker can bound its inputs.
func (h *APIHandlers) HandleRange(w http.ResponseWriter, r *http.Request) {
	min, max := h.analytics.DateRange()

	rangeData := map[string]string{"min": "", "max": ""}
	if !min.IsZero() {
		rangeData["min"] = min.Format(dateLayout)
		rangeData["max"] = max.Format(dateLayout)
	}

	errors.WriteSuccessWithHeaders(w, rangeData, map[string]string{
		"Cache-Control": cacheControl,
	})
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
