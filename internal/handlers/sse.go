package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"olist-dashboard/internal/services"
)

var kpiTemplate = template.Must(template.New("kpiStrip").Parse(`
<div id="kpi-strip">
<div class="kpi-card"><div class="kpi-title">Total Revenue</div><div class="kpi-value">R$ {{printf "%.2f" .TotalRevenue}}</div></div>
<div class="kpi-card"><div class="kpi-title">Total Orders</div><div class="kpi-value">{{.TotalOrders}}</div></div>
<div class="kpi-card"><div class="kpi-title">Avg Order Value</div><div class="kpi-value">R$ {{printf "%.2f" .AvgOrderValue}}</div></div>
<div class="kpi-card"><div class="kpi-title">Avg Delivery Time</div><div class="kpi-value">{{printf "%.1f" .AvgDeliveryDays}} days</div></div>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

// HandleDashboard recomputes the selected page for the requested date range
// and pushes the result as datastar signals. The browser re-requests this
// endpoint on every filter change; the computation itself stays in the
// services package.
func (h *SSEHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	page := services.Page(r.URL.Query().Get("page"))
	if page == "" {
		page = services.PageOverview
	}

	api := NewAPIHandlers(h.analytics, h.logger)
	start, end, topN, err := api.filterParams(r)
	if err != nil {
		h.logger.Warn("bad dashboard filter", "error", err)
		sse.PatchElements(`<div id="page-status">⚠️ Invalid date range</div>`)
		return
	}

	state, err := h.analytics.Render(page, start, end, topN)
	if err != nil {
		h.logger.Warn("bad dashboard page", "page", page, "error", err)
		sse.PatchElements(`<div id="page-status">⚠️ Unknown page</div>`)
		return
	}

	// Scatter plots over the full item set are too heavy for the browser.
	if state.Delivery != nil {
		state.Delivery.FreightVsWeight = services.SampleFreight(state.Delivery.FreightVsWeight, services.MaxScatterPoints)
	}

	signals, err := json.Marshal(map[string]any{
		"dashboard": state,
	})
	if err != nil {
		h.logger.Error("marshal dashboard state", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if state.Overview != nil {
		html, err := renderKPIStrip(state)
		if err != nil {
			h.logger.Error("render kpi strip", "error", err)
			return
		}
		sse.PatchElements(html)
	}
	sse.PatchElements(`<div id="page-status">✅ ` + string(state.Page) + ` loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func renderKPIStrip(state *services.DashboardState) (string, error) {
	var buf strings.Builder
	err := kpiTemplate.Execute(&buf, state.Overview)
	return buf.String(), err
}
