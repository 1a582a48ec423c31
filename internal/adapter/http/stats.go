package httpadapter

import (
	"net/http"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// handleStatsOverview returns aggregated clicks, cost, revenue and profit.
// It accepts optional `from` and `to` query parameters (YYYY-MM-DD or
// RFC3339) bounding the campaign start date; both are inclusive. When no
// period is provided every campaign is counted. Invalid parameters result
// in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		ok      bool
	)

	if fromStr != "" {
		req.From, ok = domain.ParseDate(fromStr)
		if !ok {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid 'from' date"})
			return
		}
	}

	if toStr != "" {
		req.To, ok = domain.ParseDate(toStr)
		if !ok {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid 'to' date"})
			return
		}
	}

	h.writeJSON(w, http.StatusOK, h.svc.Stats(r.Context(), req))
}
