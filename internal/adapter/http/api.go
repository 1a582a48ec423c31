package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/ui"
)

// campaignResponse is a campaign with its derived profit.
type campaignResponse struct {
	domain.Campaign
	Profit float64 `json:"profit"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{Campaign: c, Profit: c.Profit()}
}

type sortResponse struct {
	Key   ui.SortKey   `json:"key"`
	Order ui.SortOrder `json:"order"`
}

type listResponse struct {
	Sort      sortResponse       `json:"sort"`
	Campaigns []campaignResponse `json:"campaigns"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// textValue accepts a JSON string, number or null and keeps its text, so
// API clients may send `"clicks": 120` as well as `"clicks": "120"`.
type textValue string

func (v *textValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = textValue(s)
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		*v = textValue(b)
	default:
		return errors.New("field value must be a string or a number")
	}
	return nil
}

// handleListCampaigns returns every campaign in the requested order. It
// accepts the same `sort` and `order` query parameters as the page.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := ui.ParseSortState(q.Get("sort"), q.Get("order"))
	sorted := ui.Sorted(h.svc.List(r.Context()), state)

	resp := listResponse{
		Sort:      sortResponse{Key: state.Key, Order: state.Order},
		Campaigns: make([]campaignResponse, 0, len(sorted)),
	}
	for _, c := range sorted {
		resp.Campaigns = append(resp.Campaigns, toCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleAPICreateCampaign runs the six posted fields through the campaign
// form. Validation failures produce HTTP 422 with the message and field;
// malformed JSON produces HTTP 400. On success it returns HTTP 201 with the
// created campaign.
func (h *Handler) handleAPICreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body map[domain.Field]textValue
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	shell := ui.NewShell(h.svc)
	shell.OpenModal()
	for _, field := range domain.Fields() {
		shell.Form().Set(field, string(body[field]))
	}

	c, err := shell.Submit(r.Context())
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Field: string(verr.Field)})
		return
	case err != nil:
		h.logger.Error("add campaign error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.logger.Info("campaign added", slog.String("id", c.ID))
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleAPIDeleteCampaign deletes by id. It always answers HTTP 204, since
// deleting an unknown id is a no-op.
func (h *Handler) handleAPIDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.svc.Delete(r.Context(), id) {
		h.logger.Info("campaign deleted", slog.String("id", id))
	}
	w.WriteHeader(http.StatusNoContent)
}

type healthResponse struct {
	Status    string `json:"status"`
	Campaigns int    `json:"campaigns"`
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Campaigns: len(h.svc.List(r.Context()))})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
