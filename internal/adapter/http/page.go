package httpadapter

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/ui"
)

// newShell builds the per-request shell. Sort state and modal visibility
// travel in the query string (`sort`, `order`, `modal=add`).
func (h *Handler) newShell(r *http.Request) *ui.Shell {
	q := r.URL.Query()
	shell := ui.NewShell(h.svc)
	shell.Table().SetSortState(ui.ParseSortState(q.Get("sort"), q.Get("order")))
	if q.Get("modal") == "add" {
		shell.OpenModal()
	}
	return shell
}

// handleIndex renders the campaign page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.newShell(r), http.StatusOK)
}

// handleCreateCampaign processes the add-campaign form. A successful add
// redirects back to the page with the modal closed. A validation failure
// re-renders the page with HTTP 422, the modal open, the entered values
// kept and the message shown.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	shell := h.newShell(r)
	shell.OpenModal()
	for _, field := range domain.Fields() {
		shell.Form().Set(field, r.PostForm.Get(string(field)))
	}

	c, err := shell.Submit(r.Context())
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.renderPage(w, r, shell, http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.Error("add campaign error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("campaign added", slog.String("id", c.ID))
	http.Redirect(w, r, string(indexURL(shell.Table().SortState())), http.StatusSeeOther)
}

// handleDeleteCampaign removes a campaign and redirects back to the page.
// Unknown ids are not an error.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	shell := h.newShell(r)
	if shell.OnTableDelete(r.Context(), id) {
		h.logger.Info("campaign deleted", slog.String("id", id))
	}
	http.Redirect(w, r, string(indexURL(shell.Table().SortState())), http.StatusSeeOther)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, shell *ui.Shell, status int) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, "page", shell.View(r.Context())); err != nil {
		h.logger.Error("render page error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("write page error", slog.Any("error", err))
	}
}
