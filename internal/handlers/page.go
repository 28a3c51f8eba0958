package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lebrongpt/compare-ui/internal/handlers/templates"
	"github.com/lebrongpt/compare-ui/internal/models"
	"github.com/lebrongpt/compare-ui/internal/view"
)

// CompareForm is the bound comparison form.
type CompareForm struct {
	SecondPlayer string `validate:"required"`
}

// Home renders the comparison page from the current view state.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	state := h.view.Snapshot()

	data := templates.ComparePage{
		FirstPlayerName:  state.FirstPlayerName,
		SecondPlayerName: state.SecondPlayerName,
		Loading:          state.Loading,
		ErrorMessage:     state.ErrorMessage,
		CanCompare:       state.CanCompare(),
		ButtonLabel:      "Compare",
	}
	if state.Loading {
		data.ButtonLabel = "Comparing..."
	}

	// One table per present record, independently
	for _, ps := range []*models.PlayerStats{state.FirstPlayerStats, state.SecondPlayerStats} {
		if ps == nil {
			continue
		}
		table := templates.Table{PlayerName: ps.PlayerName}
		for _, e := range ps.Stats.Entries() {
			table.Rows = append(table.Rows, templates.Row{Name: e.Name, Value: e.Value.Display()})
		}
		data.Tables = append(data.Tables, table)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderCompare(w, data); err != nil {
		h.logger.Errorw("Failed to render page", "error", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// CompareAction handles the compare form submission, runs the
// comparison, and redirects back to the page (post/redirect/get, so a
// refresh does not re-trigger the flow). Failures surface through the
// view state's error panel, not the HTTP status.
func (h *Handler) CompareAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	form := CompareForm{SecondPlayer: strings.TrimSpace(r.PostFormValue("second_player"))}
	h.view.SetSecondPlayerName(form.SecondPlayer)

	if err := h.validator.Struct(form); err != nil {
		// Empty input never issues a request; the page renders the
		// button disabled for the same reason.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Flow failures are logged and stored by the controller and render
	// through the error panel; only a refused start is worth a line here.
	err := h.view.Compare(r.Context())
	if errors.Is(err, view.ErrCompareInFlight) || errors.Is(err, view.ErrEmptyPlayerName) {
		h.logger.Infow("Comparison not started", "reason", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
