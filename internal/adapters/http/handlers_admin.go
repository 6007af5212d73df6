package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fieldsync/internal/adapters/http/forms"
	"fieldsync/internal/application/orchestrators"
	"fieldsync/internal/application/projections"
)

// handleAdminDashboard handles GET /admin — the schedule management view.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}

	board, err := projections.QueryGetSessionBoard(r.Context(), timeNow(), projections.GetSessionBoardDeps{
		SessionStore: stores.SessionStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "admin.html", map[string]any{
		"Upcoming": board.Upcoming,
		"Past":     board.Past,
	})
}

// handleSessions handles GET (board) and POST (create, admin only) for /api/sessions.
func handleSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		board, err := projections.QueryGetSessionBoard(ctx, timeNow(), projections.GetSessionBoardDeps{
			SessionStore: stores.SessionStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(board)
		return
	}

	if r.Method == "POST" {
		if !requireAdmin(w, r) {
			return
		}

		form := forms.CreateSessionForm{}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			form.Date = r.FormValue("Date")
			form.Time = r.FormValue("Time")
		} else {
			if err := strictDecode(r, &form); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}
		if err := forms.Validate(form); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		date, err := forms.ParseDate(form.Date)
		if err != nil {
			http.Error(w, "date must be provided as YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		s, err := orchestrators.ExecuteCreateSession(ctx, orchestrators.CreateSessionInput{
			Date: date,
			Time: form.Time,
		}, orchestrators.CreateSessionDeps{
			SessionStore: stores.SessionStore,
			GenerateID:   generateID,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(s)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleCancelSession handles POST /api/sessions/cancel (admin only).
func handleCancelSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}

	var input struct {
		SessionID string `json:"SessionID"`
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.SessionID = r.FormValue("SessionID")
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}
	if input.SessionID == "" {
		http.Error(w, "SessionID is required", http.StatusBadRequest)
		return
	}

	outcome, err := orchestrators.ExecuteCancelSession(r.Context(),
		orchestrators.CancelSessionInput{SessionID: input.SessionID},
		orchestrators.CancelSessionDeps{SessionStore: stores.SessionStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"Outcome": string(outcome)})
}

// handleFieldReports handles GET /api/reports (admin only) — the submitted
// field-condition reports, newest first.
func handleFieldReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}

	log, err := projections.QueryGetFieldReportLog(r.Context(), projections.GetFieldReportLogDeps{
		FieldReportStore: stores.FieldReportStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(log)
}

// handlePerfStats handles GET /api/perf (admin only) — timing snapshot for
// the last hour.
func handlePerfStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusNotFound)
		return
	}

	snap := perfCollector.Snapshot(timeNow().Add(-time.Hour), 10)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}
