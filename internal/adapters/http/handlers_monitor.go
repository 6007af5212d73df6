package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"fieldsync/internal/application/orchestrators"
	"fieldsync/internal/application/projections"
	sessionDomain "fieldsync/internal/domain/session"
)

// handleMonitor handles GET /monitor — the field monitor's check-in sheet.
func handleMonitor(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetAttendanceSheet(r.Context(), timeNow(), projections.GetAttendanceSheetDeps{
		SessionStore: stores.SessionStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "monitor.html", map[string]any{
			"Sessions":  result.Sessions,
			"CheckedIn": r.URL.Query().Get("checked_in"),
			"NotFound":  r.URL.Query().Get("not_found") == "1",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result.Sessions)
}

// handleCheckIn handles POST /api/checkin.
func handleCheckIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input struct {
		SessionID      string `json:"SessionID"`
		RegistrationID string `json:"RegistrationID"`
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.SessionID = r.FormValue("SessionID")
		input.RegistrationID = r.FormValue("RegistrationID")
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}
	if input.SessionID == "" || input.RegistrationID == "" {
		http.Error(w, "SessionID and RegistrationID are required", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteCheckInTeam(r.Context(), orchestrators.CheckInTeamInput{
		SessionID:      input.SessionID,
		RegistrationID: input.RegistrationID,
	}, orchestrators.CheckInTeamDeps{SessionStore: stores.SessionStore})
	if err != nil {
		if errors.Is(err, sessionDomain.ErrSessionCancelled) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		if !result.Found {
			http.Redirect(w, r, "/monitor?not_found=1", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/monitor?checked_in="+url.QueryEscape(result.TeamName), http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
