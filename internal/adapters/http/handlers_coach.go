package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"fieldsync/internal/adapters/http/forms"
	sessionStore "fieldsync/internal/adapters/storage/session"
	"fieldsync/internal/application/orchestrators"
	sessionDomain "fieldsync/internal/domain/session"
)

// handleRegisterTeam handles POST /api/sessions/register.
func handleRegisterTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	form := forms.RegisterTeamForm{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		form.SessionID = r.FormValue("SessionID")
		form.TeamName = r.FormValue("TeamName")
		form.CoachName = r.FormValue("CoachName")
		form.CoachEmail = r.FormValue("CoachEmail")
		form.CoachPhone = r.FormValue("CoachPhone")
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

	reg, err := orchestrators.ExecuteRegisterTeam(r.Context(), orchestrators.RegisterTeamInput{
		SessionID:  form.SessionID,
		TeamName:   form.TeamName,
		CoachName:  form.CoachName,
		CoachEmail: form.CoachEmail,
		CoachPhone: form.CoachPhone,
	}, orchestrators.RegisterTeamDeps{
		SessionStore: stores.SessionStore,
		CoachCache:   coachCache,
		GenerateID:   generateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionStore.ErrNotFound):
			http.Error(w, "session not found", http.StatusNotFound)
		case errors.Is(err, sessionDomain.ErrSessionFull),
			errors.Is(err, sessionDomain.ErrSessionCancelled),
			errors.Is(err, sessionDomain.ErrDuplicateCoach):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(reg)
}

// handleCancelRegistration handles POST /api/sessions/registration/cancel.
func handleCancelRegistration(w http.ResponseWriter, r *http.Request) {
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

	err := orchestrators.ExecuteCancelRegistration(r.Context(), orchestrators.CancelRegistrationInput{
		SessionID:      input.SessionID,
		RegistrationID: input.RegistrationID,
	}, orchestrators.CancelRegistrationDeps{SessionStore: stores.SessionStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
