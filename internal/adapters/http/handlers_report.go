package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fieldsync/internal/adapters/http/forms"
	"fieldsync/internal/application/orchestrators"
	"fieldsync/internal/application/projections"
)

// handleReport handles GET (form) and POST (submit) for /report.
func handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		sessions, err := projections.QueryGetReportableSessions(ctx, timeNow(), projections.GetReportableSessionsDeps{
			SessionStore: stores.SessionStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "report.html", map[string]any{
				"Sessions":  sessions,
				"Submitted": r.URL.Query().Get("submitted") == "1",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sessions)
		return
	}

	if r.Method == "POST" {
		form := forms.FieldReportForm{}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			form.SessionID = r.FormValue("SessionID")
			form.RegistrationID = r.FormValue("RegistrationID")
			form.Rating, _ = strconv.Atoi(r.FormValue("Rating"))
			form.Comments = r.FormValue("Comments")
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

		report, err := orchestrators.ExecuteSubmitFieldReport(ctx, orchestrators.SubmitFieldReportInput{
			SessionID:      form.SessionID,
			RegistrationID: form.RegistrationID,
			Rating:         form.Rating,
			Comments:       form.Comments,
		}, orchestrators.SubmitFieldReportDeps{
			FieldReportStore: stores.FieldReportStore,
			GenerateID:       generateID,
			Now:              timeNow,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/report?submitted=1", http.StatusSeeOther)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(report)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}
