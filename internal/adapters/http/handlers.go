package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"fieldsync/internal/adapters/http/forms"
	"fieldsync/internal/application/orchestrators"
	"fieldsync/internal/application/projections"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// loginLatency is the artificial delay on admin login. Tests set it to zero.
var loginLatency = orchestrators.DefaultLoginLatency

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// isAdminRequest reads the persisted admin gate flag for this request.
func isAdminRequest(r *http.Request) bool {
	return orchestrators.IsAdminAuthenticated(r.Context(), stores.PrefStore)
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	admin := isAdminRequest(r)

	funcMap := template.FuncMap{
		"isAdmin":   func() bool { return admin },
		"csrfToken": func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"formatDate": func(t time.Time) string { return t.Format("Monday, Jan 2 2006") },
		"percent":    func(f float64) int { return int(f * 100) },
		"add":        func(a, b int) int { return a + b },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// registerRoutes attaches all application routes to the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/faq", handleFAQ)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/admin", handleAdminDashboard)
	mux.HandleFunc("/monitor", handleMonitor)
	mux.HandleFunc("/report", handleReport)
	mux.HandleFunc("/api/sessions", handleSessions)
	mux.HandleFunc("/api/sessions/cancel", handleCancelSession)
	mux.HandleFunc("/api/sessions/register", handleRegisterTeam)
	mux.HandleFunc("/api/sessions/registration/cancel", handleCancelRegistration)
	mux.HandleFunc("/api/checkin", handleCheckIn)
	mux.HandleFunc("/api/reports", handleFieldReports)
	mux.HandleFunc("/api/perf", handlePerfStats)
}

// handleHome handles GET / — the coach-facing session board.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	board, err := projections.QueryGetSessionBoard(ctx, timeNow(), projections.GetSessionBoardDeps{
		SessionStore: stores.SessionStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	identity := coachCache.Get(ctx)
	coachEmail := ""
	if identity != nil {
		coachEmail = identity.CoachEmail
	}
	mine, err := projections.QueryFindCoachRegistrations(ctx,
		projections.FindCoachRegistrationsQuery{CoachEmail: coachEmail},
		projections.FindCoachRegistrationsDeps{SessionStore: stores.SessionStore})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "home.html", map[string]any{
			"Upcoming":        board.Upcoming,
			"Past":            board.Past,
			"Coach":           identity,
			"MyRegistrations": mine.BySession,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(board)
}

// faqMarkdown is the FAQ page content, rendered through goldmark.
const faqMarkdown = `## How do I register my team?

Pick an upcoming session on the home page and fill in your team and
contact details. Your details are remembered for the next registration.

## How many teams fit in a session?

Each practice session has six slots. Once all six are taken the session
shows as full and no further registrations are accepted.

## Can I register for more than one session?

Yes — one registration per session, under the same coach email. Within a
single session each coach email can hold only one slot.

## A session I registered for was cancelled. What now?

Cancelled sessions stay visible with their registrations, so you can see
what was affected. Register for another upcoming session instead.

## What is a field report?

After a session has taken place, anyone who attended can rate the field
conditions from 1 to 5 and leave a short comment. Reports help the
grounds crew prioritise maintenance.`

// handleFAQ handles GET /faq.
func handleFAQ(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "faq.html", map[string]any{
		"Content": faqMarkdown,
	})
}

// handleLogin handles GET (form) and POST (authenticate) for /login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if isAdminRequest(r) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		form := forms.LoginForm{Password: r.FormValue("Password")}
		if err := forms.Validate(form); err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		deps := orchestrators.AdminGateDeps{
			PrefStore:    stores.PrefStore,
			PasswordHash: adminPasswordHash,
			Latency:      loginLatency,
		}
		if err := orchestrators.ExecuteAdminLogin(r.Context(), form.Password, deps); err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	orchestrators.ExecuteAdminLogout(r.Context(), orchestrators.AdminGateDeps{
		PrefStore: stores.PrefStore,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// requireAdmin checks the admin gate. Returns false if the request should
// not proceed; HTML requests are redirected to the login page.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if isAdminRequest(r) {
		return true
	}
	slog.Warn("auth_denied", "path", r.URL.Path, "reason", "admin gate closed")
	if isHTMLRequest(r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return false
	}
	http.Error(w, "not authenticated", http.StatusUnauthorized)
	return false
}
