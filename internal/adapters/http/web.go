package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"fieldsync/internal/adapters/http/middleware"
	"fieldsync/internal/adapters/http/perf"
	reportStore "fieldsync/internal/adapters/storage/fieldreport"
	"fieldsync/internal/adapters/storage/prefs"
	sessionStore "fieldsync/internal/adapters/storage/session"
	"fieldsync/internal/application/coachcache"
)

// Stores holds all storage dependencies.
type Stores struct {
	SessionStore     sessionStore.Store
	FieldReportStore reportStore.Store
	PrefStore        prefs.Store
}

// loadCSRFKey reads the CSRF secret from FIELDSYNC_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("FIELDSYNC_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("FIELDSYNC_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("FIELDSYNC_ENV") == "production" {
		log.Fatal("FIELDSYNC_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set FIELDSYNC_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global coach identity cache (set by NewMux)
var coachCache *coachcache.Cache

// adminPasswordHash is the bcrypt hash the login gate checks against (set by NewMux).
var adminPasswordHash string

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, passwordHash string, collector *perf.Collector) http.Handler {
	stores = s
	adminPasswordHash = passwordHash
	perfCollector = collector
	coachCache = coachcache.New(s.PrefStore)

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
