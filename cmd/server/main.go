package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	web "fieldsync/internal/adapters/http"
	"fieldsync/internal/adapters/http/perf"
	"fieldsync/internal/adapters/storage"
	reportStore "fieldsync/internal/adapters/storage/fieldreport"
	"fieldsync/internal/adapters/storage/prefs"
	sessionStore "fieldsync/internal/adapters/storage/session"
	"fieldsync/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// WAL mode with a busy timeout keeps the prefs store responsive
	// alongside concurrent request handling.
	dbPath := envOrDefault("FIELDSYNC_DB_PATH", "fieldsync.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	log.Println("Database initialized successfully!")

	collector := perf.NewCollector(perf.DefaultRingSize)

	// Sessions and field reports are held in memory; only durable
	// preferences (admin flag, coach identity) go through SQLite.
	stores := &web.Stores{
		SessionStore:     sessionStore.NewMemoryStore(),
		FieldReportStore: reportStore.NewMemoryStore(),
		PrefStore:        prefs.NewSQLiteStore(db),
	}

	adminPassword := envOrDefault("FIELDSYNC_ADMIN_PASSWORD", "WRT123")
	passwordHash, err := orchestrators.HashAdminPassword(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	// Seed a demo schedule for development only.
	if os.Getenv("FIELDSYNC_ENV") != "production" {
		seedDeps := orchestrators.SeedDemoDeps{SessionStore: stores.SessionStore}
		if err := orchestrators.ExecuteSeedDemo(context.Background(), seedDeps); err != nil {
			log.Fatalf("failed to seed demo sessions: %v", err)
		}
		log.Println("Demo schedule loaded (dev mode)")
	}

	mux := web.NewMux("static", stores, passwordHash, collector)

	addr := envOrDefault("FIELDSYNC_ADDR", ":8080")
	log.Printf("FieldSync %s starting on %s (env=%s)", version, addr, envOrDefault("FIELDSYNC_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
