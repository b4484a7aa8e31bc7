package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"dorost/internal/config"
	"dorost/internal/core"
	"dorost/internal/db"
	httpserver "dorost/internal/http"
	"dorost/internal/knowledge"
	"dorost/internal/llm"
	"dorost/internal/routing"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Open database connection
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}
	if err := db.Migrate(context.Background(), dbConn); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
	repo := db.NewRepository(dbConn)
	notifier := db.NewNotifier(dbConn, cfg.DatabaseURL, cfg.NotifyChannel)

	// Knowledge tables: built-in by default, YAML override when configured.
	// Malformed tables are fatal; there is no degraded routing mode.
	var store *knowledge.Store
	if cfg.KnowledgeFile != "" {
		store, err = knowledge.LoadFile(cfg.KnowledgeFile)
	} else {
		store, err = knowledge.Load()
	}
	if err != nil {
		log.Fatalf("failed to load knowledge tables: %v", err)
	}
	engine, err := routing.NewEngine(store)
	if err != nil {
		log.Fatalf("failed to build routing engine: %v", err)
	}
	log.Printf("knowledge loaded: %d specialties, %d red flags, %d patterns",
		len(store.Specialties), len(store.RedFlags), len(store.Patterns))

	// LLM client (uses env: OPENAI_API_KEY, OPENAI_MODEL)
	llmClient := llm.NewOpenAIClient()
	consultant := core.NewConsultant(engine, llmClient, cfg.MaxPatternMatches, cfg.ConfidenceThreshold)

	// Log completed consultations announced over LISTEN/NOTIFY.
	go func() {
		ids, err := notifier.Listen(context.Background())
		if err != nil {
			log.Printf("notifier listen disabled: %v", err)
			return
		}
		for id := range ids {
			log.Printf("consultation %d completed", id)
		}
	}()

	srv := httpserver.NewServer(repo, consultant, notifier, store)
	addr := ":" + cfg.Port
	log.Printf("Listening on %s", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
