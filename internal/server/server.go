package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/newsguard/internal/corroborate"
	"github.com/jonathan/newsguard/internal/db"
	"github.com/jonathan/newsguard/internal/detect"
	"github.com/jonathan/newsguard/internal/llm"
	"github.com/jonathan/newsguard/internal/rules"
	"github.com/jonathan/newsguard/internal/scoring"
	"github.com/jonathan/newsguard/internal/search"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	client     llm.Client
	detector   *detect.Detector // with corroboration, when configured
	plain      *detect.Detector // rule evaluation only
	sessions   *detect.Sessions
	ruleSet    []rules.Rule
	verbose    bool
}

// Config holds server configuration
type Config struct {
	Port              int
	APIKey            string
	SearchAPIKey      string
	SearchEngineID    string
	DatabaseURL       string
	RulesPath         string
	HighRiskThreshold int
	LowRiskThreshold  int
	MaxSearchResults  int
	Verbose           bool
}

// New creates a new server instance. The database and the search credentials
// are both optional: without a database nothing is persisted, and without
// search credentials every assessment runs rule evaluation only.
func New(cfg Config) (*Server, error) {
	ctx := context.Background()

	ruleSet := rules.Default()
	if cfg.RulesPath != "" {
		loaded, err := rules.LoadFile(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules: %w", err)
		}
		ruleSet = loaded
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	s := &Server{
		client:   client,
		sessions: detect.NewSessions(),
		ruleSet:  ruleSet,
		verbose:  cfg.Verbose,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		s.db = database
	}

	high, low := cfg.HighRiskThreshold, cfg.LowRiskThreshold
	if high == 0 {
		high = scoring.DefaultHighRiskThreshold
	}
	if low == 0 {
		low = scoring.DefaultLowRiskThreshold
	}
	opts := []detect.Option{detect.WithThresholds(high, low), detect.WithVerbose(cfg.Verbose)}

	s.plain = detect.NewDetector(client, nil, ruleSet, opts...)
	if cfg.SearchAPIKey != "" && cfg.SearchEngineID != "" {
		searcher, err := search.NewGoogleSearcher(ctx, cfg.SearchAPIKey, cfg.SearchEngineID, cfg.Verbose)
		if err != nil {
			return nil, fmt.Errorf("failed to create search client: %w", err)
		}
		scorer := corroborate.NewScorer(searcher,
			corroborate.WithMaxResults(cfg.MaxSearchResults),
			corroborate.WithVerbose(cfg.Verbose))
		s.detector = detect.NewDetector(client, scorer, ruleSet, opts...)
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /detect", s.handleDetect)
	mux.HandleFunc("POST /corroborate", s.handleCorroborate)
	mux.HandleFunc("GET /assessments", s.handleListAssessments)
	mux.HandleFunc("GET /assessments/{id}", s.handleGetAssessment)
	mux.HandleFunc("GET /rules", s.handleRules)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Generation plus search can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	if err := s.client.Close(); err != nil {
		log.Printf("Error closing generation client: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response for the given error
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
