package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"

	"dorost/internal/db"
	"dorost/internal/knowledge"
	"dorost/pkg"
)

// Consultant is the slice of the pipeline the HTTP layer needs.
type Consultant interface {
	Consult(ctx context.Context, query string) *pkg.Consultation
	Route(query string) pkg.RoutingResult
}

// Store is the persistence surface the handlers use.  *db.Repository
// satisfies it; tests substitute a fake.
type Store interface {
	CreateSession(ctx context.Context, clientIP, userAgent *string) (*pkg.Session, error)
	GetSession(ctx context.Context, id string) (*pkg.Session, error)
	SaveConsultation(ctx context.Context, c *pkg.Consultation) (int64, error)
	GetConsultation(ctx context.Context, id int64) (*pkg.Consultation, error)
	ListRecent(ctx context.Context, limit int) ([]pkg.ConsultationPreview, error)
}

// Notifier announces completed consultations.  May be nil.
type Notifier interface {
	Notify(ctx context.Context, consultationID int64) error
}

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Store      Store
	Consultant Consultant
	Notifier   Notifier
	Knowledge  *knowledge.Store
}

// NewServer constructs a Server.
func NewServer(store Store, consultant Consultant, notifier Notifier, ks *knowledge.Store) *Server {
	return &Server{Store: store, Consultant: consultant, Notifier: notifier, Knowledge: ks}
}

// ServeHTTP dispatches incoming requests based on the URL path.  Minimal
// routing logic is implemented here to keep dependencies light.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case path == "/healthz" && r.Method == http.MethodGet:
		s.handleHealth(w, r)
	case path == "/api/sessions" && r.Method == http.MethodPost:
		s.handleCreateSession(w, r)
	case path == "/api/route" && r.Method == http.MethodPost:
		s.handleRoute(w, r)
	case path == "/api/consultations" && r.Method == http.MethodPost:
		s.handleConsult(w, r)
	case path == "/api/consultations" && r.Method == http.MethodGet:
		s.handleListConsultations(w, r)
	case strings.HasPrefix(path, "/api/consultations/") && r.Method == http.MethodGet:
		id, err := strconv.ParseInt(strings.TrimPrefix(path, "/api/consultations/"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		s.handleGetConsultation(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

// handleHealth reports liveness plus the loaded knowledge table sizes, so a
// misconfigured override file is visible from the outside.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"specialties": len(s.Knowledge.Specialties),
		"red_flags":   len(s.Knowledge.RedFlags),
		"patterns":    len(s.Knowledge.Patterns),
	})
}

// handleCreateSession creates a new anonymous session and returns its ID.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Store.CreateSession(r.Context(), clientIP(r), userAgent(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// handleRoute returns the routing decision alone.  Useful for triage UIs
// and debugging the knowledge tables without burning model calls.
func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req pkg.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, s.Consultant.Route(req.Query))
}

// handleConsult runs the full pipeline for a symptom description, persists
// the result and returns it.
func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req pkg.ConsultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "empty query", http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sess, err := s.Store.CreateSession(ctx, clientIP(r), userAgent(r))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		sessionID = sess.ID
	} else if _, err := s.Store.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "unknown session", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cons := s.Consultant.Consult(ctx, req.Query)
	cons.SessionID = sessionID
	id, err := s.Store.SaveConsultation(ctx, cons)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	cons.ID = id
	if s.Notifier != nil {
		if err := s.Notifier.Notify(ctx, id); err != nil {
			log.Println("failed to notify:", err)
		}
	}
	writeJSON(w, http.StatusCreated, cons)
}

func (s *Server) handleGetConsultation(w http.ResponseWriter, r *http.Request, id int64) {
	cons, err := s.Store.GetConsultation(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cons)
}

func (s *Server) handleListConsultations(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	previews, err := s.Store.ListRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, previews)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode response:", err)
	}
}

func clientIP(r *http.Request) *string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return nil
	}
	return &host
}

func userAgent(r *http.Request) *string {
	ua := r.UserAgent()
	if ua == "" {
		return nil
	}
	return &ua
}
