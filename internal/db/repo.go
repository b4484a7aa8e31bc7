package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dorost/pkg"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session or consultation does not exist.
var ErrNotFound = errors.New("not found")

// Repository wraps database operations for sessions and consultations.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// CreateSession creates a new anonymous session with optional client
// metadata and returns it.
func (r *Repository) CreateSession(ctx context.Context, clientIP, userAgent *string) (*pkg.Session, error) {
	s := pkg.Session{ID: uuid.New().String(), ClientIP: clientIP, UserAgent: userAgent}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO sessions (id, client_ip, user_agent)
         VALUES ($1, $2, $3)
         RETURNING created_at`,
		s.ID, clientIP, userAgent,
	).Scan(&s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &s, nil
}

// GetSession retrieves a session by ID.
func (r *Repository) GetSession(ctx context.Context, id string) (*pkg.Session, error) {
	var s pkg.Session
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, created_at, closed_at, client_ip, user_agent
         FROM sessions WHERE id = $1`, id,
	).Scan(&s.ID, &s.CreatedAt, &s.ClosedAt, &s.ClientIP, &s.UserAgent)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveConsultation persists a completed consultation and returns its ID.
// The full result is stored as JSON; routing fields are duplicated into
// columns so previews and dashboards avoid unpacking the document.
func (r *Repository) SaveConsultation(ctx context.Context, c *pkg.Consultation) (int64, error) {
	doc, err := json.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("encode consultation: %w", err)
	}
	var id int64
	err = r.DB.QueryRowContext(ctx,
		`INSERT INTO consultations (session_id, query, status, escalated, urgency, specialty, confidence, result)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id`,
		c.SessionID, c.Query, string(c.Status), c.Routing.Escalate,
		c.Routing.Urgency, c.Routing.Specialty, c.Routing.Confidence, doc,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save consultation: %w", err)
	}
	return id, nil
}

// GetConsultation loads a stored consultation by ID.
func (r *Repository) GetConsultation(ctx context.Context, id int64) (*pkg.Consultation, error) {
	var (
		doc       []byte
		sessionID string
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT session_id, result FROM consultations WHERE id = $1`, id,
	).Scan(&sessionID, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var c pkg.Consultation
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("decode consultation %d: %w", id, err)
	}
	c.ID = id
	c.SessionID = sessionID
	return &c, nil
}

// ListRecent returns previews of the most recent consultations, newest
// first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]pkg.ConsultationPreview, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, session_id, query, status, specialty, urgency, confidence, created_at
         FROM consultations
         ORDER BY created_at DESC
         LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []pkg.ConsultationPreview
	for rows.Next() {
		var (
			p         pkg.ConsultationPreview
			specialty sql.NullString
			urgency   sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Query, &p.Status, &specialty, &urgency, &p.Confidence, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Specialty = specialty.String
		p.Urgency = urgency.String
		out = append(out, p)
	}
	return out, rows.Err()
}
