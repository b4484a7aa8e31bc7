package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"dorost/internal/core"
	"dorost/internal/db"
	"dorost/internal/knowledge"
	"dorost/internal/llm"
	"dorost/internal/routing"
	"dorost/pkg"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	sessions      map[string]*pkg.Session
	consultations map[int64]*pkg.Consultation
	nextID        int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions:      map[string]*pkg.Session{},
		consultations: map[int64]*pkg.Consultation{},
	}
}

func (f *fakeStore) CreateSession(_ context.Context, clientIP, userAgent *string) (*pkg.Session, error) {
	s := &pkg.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		ClientIP:  clientIP,
		UserAgent: userAgent,
	}
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeStore) GetSession(_ context.Context, id string) (*pkg.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) SaveConsultation(_ context.Context, c *pkg.Consultation) (int64, error) {
	f.nextID++
	stored := *c
	stored.ID = f.nextID
	f.consultations[f.nextID] = &stored
	return f.nextID, nil
}

func (f *fakeStore) GetConsultation(_ context.Context, id int64) (*pkg.Consultation, error) {
	c, ok := f.consultations[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return c, nil
}

func (f *fakeStore) ListRecent(_ context.Context, limit int) ([]pkg.ConsultationPreview, error) {
	out := make([]pkg.ConsultationPreview, 0, len(f.consultations))
	for id := f.nextID; id > 0 && len(out) < limit; id-- {
		c, ok := f.consultations[id]
		if !ok {
			continue
		}
		out = append(out, pkg.ConsultationPreview{
			ID: c.ID, SessionID: c.SessionID, Query: c.Query,
			Status: c.Status, Confidence: c.OverallConfidence, CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

type fakeNotifier struct{ ids []int64 }

func (f *fakeNotifier) Notify(_ context.Context, id int64) error {
	f.ids = append(f.ids, id)
	return nil
}

type cannedLLM struct{}

func (cannedLLM) Complete(context.Context, string, string) (string, error) {
	return "canned narrative", nil
}

var _ llm.Client = cannedLLM{}

func testServer(t *testing.T) (*Server, *fakeStore, *fakeNotifier) {
	t.Helper()
	store, err := knowledge.Load()
	if err != nil {
		t.Fatalf("load knowledge: %v", err)
	}
	engine, err := routing.NewEngine(store)
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	fs := newFakeStore()
	fn := &fakeNotifier{}
	consultant := core.NewConsultant(engine, cannedLLM{}, 5, 0.6)
	return NewServer(fs, consultant, fn, store), fs, fn
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	srv, _, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	decode(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["specialties"] != float64(9) {
		t.Errorf("specialties = %v, want 9", body["specialties"])
	}
}

func TestCreateSession(t *testing.T) {
	srv, fs, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var sess pkg.Session
	decode(t, rec, &sess)
	if sess.ID == "" {
		t.Fatal("session has no ID")
	}
	if _, ok := fs.sessions[sess.ID]; !ok {
		t.Error("session not persisted")
	}
}

func TestRouteEndpoint(t *testing.T) {
	srv, _, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/route",
		`{"query":"crushing chest pain radiating to my arm"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var res pkg.RoutingResult
	decode(t, rec, &res)
	if !res.Escalate || res.Urgency != "EMERGENCY" {
		t.Errorf("routing result = %+v, want emergency escalation", res)
	}

	if rec := doJSON(t, srv, http.MethodPost, "/api/route", "{not json"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad json status = %d, want 400", rec.Code)
	}
}

func TestConsultEndpoint(t *testing.T) {
	srv, fs, fn := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/consultations",
		`{"query":"fatigue and sugar cravings after meals"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var cons pkg.Consultation
	decode(t, rec, &cons)
	if cons.ID == 0 {
		t.Error("consultation has no ID")
	}
	if cons.SessionID == "" {
		t.Error("session was not auto-created")
	}
	if cons.Status != pkg.StatusComplete {
		t.Errorf("status = %s, want complete", cons.Status)
	}
	if cons.Routing.Specialty != "endocrinologist" {
		t.Errorf("specialty = %s", cons.Routing.Specialty)
	}
	if _, ok := fs.consultations[cons.ID]; !ok {
		t.Error("consultation not persisted")
	}
	if len(fn.ids) != 1 || fn.ids[0] != cons.ID {
		t.Errorf("notified ids = %v, want [%d]", fn.ids, cons.ID)
	}
}

func TestConsultEndpointValidation(t *testing.T) {
	srv, _, _ := testServer(t)

	if rec := doJSON(t, srv, http.MethodPost, "/api/consultations", `{"query":"   "}`); rec.Code != http.StatusBadRequest {
		t.Errorf("blank query status = %d, want 400", rec.Code)
	}
	if rec := doJSON(t, srv, http.MethodPost, "/api/consultations",
		fmt.Sprintf(`{"session_id":%q,"query":"headache"}`, uuid.NewString())); rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", rec.Code)
	}
}

func TestGetConsultation(t *testing.T) {
	srv, _, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/consultations",
		`{"query":"rash with itching skin"}`)
	var created pkg.Consultation
	decode(t, rec, &created)

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/consultations/%d", created.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got pkg.Consultation
	decode(t, rec, &got)
	if got.ID != created.ID || got.Query != created.Query {
		t.Errorf("roundtrip mismatch: %+v vs %+v", got, created)
	}

	if rec := doJSON(t, srv, http.MethodGet, "/api/consultations/999", ""); rec.Code != http.StatusNotFound {
		t.Errorf("missing id status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, srv, http.MethodGet, "/api/consultations/abc", ""); rec.Code != http.StatusNotFound {
		t.Errorf("non-numeric id status = %d, want 404", rec.Code)
	}
}

func TestListConsultations(t *testing.T) {
	srv, _, _ := testServer(t)
	for _, q := range []string{"headache and nausea", "joint stiffness", "bloating after meals"} {
		doJSON(t, srv, http.MethodPost, "/api/consultations", fmt.Sprintf(`{"query":%q}`, q))
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/consultations?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var previews []pkg.ConsultationPreview
	decode(t, rec, &previews)
	if len(previews) != 2 {
		t.Errorf("previews = %d, want 2", len(previews))
	}
}

func TestUnknownRoute(t *testing.T) {
	srv, _, _ := testServer(t)
	if rec := doJSON(t, srv, http.MethodGet, "/api/unknown", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, srv, http.MethodDelete, "/api/consultations", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
