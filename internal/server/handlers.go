package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/newsguard/internal/db"
	"github.com/jonathan/newsguard/internal/types"
)

// detectRequest is the body for POST /detect
type detectRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	URL      string `json:"url,omitempty"`
	Domain   string `json:"domain,omitempty"`
	NoSearch bool   `json:"no_search,omitempty"`
}

// corroborateRequest is the body for POST /corroborate
type corroborateRequest struct {
	AssessmentID string `json:"assessment_id"`
}

// handleDetect runs a full assessment for a submitted news item
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request body: " + err.Error()})
		return
	}

	item := &types.NewsItem{
		Title:   req.Title,
		Content: req.Content,
		URL:     req.URL,
		Domain:  req.Domain,
	}

	detector := s.detector
	if req.NoSearch || detector == nil {
		detector = s.plain
	}

	assessment, err := detector.Detect(r.Context(), item)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.sessions.Put(item, assessment)
	s.persist(r.Context(), assessment)
	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleCorroborate re-runs corroboration for a cached assessment without a
// second generation call
func (s *Server) handleCorroborate(w http.ResponseWriter, r *http.Request) {
	var req corroborateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid request body: " + err.Error()})
		return
	}

	id, err := uuid.Parse(req.AssessmentID)
	if err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid assessment_id"})
		return
	}

	if s.detector == nil {
		s.errorResponse(w, &ErrCorroborationDisabled{})
		return
	}

	session, ok := s.sessions.Get(id)
	if !ok {
		s.errorResponse(w, &ErrSessionNotFound{ID: id})
		return
	}

	assessment, err := s.detector.CorroborateOnly(r.Context(),
		session.Item, session.Assessment.Parsed, session.Assessment.RawResponse)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.sessions.Put(session.Item, assessment)
	s.persist(r.Context(), assessment)
	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleListAssessments lists stored assessments with optional filters
func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, &ErrPersistenceDisabled{})
		return
	}

	filters := db.AssessmentFilters{
		Domain:    r.URL.Query().Get("domain"),
		RiskLevel: r.URL.Query().Get("risk_level"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.errorResponse(w, &ErrBadRequest{Message: "invalid limit"})
			return
		}
		filters.Limit = limit
	}

	summaries, err := s.db.ListAssessments(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if summaries == nil {
		summaries = []db.AssessmentSummary{}
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetAssessment returns one stored assessment by id
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, &ErrPersistenceDisabled{})
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrBadRequest{Message: "invalid assessment id"})
		return
	}

	assessment, err := s.db.GetAssessment(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if assessment == nil {
		s.errorResponse(w, &ErrAssessmentNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleRules returns the active rule checklist
func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.ruleSet)
}

// persist stores the assessment when a database is configured. Persistence
// failures are logged, never surfaced: the assessment itself already succeeded.
func (s *Server) persist(ctx context.Context, assessment *types.FinalAssessment) {
	if s.db == nil {
		return
	}
	if err := s.db.SaveAssessment(ctx, assessment); err != nil {
		log.Printf("Error saving assessment %s: %v", assessment.ID, err)
	}
}
