package detect

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/newsguard/internal/types"
)

// Session pairs a completed assessment with the item it was run on. The item
// is retained so corroboration can be re-run later without resubmission.
type Session struct {
	Item       *types.NewsItem        `json:"item"`
	Assessment *types.FinalAssessment `json:"assessment"`
}

// Sessions is an in-memory cache of completed assessments, keyed by assessment
// id, so corroboration can be re-run later without repeating the generation
// call. Construct one per server; never shared globally.
type Sessions struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Session
}

// NewSessions creates an empty session cache.
func NewSessions() *Sessions {
	return &Sessions{byID: make(map[uuid.UUID]*Session)}
}

// Put stores a session under its assessment id, replacing any previous entry.
func (s *Sessions) Put(item *types.NewsItem, assessment *types.FinalAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[assessment.ID] = &Session{Item: item, Assessment: assessment}
}

// Get returns the cached session for the id, if present.
func (s *Sessions) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.byID[id]
	return session, ok
}

// Delete removes the cached session for the id.
func (s *Sessions) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// Len returns the number of cached sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
