package repositories

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"sanchar/internal/models/domain_models"
)

// SessionStore keeps the per-session plan + search context. Records are read
// and fully rewritten per turn; last writer wins.
type SessionStore interface {
	Create(originLat, originLon float64) *domain_models.SessionRecord
	Get(sessionID string) (*domain_models.SessionRecord, bool)
	Save(record *domain_models.SessionRecord)
	Delete(sessionID string)
}

type inMemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]domain_models.SessionRecord
}

func NewInMemorySessionStore() SessionStore {
	return &inMemorySessionStore{
		data: make(map[string]domain_models.SessionRecord),
	}
}

func (s *inMemorySessionStore) Create(originLat, originLon float64) *domain_models.SessionRecord {
	record := domain_models.SessionRecord{
		SessionID: uuid.New().String(),
		Search: domain_models.SearchContext{
			OriginLat: originLat,
			OriginLon: originLon,
			SearchLat: originLat,
			SearchLon: originLon,
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.SessionID] = record

	return &record
}

func (s *inMemorySessionStore) Get(sessionID string) (*domain_models.SessionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[sessionID]
	if !ok {
		return nil, false
	}
	// Shallow copy: scalar fields are the caller's own until Save; the Plan
	// pointer stays shared with the stored record.
	return &record, true
}

func (s *inMemorySessionStore) Save(record *domain_models.SessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.SessionID] = *record
}

func (s *inMemorySessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

// SharedPlanStore keeps plans published under an opaque short share code.
type SharedPlanStore interface {
	Save(title, mood string, plan *domain_models.Plan) string
	Get(shareCode string) (*domain_models.SharedPlan, bool)
}

type inMemorySharedPlanStore struct {
	mu   sync.RWMutex
	data map[string]domain_models.SharedPlan
}

func NewInMemorySharedPlanStore() SharedPlanStore {
	return &inMemorySharedPlanStore{
		data: make(map[string]domain_models.SharedPlan),
	}
}

const shareCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newShareCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = shareCodeAlphabet[rand.Intn(len(shareCodeAlphabet))]
	}
	return string(b)
}

func (s *inMemorySharedPlanStore) Save(title, mood string, plan *domain_models.Plan) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := newShareCode()
	for _, taken := s.data[code]; taken; _, taken = s.data[code] {
		code = newShareCode()
	}

	s.data[code] = domain_models.SharedPlan{
		ID:        uuid.New().String(),
		ShareCode: code,
		Title:     title,
		Mood:      mood,
		Plan:      *plan,
	}

	return code
}

func (s *inMemorySharedPlanStore) Get(shareCode string) (*domain_models.SharedPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shared, ok := s.data[shareCode]
	if !ok {
		return nil, false
	}
	return &shared, true
}
