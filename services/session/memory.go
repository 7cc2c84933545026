package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"scheduly/models"
	"scheduly/utils"
)

// MemoryStore keeps sessions in a process-local map. It is the fallback when
// neither Redis nor Mongo is configured; state is lost on restart.
type MemoryStore struct {
	ttl      time.Duration
	mu       sync.Mutex
	sessions map[string]*models.SessionRecord
}

// NewMemoryStore returns an in-memory store whose entries expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*models.SessionRecord),
	}
}

func (m *MemoryStore) Create(_ context.Context, sessionID string, state models.SessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.sessions[sessionID] = &models.SessionRecord{
		SessionID:    sessionID,
		State:        state,
		CreatedAt:    now,
		LastAccessed: now,
	}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*models.SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if rec.Expired(m.ttl) {
		delete(m.sessions, sessionID)
		return nil, ErrNotFound
	}
	rec.LastAccessed = time.Now()
	// Copy so callers can't mutate the stored record.
	out := *rec
	return &out, nil
}

func (m *MemoryStore) Update(_ context.Context, sessionID string, state models.SessionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.sessions[sessionID]
	if !ok || rec.Expired(m.ttl) {
		delete(m.sessions, sessionID)
		return ErrNotFound
	}
	rec.State = state
	rec.LastAccessed = time.Now()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStore) CleanupExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, rec := range m.sessions {
		if rec.Expired(m.ttl) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		utils.GetLogger().Info("Cleaned up expired sessions", zap.Int("count", removed))
	}
	return removed, nil
}

func (m *MemoryStore) Close(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]*models.SessionRecord)
	return nil
}
