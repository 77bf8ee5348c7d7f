package session_cache

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/models"
)

const (
	// TTL after which an untouched session is swept.
	TTL = 24 * time.Hour

	// MaxSessions caps memory use; the least recently used sessions
	// are evicted past this point.
	MaxSessions = 100

	// activeWindow is the recency cutoff used by Stats.
	activeWindow = time.Hour
)

// Session holds one user's working dataset. All three payload slices
// are nil until an upload succeeds.
type Session struct {
	ID         string
	CreatedAt  time.Time
	LastAccess time.Time

	Rows      []models.SaleRow
	Sales     []models.SaleRow
	Customers []models.CustomerCycleMetric
	Premium   []models.IAFSale
	Stats     *models.ImportStats
	Warnings  []string
}

// HasData reports whether an upload has been loaded into the session.
func (s *Session) HasData() bool { return s != nil && s.Sales != nil }

// Store is an in-memory session cache. A single mutex guards the map
// because the expiration sweep runs inside read paths too.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// StatsSnapshot is the monitoring view of the store.
type StatsSnapshot struct {
	TotalSessions    int `json:"total_sessions"`
	ActiveSessions   int `json:"active_sessions"`
	SessionsWithData int `json:"sessions_with_data"`
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// GetOrCreate returns the session for id, or a fresh one when the id
// is empty, unknown or expired. Expired and over-capacity sessions
// are swept on every call.
func (st *Store) GetOrCreate(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.sweepLocked()

	if id != "" {
		if s, ok := st.sessions[id]; ok {
			s.LastAccess = time.Now()
			return s
		}
	}

	now := time.Now()
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastAccess: now,
	}
	st.sessions[s.ID] = s
	return s
}

// Get returns the session for id, or nil when untracked.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil
	}
	s.LastAccess = time.Now()
	return s
}

// SetData replaces the session's dataset after a successful upload.
// Returns false when the session is untracked.
func (st *Store) SetData(id string, result *models.ImportResult, customers []models.CustomerCycleMetric, premium []models.IAFSale) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return false
	}
	s.Rows = result.Rows
	s.Sales = result.Sales
	s.Customers = customers
	s.Premium = premium
	stats := result.Stats
	s.Stats = &stats
	s.Warnings = result.Warnings
	s.LastAccess = time.Now()
	return true
}

// Clear drops the session's dataset but keeps the session alive.
func (st *Store) Clear(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return false
	}
	s.Rows = nil
	s.Sales = nil
	s.Customers = nil
	s.Premium = nil
	s.Stats = nil
	s.Warnings = nil
	s.LastAccess = time.Now()
	return true
}

// Delete removes the session entirely.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// ── Expiration and stats ─────────────────────────────────────────────────────

// sweepLocked removes expired sessions, then evicts the least
// recently used ones past MaxSessions. Caller holds the lock.
func (st *Store) sweepLocked() {
	cutoff := time.Now().Add(-TTL)
	for id, s := range st.sessions {
		if s.LastAccess.Before(cutoff) {
			delete(st.sessions, id)
		}
	}

	if len(st.sessions) <= MaxSessions {
		return
	}
	all := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].LastAccess.Before(all[j].LastAccess) })
	for _, s := range all[:len(all)-MaxSessions] {
		delete(st.sessions, s.ID)
	}
}

// Stats reports counts for the monitoring endpoint.
func (st *Store) Stats() StatsSnapshot {
	st.mu.Lock()
	defer st.mu.Unlock()

	snap := StatsSnapshot{TotalSessions: len(st.sessions)}
	recent := time.Now().Add(-activeWindow)
	for _, s := range st.sessions {
		if s.LastAccess.After(recent) {
			snap.ActiveSessions++
		}
		if s.HasData() {
			snap.SessionsWithData++
		}
	}
	return snap
}
