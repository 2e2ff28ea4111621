package wizard

import "sync"

// Sessions keeps at most one open wizard per user, in memory only. A draft
// lives exactly as long as its session: closing the wizard without
// submitting discards it, and a process restart loses open drafts. There is
// no autosave.
type Sessions struct {
	mu sync.RWMutex
	m  map[string]*Wizard
}

func NewSessions() *Sessions {
	return &Sessions{m: make(map[string]*Wizard)}
}

// Get returns the user's open wizard, or nil.
func (s *Sessions) Get(userID string) *Wizard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[userID]
}

// Put replaces the user's session with w, dropping any previous draft.
func (s *Sessions) Put(userID string, w *Wizard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = w
}

// Delete discards the user's session.
func (s *Sessions) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}
