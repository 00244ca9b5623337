package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/golazoapps/mundialito/internal/akinator"
)

// Session holds one player's live game. The mutex serializes the
// turn-by-turn mutation: the engine itself is not safe for concurrent
// callers.
type Session struct {
	mu   sync.Mutex
	game *akinator.Game
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *akinator.Game) akinator.Result) akinator.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.game)
}

// Registry maps session tokens to games. Games live in memory only;
// a restart forgets them, which matches the single-session lifetime of
// a round. Finished games are evicted so the map does not grow with
// every round ever played.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new game under a fresh token.
func (r *Registry) Create(game *akinator.Game) string {
	token := uuid.NewString()
	r.mu.Lock()
	r.sessions[token] = &Session{game: game}
	r.mu.Unlock()
	return token
}

// Get returns the session for a token.
func (r *Registry) Get(token string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}

// Delete drops a token, releasing its session.
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// Replace swaps the game under an existing token, for "play again" on
// the same session. Returns false when the token is unknown.
func (r *Registry) Replace(token string, game *akinator.Game) bool {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	s.mu.Lock()
	s.game = game
	s.mu.Unlock()
	return true
}
