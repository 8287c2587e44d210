// Package session holds the explicit per-game session state: which
// player this client plays, and whose turn it currently is.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the client's view of the game session. The current
// player pointer cycles absent -> player -> absent -> next player,
// driven solely by the setCurrentPlayer and newTurn messages.
type Session struct {
	id         uuid.UUID
	myPlayerID string

	mu              sync.Mutex
	currentPlayerID string
}

// NewSession creates a session for the given local player.
func NewSession(myPlayerID string) *Session {
	return &Session{
		id:         uuid.New(),
		myPlayerID: myPlayerID,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// MyPlayerID returns the local player's object identifier.
func (s *Session) MyPlayerID() string {
	return s.myPlayerID
}

// CurrentPlayerID returns the currently acting player's identifier,
// or "" between turns.
func (s *Session) CurrentPlayerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPlayerID
}

// SetCurrentPlayer updates the current player pointer.
func (s *Session) SetCurrentPlayer(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPlayerID = playerID
}

// ClearCurrentPlayer resets the current player pointer, as happens at
// the start of every new turn.
func (s *Session) ClearCurrentPlayer() {
	s.SetCurrentPlayer("")
}

// CurrentPlayerIsMyPlayer reports whether the local player is the one
// currently acting.
func (s *Session) CurrentPlayerIsMyPlayer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPlayerID != "" && s.currentPlayerID == s.myPlayerID
}
