package session

import (
	"errors"
	"strings"
	"time"

	"github.com/budallas/webclient/internal/game"
	"k8s.io/klog/v2"
)

// Phase is the top-level client lifecycle state. Spectating is not a
// phase: it is a flag on the current snapshot while in-game.
type Phase int

const (
	PhaseLoggedOut Phase = iota
	PhaseLobby
	PhaseInGame
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLoggedOut:
		return "logged-out"
	case PhaseLobby:
		return "lobby"
	case PhaseInGame:
		return "in-game"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// AutoReturnDelay is how long the game-over screen lingers before the
// client returns to the lobby on its own.
const AutoReturnDelay = 5 * time.Second

// ErrMissingLogin is the hint shown when the login form is incomplete.
var ErrMissingLogin = errors.New("enter both a name and a room id")

// Session holds all session-scoped client state: lifecycle phase, the
// viewer's name and room, the current authoritative snapshot, and the
// card selection. Everything here is discarded on leave; the snapshot
// is replaced wholesale on every game_update.
type Session struct {
	Phase  Phase
	Name   string
	Room   string
	UserID string

	Snapshot  *game.Snapshot
	Selection Selection

	LobbyPlayers    []string
	GameOverMessage string

	autoReturn *time.Timer
	afterFunc  func(d time.Duration, f func()) *time.Timer
}

// New creates a logged-out session carrying the durable identity.
func New(userID string) *Session {
	return &Session{
		UserID:    userID,
		afterFunc: time.AfterFunc,
	}
}

// Join validates the login form and moves to the lobby. The room id is
// case-normalized so "Room1" and "room1" land at the same table.
func (s *Session) Join(name, room string) error {
	name = strings.TrimSpace(name)
	room = strings.ToLower(strings.TrimSpace(room))
	if name == "" || room == "" {
		return ErrMissingLogin
	}
	s.Name = name
	s.Room = room
	s.Phase = PhaseLobby
	klog.Infof("Session: %q joining room %q", name, room)
	return nil
}

// JoinPayload builds the join_game request with the stored identity.
func (s *Session) JoinPayload() game.JoinGamePayload {
	return game.JoinGamePayload{Room: s.Room, Name: s.Name, UserID: s.UserID}
}

// ApplyLobby records the waiting-room roster.
func (s *Session) ApplyLobby(players []string) {
	s.LobbyPlayers = players
}

// Ready reports whether the room can start (two or more players).
func (s *Session) Ready() bool {
	return len(s.LobbyPlayers) >= 2
}

// ApplySnapshot installs a new authoritative snapshot, replacing the
// previous one wholesale, and reconciles the selection against it.
// The first snapshot seen while in the lobby or on the game-over
// screen moves the client into the game. Snapshots arriving after a
// leave are dropped.
func (s *Session) ApplySnapshot(snap *game.Snapshot) {
	if s.Phase == PhaseLoggedOut {
		klog.V(1).Infof("Session: dropping snapshot received while logged out")
		return
	}
	s.Snapshot = snap
	s.Selection.Reconcile(snap)
	if s.Phase == PhaseLobby || s.Phase == PhaseGameOver {
		s.cancelAutoReturn()
		s.GameOverMessage = ""
		s.Phase = PhaseInGame
		klog.Infof("Session: entering game in room %q", s.Room)
	}
}

// Spectating reports whether the current snapshot has the viewer in
// spectator mode.
func (s *Session) Spectating() bool {
	return s.Snapshot != nil && s.Snapshot.IsSpectator
}

// ClickHand toggles a hand card pick. Spectators have nothing to pick.
func (s *Session) ClickHand(c game.Card) {
	if s.Phase != PhaseInGame || s.Snapshot == nil || s.Snapshot.IsSpectator {
		return
	}
	var hand []game.Card
	if me := s.Snapshot.Me(); me != nil {
		hand = me.Hand
	}
	s.Selection.ToggleHand(c, hand)
}

// ClickTable toggles an unanswered attack pick. Only the active
// defender has a reason to pick table cards.
func (s *Session) ClickTable(c game.Card) {
	if s.Phase != PhaseInGame || s.Snapshot == nil {
		return
	}
	isDefender := s.Name != "" && s.Snapshot.DefenderName == s.Name
	s.Selection.ToggleTable(c, s.Snapshot.TableAttack, isDefender, s.Snapshot.IsSpectator)
}

// GameOver records the terminal message and arms the auto-return to
// the lobby. onReturn fires once after AutoReturnDelay unless the user
// navigates away first; callers route it back onto the event loop.
func (s *Session) GameOver(message string, onReturn func()) {
	if s.Phase == PhaseLoggedOut {
		return
	}
	s.Phase = PhaseGameOver
	s.GameOverMessage = message
	s.Selection.Clear()
	s.cancelAutoReturn()
	if onReturn != nil {
		s.autoReturn = s.afterFunc(AutoReturnDelay, onReturn)
	}
	klog.Infof("Session: game over: %s", message)
}

// ReturnToLobby leaves the finished round behind and goes back to the
// waiting room. No-op unless the game is over.
func (s *Session) ReturnToLobby() {
	if s.Phase != PhaseGameOver {
		return
	}
	s.cancelAutoReturn()
	s.Phase = PhaseLobby
	s.Snapshot = nil
	s.Selection.Clear()
	s.GameOverMessage = ""
}

// Leave tears down all session-scoped state and cancels the pending
// auto-return so it cannot fire into a dead session.
func (s *Session) Leave() {
	s.cancelAutoReturn()
	s.Phase = PhaseLoggedOut
	s.Name = ""
	s.Room = ""
	s.Snapshot = nil
	s.Selection.Clear()
	s.LobbyPlayers = nil
	s.GameOverMessage = ""
	klog.Infof("Session: left")
}

func (s *Session) cancelAutoReturn() {
	if s.autoReturn != nil {
		s.autoReturn.Stop()
		s.autoReturn = nil
	}
}
