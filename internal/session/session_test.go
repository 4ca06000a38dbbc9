package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budallas/webclient/internal/game"
)

func TestJoinNormalizesRoom(t *testing.T) {
	s := New("user-1")

	require.NoError(t, s.Join("  Alice ", " KITCHEN-Table "))

	assert.Equal(t, "Alice", s.Name)
	assert.Equal(t, "kitchen-table", s.Room)
	assert.Equal(t, PhaseLobby, s.Phase)

	payload := s.JoinPayload()
	assert.Equal(t, game.JoinGamePayload{Room: "kitchen-table", Name: "Alice", UserID: "user-1"}, payload)
}

func TestJoinRejectsIncompleteForm(t *testing.T) {
	s := New("user-1")

	assert.ErrorIs(t, s.Join("", "abc"), ErrMissingLogin)
	assert.ErrorIs(t, s.Join("Alice", "  "), ErrMissingLogin)
	assert.Equal(t, PhaseLoggedOut, s.Phase)
}

func TestLobbyReady(t *testing.T) {
	s := New("user-1")
	require.NoError(t, s.Join("Alice", "abc"))

	s.ApplyLobby([]string{"Alice"})
	assert.False(t, s.Ready())

	s.ApplyLobby([]string{"Alice", "Bob"})
	assert.True(t, s.Ready())
}

func TestFirstSnapshotEntersGame(t *testing.T) {
	s := New("user-1")
	require.NoError(t, s.Join("Alice", "abc"))

	s.ApplySnapshot(&game.Snapshot{Players: []game.Player{{Name: "Alice", IsMe: true}}})

	assert.Equal(t, PhaseInGame, s.Phase)
	require.NotNil(t, s.Snapshot)
}

func TestSnapshotReplacesWholesale(t *testing.T) {
	s := gameSession(t)

	// The replacement carries no trump card and no attacker; nothing
	// may leak through from the previous snapshot.
	s.ApplySnapshot(&game.Snapshot{Players: []game.Player{{Name: "Alice", IsMe: true}}})

	assert.Nil(t, s.Snapshot.TrumpCard)
	assert.Empty(t, s.Snapshot.ActiveAttackerName)
	assert.Empty(t, s.Snapshot.TableAttack)
}

func TestSnapshotDroppedWhenLoggedOut(t *testing.T) {
	s := New("user-1")

	s.ApplySnapshot(&game.Snapshot{Players: []game.Player{{Name: "Alice", IsMe: true}}})

	assert.Equal(t, PhaseLoggedOut, s.Phase)
	assert.Nil(t, s.Snapshot)
}

func TestGameOverAutoReturn(t *testing.T) {
	s := gameSession(t)

	fired := make(chan struct{}, 1)
	var armedDelay time.Duration
	s.afterFunc = func(d time.Duration, f func()) *time.Timer {
		armedDelay = d
		// Fire immediately so the test does not sleep.
		fired <- struct{}{}
		f()
		return time.NewTimer(time.Hour)
	}

	s.GameOver("Bob is the fool!", func() {
		s.ReturnToLobby()
	})

	<-fired
	assert.Equal(t, AutoReturnDelay, armedDelay)
	assert.Equal(t, PhaseLobby, s.Phase)
	assert.Nil(t, s.Snapshot)
	assert.Empty(t, s.GameOverMessage)
}

func TestGameOverClearsSelection(t *testing.T) {
	s := gameSession(t)
	s.ClickHand(game.NewCard("10", game.Spades))
	require.NotNil(t, s.Selection.Hand)

	s.GameOver("done", nil)

	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, "done", s.GameOverMessage)
	assert.Nil(t, s.Selection.Hand)
}

func TestLeaveCancelsAutoReturn(t *testing.T) {
	s := gameSession(t)

	var armed *time.Timer
	s.afterFunc = func(d time.Duration, f func()) *time.Timer {
		armed = time.AfterFunc(d, f)
		return armed
	}

	s.GameOver("done", func() { s.ReturnToLobby() })
	require.NotNil(t, armed)

	s.Leave()

	assert.False(t, armed.Stop(), "the timer must already be stopped")
	assert.Equal(t, PhaseLoggedOut, s.Phase)
	assert.Nil(t, s.Snapshot)
	assert.Empty(t, s.Name)
	assert.Empty(t, s.Room)
	assert.Empty(t, s.LobbyPlayers)
	assert.Nil(t, s.Selection.Hand)
}

func TestRestartSnapshotLeavesGameOver(t *testing.T) {
	s := gameSession(t)
	s.GameOver("done", func() { s.ReturnToLobby() })
	require.Equal(t, PhaseGameOver, s.Phase)

	// restart_game itself changes nothing; the next snapshot does.
	s.ApplySnapshot(&game.Snapshot{Players: []game.Player{{Name: "Alice", IsMe: true}}})

	assert.Equal(t, PhaseInGame, s.Phase)
	assert.Empty(t, s.GameOverMessage)
}

func TestManualReturnToLobby(t *testing.T) {
	s := gameSession(t)
	s.GameOver("done", func() { s.ReturnToLobby() })

	s.ReturnToLobby()

	assert.Equal(t, PhaseLobby, s.Phase)

	// A second call is a no-op outside game over.
	s.ReturnToLobby()
	assert.Equal(t, PhaseLobby, s.Phase)
}

func TestSpectatorFlagIsNotAPhase(t *testing.T) {
	s := gameSession(t)

	s.Snapshot.IsSpectator = true
	assert.Equal(t, PhaseInGame, s.Phase)
	assert.True(t, s.Spectating())

	s.ClickHand(game.NewCard("10", game.Spades))
	assert.Nil(t, s.Selection.Hand, "spectators cannot pick cards")
}
