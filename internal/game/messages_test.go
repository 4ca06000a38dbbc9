package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRoundTrip(t *testing.T) {
	msg, err := NewMessage(MsgTypeDefend, DefendPayload{
		AttackRank: "7",
		AttackSuit: Diamonds,
		DefendRank: "9",
		DefendSuit: Diamonds,
	})
	require.NoError(t, err)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(raw, &decoded))

	p, err := decoded.Parse()
	require.NoError(t, err)
	defend, ok := p.(*DefendPayload)
	require.True(t, ok)
	assert.Equal(t, "7", defend.AttackRank)
	assert.Equal(t, Diamonds, defend.DefendSuit)
}

func TestMessageEmptyPayload(t *testing.T) {
	msg, err := NewMessage(MsgTypeSkip, nil)
	require.NoError(t, err)
	assert.Empty(t, msg.Payload)

	p, err := msg.Parse()
	require.NoError(t, err)
	_, ok := p.(*SkipPayload)
	assert.True(t, ok)
}

func TestMessageUnknownType(t *testing.T) {
	msg := Message{Type: "shuffle"}
	_, err := msg.Parse()
	assert.Error(t, err)
}

func TestJoinGameWireFormat(t *testing.T) {
	msg, err := NewMessage(MsgTypeJoinGame, JoinGamePayload{
		Room:   "abc",
		Name:   "Alice",
		UserID: "51ff2dfa-7e03-4c12-8c9e-f2de2f0f7f2b",
	})
	require.NoError(t, err)

	// The identity travels as "userId", matching the server protocol.
	assert.Contains(t, string(msg.Payload), `"userId"`)
	assert.Contains(t, string(msg.Payload), `"room":"abc"`)
}

func TestSnapshotDecode(t *testing.T) {
	wire := `{
		"type": "game_update",
		"payload": {
			"players": [
				{"name": "Alice", "is_me": true, "card_count": 2,
				 "hand": [{"rank": "10", "suit": "♠", "display": "10♠"}, {"rank": "A", "suit": "♥", "display": "A♥"}]},
				{"name": "Bob", "is_me": false, "card_count": 5}
			],
			"trump_card": {"rank": "6", "suit": "♦", "display": "6♦"},
			"trump_suit": "♦",
			"deck_count": 12,
			"table_attack": [{"rank": "7", "suit": "♣"}],
			"table_defense": [],
			"active_attacker_name": "Alice",
			"defender_name": "Bob",
			"winners": [],
			"is_spectator": false
		}
	}`

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(wire), &msg))

	p, err := msg.Parse()
	require.NoError(t, err)
	snap, ok := p.(*Snapshot)
	require.True(t, ok)

	require.NotNil(t, snap.Me())
	assert.Equal(t, "Alice", snap.Me().Name)
	assert.Len(t, snap.Me().Hand, 2)
	assert.Nil(t, snap.Players[1].Hand, "opponent hands stay hidden")
	require.NotNil(t, snap.TrumpCard)
	assert.Equal(t, Diamonds, snap.TrumpSuit)
	assert.Equal(t, 12, snap.DeckCount)
	assert.True(t, snap.HasPlayer("Bob"))
	assert.False(t, snap.HasPlayer("Carol"))
}
