package game

import (
	"encoding/json"
	"fmt"
)

// MessageType names a WebSocket message between client and backend.
type MessageType string

const (
	// Client to server.
	MsgTypeJoinGame    MessageType = "join_game"    // Enter a room, carrying the durable identity
	MsgTypeStartGame   MessageType = "start_game"   // Start the round from the lobby
	MsgTypeRestartGame MessageType = "restart_game" // Restart the room after game over
	MsgTypeLeaveGame   MessageType = "leave_game"   // Leave the room entirely
	MsgTypeSkip        MessageType = "skip"         // Decline to add more attacks
	MsgTypeTake        MessageType = "take"         // Defender picks up the table
	MsgTypeAttack      MessageType = "attack"       // Play a card as a new attack
	MsgTypePass        MessageType = "pass"         // Deflect the attack to the next player
	MsgTypeDefend      MessageType = "defend"       // Beat an attack card with a hand card
	MsgTypeSendChat    MessageType = "send_chat"    // One chat line

	// Server to client.
	MsgTypeLobbyUpdate MessageType = "lobby_update" // Roster while waiting to start
	MsgTypeGameUpdate  MessageType = "game_update"  // Full snapshot replace
	MsgTypeGameOver    MessageType = "game_over"    // Terminal text for the finished round
	MsgTypeReceiveChat MessageType = "receive_chat" // Broadcast chat line
	MsgTypeError       MessageType = "error"        // Server-reported error, surfaced verbatim
)

// Message is the WebSocket envelope.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage creates a Message with a marshaled payload.
func NewMessage(msgType MessageType, payload any) (Message, error) {
	if payload == nil {
		return Message{Type: msgType}, nil
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return Message{
		Type:    msgType,
		Payload: payloadBytes,
	}, nil
}

// Parse unmarshals the payload into the concrete type for the message.
func (m *Message) Parse() (any, error) {
	var target any
	switch m.Type {
	case MsgTypeJoinGame:
		target = &JoinGamePayload{}
	case MsgTypeStartGame:
		target = &StartGamePayload{}
	case MsgTypeRestartGame:
		target = &RestartGamePayload{}
	case MsgTypeLeaveGame:
		target = &LeaveGamePayload{}
	case MsgTypeSkip:
		target = &SkipPayload{}
	case MsgTypeTake:
		target = &TakePayload{}
	case MsgTypeAttack, MsgTypePass:
		target = &CardPayload{}
	case MsgTypeDefend:
		target = &DefendPayload{}
	case MsgTypeSendChat:
		target = &ChatPayload{}
	case MsgTypeLobbyUpdate:
		target = &LobbyUpdatePayload{}
	case MsgTypeGameUpdate:
		target = &Snapshot{}
	case MsgTypeGameOver:
		target = &GameOverPayload{}
	case MsgTypeReceiveChat:
		target = &ChatEventPayload{}
	case MsgTypeError:
		target = &ErrorPayload{}
	default:
		return nil, fmt.Errorf("unknown message type: %s", m.Type)
	}

	if len(m.Payload) == 0 {
		return target, nil
	}

	err := json.Unmarshal(m.Payload, target)
	return target, err
}

// JoinGamePayload enters a room. UserID is the durable per-browser
// identity the server uses to hand a returning client its old seat.
type JoinGamePayload struct {
	Room   string `json:"room"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

// StartGamePayload: empty.
type StartGamePayload struct{}

// RestartGamePayload: empty.
type RestartGamePayload struct{}

// LeaveGamePayload: empty.
type LeaveGamePayload struct{}

// SkipPayload: empty.
type SkipPayload struct{}

// TakePayload: empty.
type TakePayload struct{}

// CardPayload names a single hand card, used by attack and pass.
type CardPayload struct {
	Rank string `json:"rank"`
	Suit Suit   `json:"suit"`
}

// DefendPayload pairs the table card being beaten with the hand card
// beating it.
type DefendPayload struct {
	AttackRank string `json:"attack_rank"`
	AttackSuit Suit   `json:"attack_suit"`
	DefendRank string `json:"defend_rank"`
	DefendSuit Suit   `json:"defend_suit"`
}

// ChatPayload is an outbound chat line.
type ChatPayload struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Room    string `json:"room"`
}

// LobbyUpdatePayload is the roster while waiting for the game to start.
type LobbyUpdatePayload struct {
	Players []string `json:"players"`
}

// GameOverPayload carries the terminal text for the finished round.
type GameOverPayload struct {
	Message string `json:"message"`
}

// ChatEventPayload is one broadcast chat line.
type ChatEventPayload struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ErrorPayload is a server-reported error message.
type ErrorPayload struct {
	Message string `json:"message"`
}
