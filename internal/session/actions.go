package session

import (
	"errors"
	"fmt"

	"github.com/budallas/webclient/internal/game"
)

// ActionKind enumerates the five in-game protocol actions.
type ActionKind string

const (
	ActionSkip   ActionKind = "skip"
	ActionTake   ActionKind = "take"
	ActionAttack ActionKind = "attack"
	ActionPass   ActionKind = "pass"
	ActionDefend ActionKind = "defend"
)

// Sender carries one outbound protocol message. The websocket client
// implements it; tests use a recording fake.
type Sender interface {
	Send(msgType game.MessageType, payload any) error
}

// Hint errors tell the user what is still missing before the action
// can go out. Nothing is put on the wire when one is returned.
var (
	ErrSpectator = errors.New("spectators can only watch")
	ErrNeedHand  = errors.New("select a card from your hand first")
	ErrNeedTable = errors.New("select the attack card on the table")
)

// Dispatch validates kind against the current selection, emits exactly
// one message through out, and clears the selection. The server stays
// the sole judge of game legality; only obviously incomplete requests
// are stopped here, and those leave the selection untouched.
func (s *Session) Dispatch(kind ActionKind, out Sender) error {
	if s.Spectating() {
		return ErrSpectator
	}

	var (
		msgType game.MessageType
		payload any
	)
	switch kind {
	case ActionSkip:
		msgType = game.MsgTypeSkip
	case ActionTake:
		msgType = game.MsgTypeTake
	case ActionAttack, ActionPass:
		if s.Selection.Hand == nil {
			return ErrNeedHand
		}
		msgType = game.MessageType(kind)
		payload = game.CardPayload{Rank: s.Selection.Hand.Rank, Suit: s.Selection.Hand.Suit}
	case ActionDefend:
		if s.Selection.Hand == nil {
			return ErrNeedHand
		}
		if s.Selection.Table == nil {
			return ErrNeedTable
		}
		msgType = game.MsgTypeDefend
		payload = game.DefendPayload{
			AttackRank: s.Selection.Table.Rank,
			AttackSuit: s.Selection.Table.Suit,
			DefendRank: s.Selection.Hand.Rank,
			DefendSuit: s.Selection.Hand.Suit,
		}
	default:
		return fmt.Errorf("unknown action %q", kind)
	}

	if err := out.Send(msgType, payload); err != nil {
		return fmt.Errorf("failed to send %s: %w", msgType, err)
	}
	// Fire and forget: the next snapshot is the only confirmation.
	s.Selection.Clear()
	return nil
}
