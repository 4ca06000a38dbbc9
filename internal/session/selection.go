package session

import "github.com/budallas/webclient/internal/game"

// Selection is the ephemeral pick state: at most one hand card and one
// table card. It is never persisted and never sent as-is; the action
// dispatcher reads it at the moment of dispatch and then clears it.
type Selection struct {
	Hand  *game.Card
	Table *game.Card
}

// ToggleHand flips the selection of c. Clicking the already-selected
// card deselects it; any other card replaces the previous pick. A card
// not currently in hand is ignored.
func (s *Selection) ToggleHand(c game.Card, hand []game.Card) {
	if !game.ContainsCard(hand, c) {
		return
	}
	if s.Hand != nil && s.Hand.Same(c) {
		s.Hand = nil
		return
	}
	picked := c
	s.Hand = &picked
}

// ToggleTable flips the selection of an unanswered attack. Only the
// active defender picks table cards, and never while spectating.
func (s *Selection) ToggleTable(c game.Card, attacks []game.Card, isDefender, spectator bool) {
	if spectator || !isDefender {
		return
	}
	if !game.ContainsCard(attacks, c) {
		return
	}
	if s.Table != nil && s.Table.Same(c) {
		s.Table = nil
		return
	}
	picked := c
	s.Table = &picked
}

// Reconcile drops any pick the server has consumed: a hand pick must
// still be in the viewer's hand, a table pick must still be an
// unanswered attack. Called on every incoming snapshot so an action is
// never dispatched against a card that no longer exists.
func (s *Selection) Reconcile(snap *game.Snapshot) {
	if snap == nil {
		s.Clear()
		return
	}
	var hand []game.Card
	if me := snap.Me(); me != nil {
		hand = me.Hand
	}
	if s.Hand != nil && !game.ContainsCard(hand, *s.Hand) {
		s.Hand = nil
	}
	if s.Table != nil && !game.ContainsCard(snap.TableAttack, *s.Table) {
		s.Table = nil
	}
}

// Clear drops both picks.
func (s *Selection) Clear() {
	s.Hand = nil
	s.Table = nil
}
