package session

import (
	"fmt"

	"github.com/budallas/webclient/internal/game"
)

// View is the render-model handed to the component layer. It carries
// derived display data only; no game logic lives past this point.
type View struct {
	TrumpCard *game.Card // revealed trump card, nil once taken
	TrumpSuit game.Suit  // shown bare when the card is gone
	DeckCount int
	Attacker  string // "-" when unknown
	Defender  string // "-" when unknown
	Status    string

	Spectating bool
	Opponents  []OpponentView
	Table      TableView
	Hand       []HandCardView
	HandNote   string // spectator explanation, empty otherwise
}

// OpponentView is one non-viewer seat.
type OpponentView struct {
	Name      string
	CardCount int
	Active    bool // currently attacking or defending
	Winner    bool
	Hand      []game.Card // revealed only to spectators
}

// TableView is the shared play area: completed attack/defense pairs
// followed by the unanswered attacks.
type TableView struct {
	Pairs   []DefendedPair
	Attacks []TableCardView
}

// DefendedPair is one beaten attack.
type DefendedPair struct {
	Attack  game.Card
	Defense game.Card
}

// TableCardView is one unanswered attack on the table.
type TableCardView struct {
	Card      game.Card
	Selected  bool
	Clickable bool // only the active defender picks attacks
}

// HandCardView is one card in the viewer's hand.
type HandCardView struct {
	Card     game.Card
	Selected bool
}

// Project computes the render-model for one viewer. It is pure:
// identical inputs always produce an identical View, with no hidden
// dependency on a previous call. A name the snapshot references but
// does not seat still renders as a plain label, never as an error.
func Project(snap *game.Snapshot, myName string, sel Selection) View {
	v := View{Attacker: "-", Defender: "-"}
	if snap == nil {
		return v
	}

	v.TrumpCard = snap.TrumpCard
	v.TrumpSuit = snap.TrumpSuit
	v.DeckCount = snap.DeckCount
	v.Spectating = snap.IsSpectator
	if snap.ActiveAttackerName != "" {
		v.Attacker = snap.ActiveAttackerName
	}
	if snap.DefenderName != "" {
		v.Defender = snap.DefenderName
	}

	switch {
	case snap.IsSpectator:
		v.Status = "You finished! Now spectating"
	case snap.ActiveAttackerName == myName:
		v.Status = "Your turn to attack"
	case snap.DefenderName == myName:
		v.Status = "Defend yourself!"
	default:
		v.Status = fmt.Sprintf("%s is attacking...", v.Attacker)
	}

	for _, p := range snap.Players {
		if p.IsMe {
			continue
		}
		o := OpponentView{
			Name:      p.Name,
			CardCount: p.CardCount,
			Active:    p.Name == snap.ActiveAttackerName || p.Name == snap.DefenderName,
			Winner:    snap.IsWinner(p.Name),
		}
		if snap.IsSpectator {
			o.Hand = p.Hand
		}
		v.Opponents = append(v.Opponents, o)
	}

	// table_defense comes flattened two at a time. A trailing unmatched
	// entry is dropped, not shown as an attack: the server only
	// produces one transiently.
	def := snap.TableDefense
	for i := 0; i+1 < len(def); i += 2 {
		v.Table.Pairs = append(v.Table.Pairs, DefendedPair{Attack: def[i], Defense: def[i+1]})
	}

	defending := !snap.IsSpectator && myName != "" && snap.DefenderName == myName
	for _, c := range snap.TableAttack {
		v.Table.Attacks = append(v.Table.Attacks, TableCardView{
			Card:      c,
			Selected:  sel.Table != nil && sel.Table.Same(c),
			Clickable: defending,
		})
	}

	if snap.IsSpectator {
		v.HandNote = "You are spectating: hands are shown above."
	} else if me := snap.Me(); me != nil {
		for _, c := range me.Hand {
			v.Hand = append(v.Hand, HandCardView{
				Card:     c,
				Selected: sel.Hand != nil && sel.Hand.Same(c),
			})
		}
	}

	return v
}
