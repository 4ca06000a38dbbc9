package game

// Player is one seat as seen in a snapshot. Hand is populated only for
// the viewing player, or for every player when the viewer spectates.
type Player struct {
	Name      string `json:"name"`
	IsMe      bool   `json:"is_me"`
	CardCount int    `json:"card_count"`
	Hand      []Card `json:"hand,omitempty"`
}

// Snapshot is the full authoritative game state pushed by the server.
// Every game_update replaces the previous snapshot wholesale; no field
// ever carries over from an older one.
type Snapshot struct {
	Players            []Player `json:"players"`
	TrumpCard          *Card    `json:"trump_card,omitempty"`
	TrumpSuit          Suit     `json:"trump_suit"`
	DeckCount          int      `json:"deck_count"`
	TableAttack        []Card   `json:"table_attack"`
	TableDefense       []Card   `json:"table_defense"`
	ActiveAttackerName string   `json:"active_attacker_name,omitempty"`
	DefenderName       string   `json:"defender_name,omitempty"`
	Winners            []string `json:"winners,omitempty"`
	IsSpectator        bool     `json:"is_spectator"`
}

// Me returns the viewing player, or nil when the snapshot has none
// (snapshots are external input, so a missing seat must not panic).
func (s *Snapshot) Me() *Player {
	for i := range s.Players {
		if s.Players[i].IsMe {
			return &s.Players[i]
		}
	}
	return nil
}

// HasPlayer reports whether a seat with the given name exists.
func (s *Snapshot) HasPlayer(name string) bool {
	for i := range s.Players {
		if s.Players[i].Name == name {
			return true
		}
	}
	return false
}

// IsWinner reports whether name already finished the round.
func (s *Snapshot) IsWinner(name string) bool {
	for _, w := range s.Winners {
		if w == name {
			return true
		}
	}
	return false
}
