package game

import "fmt"

// RoundStatus tracks a round from the storyteller's card through voting.
type RoundStatus string

const (
	RoundNew       RoundStatus = "new"
	RoundProviding RoundStatus = "providing"
	RoundVoting    RoundStatus = "voting"
	RoundComplete  RoundStatus = "complete"
)

func (s RoundStatus) Valid() bool {
	switch s {
	case RoundNew, RoundProviding, RoundVoting, RoundComplete:
		return true
	}
	return false
}

// Round is a typed view over one entry of Game.Rounds.
type Round struct {
	Number    int         `json:"number"`
	Status    RoundStatus `json:"status"`
	Turn      Opaque      `json:"turn"`
	NPlayers  int         `json:"n_players"`
	CreatedOn Timestamp   `json:"created_on"`
}

// DecodeRounds reads every round with the Round schema. Rounds stays opaque on
// the Game itself.
func (g Game) DecodeRounds() ([]Round, error) {
	rounds := make([]Round, 0, len(g.Rounds))
	for i, raw := range g.Rounds {
		r := Round{}
		if err := raw.Decode(&r); err != nil {
			return nil, fmt.Errorf("round %d: %w", i, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// CurrentRound returns the highest numbered round.
func (g Game) CurrentRound() (Round, bool) {
	rounds, err := g.DecodeRounds()
	if err != nil || len(rounds) == 0 {
		return Round{}, false
	}
	current := rounds[0]
	for _, r := range rounds[1:] {
		if r.Number > current.Number {
			current = r
		}
	}
	return current, true
}
