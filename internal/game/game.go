// Package game models game records delivered by the game server.
package game

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedPayload = errors.New("malformed game payload")

// Payload is a game record as the server serializes it.
type Payload struct {
	ID         *int64    `json:"id"`
	Name       *string   `json:"name"`
	Status     *Status   `json:"status"`
	NPlayers   Opaque    `json:"n_players"`
	CreatedOn  Timestamp `json:"created_on"`
	LastActive Timestamp `json:"last_active"`
	Rounds     []Opaque  `json:"rounds"`
	Scoreboard []Opaque  `json:"scoreboard"`
}

// Missing lists the identifying fields absent from the payload.
func (p Payload) Missing() []string {
	missing := []string{}
	if p.ID == nil {
		missing = append(missing, "id")
	}
	if p.Name == nil {
		missing = append(missing, "name")
	}
	if p.Status == nil {
		missing = append(missing, "status")
	}
	return missing
}

// ParsePayload reads a payload field by field. A field holding the wrong JSON
// type is left absent; only a document that is not a JSON object fails.
func ParsePayload(data []byte) (*Payload, error) {
	payload, _, err := parsePayload(data)
	return payload, err
}

// parsePayload also reports the fields dropped for having the wrong type.
func parsePayload(data []byte) (*Payload, []string, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, nil, err
	}
	payload := &Payload{}
	mismatched := []string{}
	check := func(name string, ok bool) {
		if !ok {
			mismatched = append(mismatched, name)
		}
	}
	check("id", decodeField(fields, "id", &payload.ID))
	check("name", decodeField(fields, "name", &payload.Name))
	check("status", decodeField(fields, "status", &payload.Status))
	check("n_players", decodeField(fields, "n_players", &payload.NPlayers))
	check("created_on", decodeField(fields, "created_on", &payload.CreatedOn))
	check("last_active", decodeField(fields, "last_active", &payload.LastActive))
	check("rounds", decodeField(fields, "rounds", &payload.Rounds))
	check("scoreboard", decodeField(fields, "scoreboard", &payload.Scoreboard))
	return payload, mismatched, nil
}

// decodeField sets dst from fields[name] and leaves it untouched when the key
// is missing or holds a value of another type.
func decodeField[T any](fields map[string]json.RawMessage, name string, dst *T) bool {
	raw, ok := fields[name]
	if !ok {
		return true
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	*dst = v
	return true
}

// Game is a snapshot of one game instance. Nothing mutates it after New.
type Game struct {
	ID         int64
	Name       string
	Status     Status
	NPlayers   Opaque
	CreatedOn  Timestamp
	LastActive Timestamp
	Rounds     []Opaque
	Scoreboard []Opaque
}

// New shapes a payload into a Game. Absent fields stay zero and unparsable
// dates become invalid timestamps; New never fails.
func New(p Payload) Game {
	g := Game{
		NPlayers:   bytes.Clone(p.NPlayers),
		CreatedOn:  p.CreatedOn,
		LastActive: p.LastActive,
		Rounds:     cloneOpaques(p.Rounds),
		Scoreboard: cloneOpaques(p.Scoreboard),
	}
	if p.ID != nil {
		g.ID = *p.ID
	}
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	return g
}

// Decode builds a Game from a JSON payload. Only a document that is not a JSON
// object is an error; missing or mistyped fields come out absent.
func Decode(data []byte) (Game, error) {
	payload, err := ParsePayload(data)
	if err != nil {
		return Game{}, err
	}
	return New(*payload), nil
}

// DecodeStrict is Decode plus checks that no field has the wrong type, that
// id, name and status are present and that status is a known value.
func DecodeStrict(data []byte) (Game, error) {
	payload, mismatched, err := parsePayload(data)
	if err != nil {
		return Game{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if len(mismatched) > 0 {
		return Game{}, fmt.Errorf("%w: wrong type for %s", ErrMalformedPayload, strings.Join(mismatched, ", "))
	}
	if missing := payload.Missing(); len(missing) > 0 {
		return Game{}, fmt.Errorf("%w: missing %s", ErrMalformedPayload, strings.Join(missing, ", "))
	}
	if _, err := ParseStatus(string(*payload.Status)); err != nil {
		return Game{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return New(*payload), nil
}

// IsPlayable reports whether the game has not started yet.
func (g Game) IsPlayable() bool {
	return g.Status == StatusNew
}

func (g Game) Equal(other Game) bool {
	return g.ID == other.ID &&
		g.Name == other.Name &&
		g.Status == other.Status &&
		g.NPlayers.Equal(other.NPlayers) &&
		g.CreatedOn.Equal(other.CreatedOn) &&
		g.LastActive.Equal(other.LastActive) &&
		equalOpaques(g.Rounds, other.Rounds) &&
		equalOpaques(g.Scoreboard, other.Scoreboard)
}

// MarshalJSON writes the game back in the server's field naming.
func (g Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         int64     `json:"id"`
		Name       string    `json:"name"`
		Status     Status    `json:"status"`
		NPlayers   Opaque    `json:"n_players"`
		CreatedOn  Timestamp `json:"created_on"`
		LastActive Timestamp `json:"last_active"`
		Rounds     []Opaque  `json:"rounds"`
		Scoreboard []Opaque  `json:"scoreboard"`
	}{g.ID, g.Name, g.Status, g.NPlayers, g.CreatedOn, g.LastActive, g.Rounds, g.Scoreboard})
}
