package feed

import (
	"context"
	"fmt"

	"dixit/internal/game"
	"dixit/internal/logger"
)

type Reader struct {
	Source Source
	Logger logger.Logger
	// Strict rejects payloads missing id, name or status.
	Strict bool
}

// Games decodes every payload from the source. Payloads that fail to decode
// are logged and skipped.
func (r *Reader) Games(ctx context.Context) ([]game.Game, error) {
	payloads, err := r.Source.Payloads(ctx)
	if err != nil {
		r.Logger.Error("Failed to read game payloads", err)
		return nil, fmt.Errorf("read payloads: %w", err)
	}
	decode := game.Decode
	if r.Strict {
		decode = game.DecodeStrict
	}
	games := make([]game.Game, 0, len(payloads))
	for i, payload := range payloads {
		g, err := decode(payload)
		if err != nil {
			r.Logger.Error(fmt.Sprintf("Skipping payload %d", i), err)
			continue
		}
		r.Logger.Debug(fmt.Sprintf("Decoded game %d (%s)", g.ID, g.Status))
		games = append(games, g)
	}
	r.Logger.Info(fmt.Sprintf("Decoded %d of %d game payloads", len(games), len(payloads)))
	return games, nil
}
