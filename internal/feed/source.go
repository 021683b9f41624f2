//go:generate mockery --with-expecter=true --name=Source --output=./mocks
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
)

// Source hands over game payloads that were already fetched elsewhere.
type Source interface {
	Payloads(ctx context.Context) ([]json.RawMessage, error)
}

// FileSource reads a JSON document holding either one payload object or an
// array of them.
type FileSource struct {
	Path string
}

func (f FileSource) Payloads(ctx context.Context) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	return SplitPayloads(data)
}

// SplitPayloads returns the elements of a JSON array, or the document itself
// when it is a single object.
func SplitPayloads(data []byte) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty payload document")
	}
	if data[0] != '[' {
		return []json.RawMessage{json.RawMessage(data)}, nil
	}
	payloads := []json.RawMessage{}
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}
