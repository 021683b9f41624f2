package game

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errAbsent = errors.New("opaque value is absent")

// Opaque holds a server-defined JSON value verbatim. The zero value means the
// field was absent from the payload; an explicit JSON null is present.
type Opaque []byte

func (o Opaque) IsAbsent() bool {
	return len(o) == 0
}

// Decode unmarshals the held value into v for callers that know its schema.
func (o Opaque) Decode(v any) error {
	if o.IsAbsent() {
		return errAbsent
	}
	return json.Unmarshal(o, v)
}

func (o Opaque) Equal(other Opaque) bool {
	return bytes.Equal(o, other)
}

func (o Opaque) String() string {
	if o.IsAbsent() {
		return "undefined"
	}
	return string(o)
}

func (o Opaque) MarshalJSON() ([]byte, error) {
	if o.IsAbsent() {
		return []byte("null"), nil
	}
	return o, nil
}

func (o *Opaque) UnmarshalJSON(data []byte) error {
	*o = append((*o)[0:0], data...)
	return nil
}

func cloneOpaques(in []Opaque) []Opaque {
	if in == nil {
		return nil
	}
	out := make([]Opaque, len(in))
	for i, v := range in {
		out[i] = bytes.Clone(v)
	}
	return out
}

func equalOpaques(a, b []Opaque) bool {
	if len(a) != len(b) || (a == nil) != (b == nil) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
