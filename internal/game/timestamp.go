package game

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

const invalidDate = "Invalid Date"

// maxEpochMillis bounds the instants a date can hold, 100 million days either
// side of the Unix epoch.
const maxEpochMillis = 8.64e15

// Layouts accepted for serialized dates, tried in order. Forms without a zone
// are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp is a parsed date. Valid is false when the source was absent or
// could not be parsed.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

func ParseTimestamp(raw string) Timestamp {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return Timestamp{Time: t, Valid: true}
		}
	}
	return Timestamp{}
}

// timestampFromJSON accepts a JSON string in one of the date layouts or a
// number of milliseconds since the Unix epoch.
func timestampFromJSON(data json.RawMessage) Timestamp {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Timestamp{}
	}
	switch data[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return Timestamp{}
		}
		return ParseTimestamp(raw)
	case 'n':
		return Timestamp{}
	}
	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return Timestamp{}
	}
	return Timestamp{Time: time.UnixMilli(int64(ms)).UTC(), Valid: true}
}

func (ts Timestamp) Equal(other Timestamp) bool {
	if ts.Valid != other.Valid {
		return false
	}
	return !ts.Valid || ts.Time.Equal(other.Time)
}

func (ts Timestamp) String() string {
	if !ts.Valid {
		return invalidDate
	}
	return ts.Time.Format(time.RFC3339Nano)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = timestampFromJSON(data)
	return nil
}
