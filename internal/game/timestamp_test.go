package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampFromJSON(t *testing.T) {
	tests := []struct {
		description string
		raw         string
		valid       bool
		expected    time.Time
	}{
		{"Test RFC3339 in UTC", `"2024-01-01T00:00:00Z"`, true, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Test fractional seconds with offset", `"2024-02-01T10:30:00.123456+02:00"`, true, time.Date(2024, 2, 1, 8, 30, 0, 123456000, time.UTC)},
		{"Test date time without zone", `"2024-03-05T12:15:30"`, true, time.Date(2024, 3, 5, 12, 15, 30, 0, time.UTC)},
		{"Test date time without seconds", `"2024-03-05T12:15"`, true, time.Date(2024, 3, 5, 12, 15, 0, 0, time.UTC)},
		{"Test date only", `"2024-03-05"`, true, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"Test epoch milliseconds", `1704067200000`, true, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Test latest representable instant", `8.64e15`, true, time.UnixMilli(8640000000000000)},
		{"Test earliest representable instant", `-8.64e15`, true, time.UnixMilli(-8640000000000000)},
		{"Test milliseconds past the latest instant", `8.640000000000001e15`, false, time.Time{}},
		{"Test milliseconds far past the range", `1e20`, false, time.Time{}},
		{"Test milliseconds far before the range", `-1e300`, false, time.Time{}},
		{"Test milliseconds overflowing float64", `1e400`, false, time.Time{}},
		{"Test garbage string", `"bad-date"`, false, time.Time{}},
		{"Test empty string", `""`, false, time.Time{}},
		{"Test null", `null`, false, time.Time{}},
		{"Test boolean", `true`, false, time.Time{}},
		{"Test object", `{"y": 2024}`, false, time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			ts := timestampFromJSON(json.RawMessage(tc.raw))
			assert.Equal(t, tc.valid, ts.Valid)
			if tc.valid {
				assert.True(t, tc.expected.Equal(ts.Time), "expected %s, got %s", tc.expected, ts.Time)
			}
		})
	}
}

func TestTimestampEqual(t *testing.T) {
	a := ParseTimestamp("2024-01-01T02:00:00+02:00")
	b := ParseTimestamp("2024-01-01T00:00:00Z")
	assert.True(t, a.Equal(b))
	assert.True(t, Timestamp{}.Equal(ParseTimestamp("bad-date")))
	assert.False(t, a.Equal(Timestamp{}))
}

func TestTimestampRendering(t *testing.T) {
	ts := ParseTimestamp("2024-01-01T00:00:00Z")
	assert.Equal(t, "2024-01-01T00:00:00Z", ts.String())

	data, err := json.Marshal(ts)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-01-01T00:00:00Z"`, string(data))

	data, err = json.Marshal(Timestamp{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
