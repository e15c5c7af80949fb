package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlockTimestamp_Scan(t *testing.T) {
	expected := time.Date(2024, 5, 1, 12, 30, 15, 0, time.UTC)

	tests := []struct {
		name  string
		value interface{}
	}{
		{"time", expected},
		{"int64", expected.Unix()},
		{"uint64", uint64(expected.Unix())},
		{"rfc3339", "2024-05-01T12:30:15Z"},
		{"sql datetime", "2024-05-01 12:30:15"},
		{"bytes", []byte("2024-05-01 12:30:15")},
		{"unix seconds text", "1714566615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts BlockTimestamp
			assert.NoError(t, ts.Scan(tt.value))
			assert.True(t, expected.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestBlockTimestamp_ScanNilAndGarbage(t *testing.T) {
	var ts BlockTimestamp
	assert.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.NoError(t, ts.Scan("yesterday"))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(struct{}{}))
}

func TestParseTimestamp_Fractional(t *testing.T) {
	parsed := ParseTimestamp("2024-05-01 12:30:15.250")
	assert.Equal(t, 250*time.Millisecond, time.Duration(parsed.Nanosecond()))
}
