package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// BlockTimestamp scans block timestamps stored as DATETIME, ISO text or unix seconds.
type BlockTimestamp struct {
	time.Time
}

// Implement sql.Scanner interface
func (fs *BlockTimestamp) Scan(value interface{}) error {
	if value == nil {
		*fs = BlockTimestamp{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*fs = BlockTimestamp{v.UTC()}
	case int64:
		*fs = BlockTimestamp{time.Unix(v, 0).UTC()}
	case uint64:
		*fs = BlockTimestamp{time.Unix(int64(v), 0).UTC()}
	case uint32:
		*fs = BlockTimestamp{time.Unix(int64(v), 0).UTC()}
	case float64:
		*fs = BlockTimestamp{time.Unix(int64(v), 0).UTC()}
	case string:
		*fs = BlockTimestamp{ParseTimestamp(v)}
	case []byte:
		*fs = BlockTimestamp{ParseTimestamp(string(v))}
	default:
		return fmt.Errorf("unsupported type %T for BlockTimestamp", value)
	}
	return nil
}

// ParseTimestamp accepts RFC3339, "YYYY-MM-DD HH:MM:SS[.fff]" and unix seconds.
// Anything else yields the zero time.
func ParseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
