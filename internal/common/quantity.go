package common

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// NormalizeQuantity renders hex or decimal quantities as base-10 strings.
// Values that are not unsigned 256-bit quantities are returned verbatim,
// nil and empty values become "0".
func NormalizeQuantity(value any) string {
	switch v := value.(type) {
	case nil:
		return "0"
	case json.Number:
		return normalizeQuantityString(v.String())
	case string:
		return normalizeQuantityString(v)
	case float64:
		return normalizeQuantityString(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return fmt.Sprint(v)
	}
}

func normalizeQuantityString(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "0"
	}
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		digits := strings.TrimLeft(trimmed[2:], "0")
		if digits == "" {
			if len(trimmed) > 2 {
				return "0"
			}
			return value
		}
		q, err := uint256.FromHex("0x" + digits)
		if err != nil {
			return value
		}
		return q.Dec()
	}
	q, err := uint256.FromDecimal(trimmed)
	if err != nil {
		return value
	}
	return q.Dec()
}
