package convert

import (
	"strconv"
	"strings"
)

// truthyTokens are the literal string values treated as true when a string
// does not parse as an integer. Comparison is case-sensitive; the hub emits
// these exact tokens.
var truthyTokens = map[string]bool{
	"true": true,
	"on":   true,
	"yes":  true,
}

// Coerce normalizes the hub's heterogeneous truthy representations into a
// strict boolean.
//
// Rules:
//   - bool: as-is
//   - number: false iff zero
//   - string parsing as an integer: false iff zero
//   - other strings: true iff in {"true", "on", "yes"} (case-sensitive)
//   - anything else: false
//
// Coerce is total; there is no error path.
func Coerce(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float64:
		return x != 0
	case float32:
		return x != 0
	case int:
		return x != 0
	case int64:
		return x != 0
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n != 0
		}
		return truthyTokens[s]
	default:
		return false
	}
}
