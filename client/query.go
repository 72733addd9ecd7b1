package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Params holds query parameters for a single request. Values may be scalars,
// slices (emitted as repeated "key[]" entries) or plain maps (emitted as a
// JSON blob under the key). Nil values are dropped entirely.
type Params map[string]any

// Encode renders the parameters as a URL query string. An empty or nil map
// yields "". Keys are emitted in sorted order; slice element order is
// preserved within a key.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	values := url.Values{}
	for key, v := range p {
		if v == nil {
			continue
		}
		switch val := v.(type) {
		case []string:
			for _, item := range val {
				values.Add(key+"[]", item)
			}
		case []int:
			for _, item := range val {
				values.Add(key+"[]", strconv.Itoa(item))
			}
		case []any:
			for _, item := range val {
				values.Add(key+"[]", stringify(item))
			}
		case map[string]any:
			if val == nil {
				continue
			}
			values.Set(key, encodeObject(val))
		default:
			values.Set(key, stringify(val))
		}
	}
	return values.Encode()
}

// encodeObject serializes a nested object parameter to JSON text. Marshal
// cannot fail for map[string]any built from JSON-safe values; the fallback
// keeps Encode total either way.
func encodeObject(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(b)
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
