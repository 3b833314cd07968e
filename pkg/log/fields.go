package log

import "sort"

const (
	FieldKeyPrefix   = "prefix"
	FieldKeyAssembly = "assembly"
	FieldKeyRunID    = "run-id"
	FieldKeyMsg      = "msg"
	FieldKeyLevel    = "level"
	FieldKeyTime     = "time"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any

// Keys returns the sorted field keys, excluding `removeKeys`.
func (fields Fields) Keys(removeKeys ...string) []string {
	var keys []string

	for key := range fields {
		var skip bool

		for _, removeKey := range removeKeys {
			if key == removeKey {
				skip = true
				break
			}
		}

		if !skip {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}
