package queryfilter

import (
	"regexp"
	"strconv"
)

var escapeRegex = regexp.MustCompile(`&#[xX]([0-9a-fA-F]{1,4});`)

// Unescape decodes hexadecimal character entities such as `&#x2f;` in the given text.
// Malformed entities are left untouched.
func Unescape(text string) string {
	if len(text) < 4 {
		return text
	}

	return escapeRegex.ReplaceAllStringFunc(text, func(entity string) string {
		code, err := strconv.ParseUint(escapeRegex.FindStringSubmatch(entity)[1], 16, 32)
		if err != nil {
			return entity
		}

		return string(rune(code))
	})
}
