package format

import (
	"golang.org/x/text/encoding/unicode"
)

// decodeUTF8 decodes b as UTF-8, replacing invalid sequences with U+FFFD.
func decodeUTF8(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// The replacing decoder does not fail on malformed input.
		return string(b)
	}
	return string(out)
}
