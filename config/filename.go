package config

import (
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// dropRunes removes control characters and any of forbidden from in. Names
// produced here end up both on disk and in storyboard script lines.
func dropRunes(in, forbidden string) string {
	return strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(forbidden, sym) {
			return -1
		}
		return sym
	}, in)
}
