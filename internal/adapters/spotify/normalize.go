package spotify

import "strings"

// noiseTokens mark bracketed or dashed title suffixes that are release
// metadata rather than the song's name.
var noiseTokens = map[string]struct{}{
	"clean":      {},
	"deluxe":     {},
	"edition":    {},
	"edit":       {},
	"explicit":   {},
	"live":       {},
	"mix":        {},
	"mono":       {},
	"radio":      {},
	"remaster":   {},
	"remastered": {},
	"stereo":     {},
	"version":    {},
}

// displayTitle strips release-metadata suffixes from a raw provider
// title, preserving the original casing of what remains.
// "Dreams - 2004 Remaster" and "Dreams (Remastered)" both come back as
// "Dreams".
func displayTitle(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for {
		next := trimBracketedSuffix(trimmed)
		next = trimDashSuffix(next)
		next = strings.TrimSpace(next)
		if next == trimmed {
			return trimmed
		}
		trimmed = next
	}
}

func trimBracketedSuffix(input string) string {
	if !strings.HasSuffix(input, ")") && !strings.HasSuffix(input, "]") {
		return input
	}
	open := strings.LastIndexAny(input, "([")
	if open <= 0 {
		return input
	}
	if suffixHasNoiseToken(input[open+1 : len(input)-1]) {
		return input[:open]
	}
	return input
}

func trimDashSuffix(input string) string {
	idx := strings.LastIndex(input, " - ")
	if idx <= 0 {
		return input
	}
	if suffixHasNoiseToken(input[idx+3:]) {
		return input[:idx]
	}
	return input
}

func suffixHasNoiseToken(suffix string) bool {
	for _, token := range strings.Fields(strings.ToLower(suffix)) {
		if _, ok := noiseTokens[token]; ok {
			return true
		}
	}
	return false
}

func fallbackIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
