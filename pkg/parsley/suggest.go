package parsley

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// suggestThreshold is the Jaro-Winkler floor below which no suggestion is
// offered; anything lower is more likely to confuse than help.
const suggestThreshold = 0.70

// SuggestField returns the recognized field closest to name, for
// "did you mean" diagnostics on unknown --set fields. ok is false when
// nothing is close enough.
func SuggestField(name string) (Field, bool) {
	lowered := strings.ToLower(name)

	var best Field
	var bestScore float64
	for _, fs := range fieldTable {
		score := float64(edlib.JaroWinklerSimilarity(lowered, strings.ToLower(string(fs.field))))
		if score > bestScore {
			bestScore = score
			best = fs.field
		}
	}

	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
