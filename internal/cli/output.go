package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yourusername/phonafind/internal/phoneme"
)

// FormatResults renders one-shot lookup results, one sentence per
// dimension. With quiet set, dimensions that did not resolve are
// omitted entirely, which matches the behavior of the classic course
// handout tool this replaces.
func FormatResults(results []phoneme.DimensionResult, quiet bool) string {
	var b strings.Builder
	for _, r := range results {
		switch {
		case r.Resolved():
			fmt.Fprintf(&b, "The common %s is: %s\n", r.Dimension.Phrase(), r.Label)
		case quiet:
			// say nothing for this dimension
		case errors.Is(r.Err, phoneme.ErrOutOfRange):
			fmt.Fprintf(&b, "No %s: %v\n", r.Dimension.Phrase(), r.Err)
		default:
			fmt.Fprintf(&b, "No common %s.\n", r.Dimension.Phrase())
		}
	}
	if b.Len() == 0 {
		return "No common features found.\n"
	}
	return b.String()
}

// FormatChart renders the phoneme number chart as plain text for
// --chart output.
func FormatChart() string {
	var b strings.Builder
	b.WriteString("CONSONANTS            VOWELS\n")
	for code := phoneme.Code(1); code <= phoneme.ConsonantCodeMax; code++ {
		left := fmt.Sprintf("%2d: %s", code, phoneme.Symbol(phoneme.Consonant, code))
		if code <= phoneme.VowelCodeMax {
			// Pad by rune count; IPA symbols are multi-byte and %-22s
			// would misalign the second column.
			pad := 22 - utf8.RuneCountInString(left)
			if pad < 1 {
				pad = 1
			}
			fmt.Fprintf(&b, "%s%s%2d: %s\n", left, strings.Repeat(" ", pad),
				code, phoneme.Symbol(phoneme.Vowel, code))
		} else {
			b.WriteString(left + "\n")
		}
	}
	return b.String()
}
