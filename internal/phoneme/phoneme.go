// Package phoneme classifies English consonant and vowel phonemes by
// their articulatory features and finds the single feature a group of
// phonemes has in common.
//
// Phonemes are identified by small numeric codes scoped to their class
// (1-25 for consonants, 1-15 for vowels), following the numbering that
// introductory phonetics courses hand out alongside the IPA chart. The
// package is pure data plus pure functions: the feature tables are
// fixed constants and every lookup is reentrant and side-effect-free.
package phoneme

import "fmt"

// Class distinguishes the two phoneme inventories. Codes are scoped to
// a class: consonant 5 (/v/) and vowel 5 (/e/) are unrelated.
type Class int

const (
	Consonant Class = iota
	Vowel
)

// Code identifies a phoneme within its class.
type Code int

const (
	// ConsonantCodeMax is the highest assigned consonant code.
	ConsonantCodeMax Code = 25
	// VowelCodeMax is the highest assigned vowel code.
	VowelCodeMax Code = 15
)

func (c Class) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case Vowel:
		return "vowel"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Valid reports whether c is one of the two known classes.
func (c Class) Valid() bool {
	return c == Consonant || c == Vowel
}

// MaxCode returns the highest assigned code for the class, or 0 for an
// unknown class.
func (c Class) MaxCode() Code {
	switch c {
	case Consonant:
		return ConsonantCodeMax
	case Vowel:
		return VowelCodeMax
	default:
		return 0
	}
}

// ParseClass maps user-facing selector strings onto a Class.
// It accepts the full words and their initial letters.
func ParseClass(s string) (Class, error) {
	switch s {
	case "consonant", "consonants", "c":
		return Consonant, nil
	case "vowel", "vowels", "v":
		return Vowel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidClass, s)
	}
}

// consonantSymbols holds the IPA symbol for each consonant code,
// index 0 unused so the slice lines up with the 1-based codes.
var consonantSymbols = []string{"",
	"p", "b", "m", "f", "v",
	"θ", "ð", "t", "d", "n",
	"s", "z", "l", "r", "ʃ",
	"ʒ", "ʧ", "ʤ", "j", "k",
	"g", "ŋ", "w", "ʔ", "h",
}

// vowelSymbols holds the IPA symbol for each vowel code, 1-based like
// consonantSymbols. Codes 5 and 9 carry both the plain and the glided
// transcription, the way course charts write them.
var vowelSymbols = []string{"",
	"i", "ɪ", "u", "ʊ", "e/ej",
	"ɛ", "ə", "ʌ", "o/ow", "ɔj",
	"ɔ", "æ", "aj", "aw", "ɑ",
}

// Symbol returns the IPA symbol assigned to a code, or "" when the
// code is outside the class inventory.
func Symbol(class Class, code Code) string {
	var symbols []string
	switch class {
	case Consonant:
		symbols = consonantSymbols
	case Vowel:
		symbols = vowelSymbols
	default:
		return ""
	}
	if code < 1 || int(code) >= len(symbols) {
		return ""
	}
	return symbols[code]
}
