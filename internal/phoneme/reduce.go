package phoneme

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange means a code has no entry in the dimension's table.
	ErrOutOfRange = errors.New("phoneme code out of range")
	// ErrNoCommonFeature means two codes disagree at every comparison
	// level of a dimension.
	ErrNoCommonFeature = errors.New("no common feature")
	// ErrInvalidClass means the class selector is neither Consonant
	// nor Vowel.
	ErrInvalidClass = errors.New("invalid phoneme class")
	// ErrNoCodes means an empty code sequence was supplied.
	ErrNoCodes = errors.New("no phoneme codes supplied")
)

// Reduce folds a sequence of codes down to the single feature label
// they all share under t, comparing at two levels: broad primary
// categories first, then narrower secondary ones. Two codes agree when
// their primaries match, when both secondaries are present and match,
// or when one code's secondary matches the other's primary; in the
// secondary cases the narrower surviving label becomes the running
// value. The first code that defeats every level ends the reduction
// with ErrNoCommonFeature, and a code with no table entry ends it with
// ErrOutOfRange.
func Reduce(t FeatureTable, codes []Code) (string, error) {
	if len(codes) == 0 {
		return "", ErrNoCodes
	}
	cur, ok := t[codes[0]]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, codes[0])
	}
	for _, code := range codes[1:] {
		next, ok := t[code]
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrOutOfRange, code)
		}
		switch {
		case next.Primary == cur.Primary:
			cur = Feature{Primary: cur.Primary}
		case cur.Secondary != "" && cur.Secondary == next.Secondary:
			cur = Feature{Primary: cur.Secondary}
		case cur.Secondary != "" && cur.Secondary == next.Primary:
			cur = Feature{Primary: next.Primary}
		case next.Secondary != "" && next.Secondary == cur.Primary:
			cur = Feature{Primary: next.Secondary}
		default:
			return "", ErrNoCommonFeature
		}
	}
	return cur.Primary, nil
}

// DimensionResult is the outcome of reducing one dimension. Err is nil
// when the dimension resolved, otherwise ErrNoCommonFeature or a
// wrapped ErrOutOfRange.
type DimensionResult struct {
	Dimension Dimension
	Label     string
	Err       error
}

// Resolved reports whether the dimension reduced to a shared label.
func (r DimensionResult) Resolved() bool {
	return r.Err == nil
}

// CommonFeatures runs the reducer once per dimension of the class over
// the same code sequence. A failure in one dimension never stops the
// others; each result carries its own outcome. The call itself fails
// only for an unknown class or an empty sequence.
func CommonFeatures(class Class, codes []Code) ([]DimensionResult, error) {
	dims := Dimensions(class)
	if dims == nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidClass, int(class))
	}
	if len(codes) == 0 {
		return nil, ErrNoCodes
	}
	results := make([]DimensionResult, 0, len(dims))
	for _, d := range dims {
		label, err := Reduce(Table(d), codes)
		results = append(results, DimensionResult{Dimension: d, Label: label, Err: err})
	}
	return results, nil
}
