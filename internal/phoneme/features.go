package phoneme

// Dimension is one axis of articulatory classification. Dimensions are
// class-scoped: the first three apply to consonants, the rest to
// vowels.
type Dimension int

const (
	PlaceOfArticulation Dimension = iota
	MannerOfArticulation
	Voicing
	Height
	Backness
	Tenseness
	Roundedness
	DiphthongStatus
)

// consonantDimensions and vowelDimensions fix the reporting order,
// matching the order the original course tool printed them in.
var (
	consonantDimensions = []Dimension{PlaceOfArticulation, MannerOfArticulation, Voicing}
	vowelDimensions     = []Dimension{Height, Backness, Tenseness, Roundedness, DiphthongStatus}
)

// Dimensions returns the ordered feature dimensions evaluated for a
// class, or nil for an unknown class. Callers must not mutate the
// returned slice.
func Dimensions(class Class) []Dimension {
	switch class {
	case Consonant:
		return consonantDimensions
	case Vowel:
		return vowelDimensions
	default:
		return nil
	}
}

// Title returns the display name of the dimension.
func (d Dimension) Title() string {
	switch d {
	case PlaceOfArticulation:
		return "Place of Articulation"
	case MannerOfArticulation:
		return "Manner of Articulation"
	case Voicing:
		return "Voicing"
	case Height:
		return "Height of the Tongue"
	case Backness:
		return "Backness of the Tongue"
	case Tenseness:
		return "Tenseness of the Vocal Tract"
	case Roundedness:
		return "Roundedness of the Lips"
	case DiphthongStatus:
		return "Simple/Complex Vowel"
	default:
		return "Unknown Dimension"
	}
}

// Phrase returns the dimension name as it reads inside a sentence,
// e.g. "The common place of articulation is: Labial".
func (d Dimension) Phrase() string {
	switch d {
	case PlaceOfArticulation:
		return "place of articulation"
	case MannerOfArticulation:
		return "manner of articulation"
	case Voicing:
		return "voicing"
	case Height:
		return "height of the tongue"
	case Backness:
		return "backness of the tongue"
	case Tenseness:
		return "tenseness of the vocal tract"
	case Roundedness:
		return "roundedness of the lips"
	case DiphthongStatus:
		return "simple/complex vowel"
	default:
		return "unknown dimension"
	}
}

// Feature is a classification along one dimension. Secondary, when
// non-empty, names a narrower category subsumed by Primary: /f/ is
// Labial in general and Labiodental specifically. Most features have
// no secondary.
type Feature struct {
	Primary   string
	Secondary string
}

// FeatureTable maps every code valid for one (class, dimension) pair
// to its Feature. Codes absent from the table are out of range for
// that dimension.
type FeatureTable map[Code]Feature

// group is one row of chart data: a feature shared by several codes.
type group struct {
	feature Feature
	codes   []Code
}

func row(primary, secondary string, codes ...Code) group {
	return group{feature: Feature{Primary: primary, Secondary: secondary}, codes: codes}
}

func table(groups ...group) FeatureTable {
	t := make(FeatureTable)
	for _, g := range groups {
		for _, c := range g.codes {
			t[c] = g.feature
		}
	}
	return t
}

// The tables transcribe the standard English phoneme chart. They are
// package-level constants in spirit; nothing mutates them after init.
var (
	placeTable = table(
		row("Labial", "Bilabial", 1, 2, 3),
		row("Labial", "Labiodental", 4, 5),
		row("Dental", "", 6, 7),
		row("Alveolar", "", 8, 9, 10, 11, 12, 13, 14),
		row("Alveopalatal", "", 15, 16, 17, 18),
		row("Palatal", "", 19),
		row("Velar", "", 20, 21, 22),
		row("Labial", "Velar", 23), // /w/ is labial-velar
		row("Glottal", "", 24, 25),
	)

	mannerTable = table(
		row("Stop", "", 1, 2, 8, 9, 20, 21, 24),
		row("Nasal", "Stop", 3, 10, 22),
		row("Fricative", "", 4, 5, 6, 7, 11, 12, 15, 16, 25),
		row("Affricate", "", 17, 18),
		row("Liquid", "", 13, 14),
		row("Glide", "", 19, 23),
	)

	voicingTable = table(
		row("Voiceless", "", 1, 4, 6, 8, 11, 15, 17, 20, 24, 25),
		row("Voiced", "", 2, 3, 5, 7, 9, 10, 12, 13, 14, 16, 18, 19, 21, 22, 23),
	)

	heightTable = table(
		row("High", "", 1, 2, 3, 4),
		row("Mid", "", 5, 6, 7, 8, 9, 10, 11),
		row("Low", "", 12, 13, 14, 15),
	)

	backnessTable = table(
		row("Front", "", 1, 2, 5, 6, 12),
		row("Central", "", 7, 8, 13, 14),
		row("Back", "", 3, 4, 9, 10, 11, 15),
	)

	tensenessTable = table(
		row("Tensed", "", 1, 3, 5, 9, 10, 13, 14, 15),
		row("Laxed", "", 2, 4, 6, 7, 8, 11, 12),
	)

	roundednessTable = table(
		row("Rounded", "", 3, 4, 9, 10, 11),
		row("Unrounded", "", 1, 2, 5, 6, 7, 8, 12, 13, 14, 15),
	)

	diphthongTable = table(
		row("Simple Vowel", "", 1, 2, 3, 4, 6, 7, 8, 11, 12, 15),
		row("Diphthong", "Major Diphthong", 10, 13, 14),
		row("Diphthong", "Minor Diphthong", 5, 9),
	)
)

var tables = map[Dimension]FeatureTable{
	PlaceOfArticulation:  placeTable,
	MannerOfArticulation: mannerTable,
	Voicing:              voicingTable,
	Height:               heightTable,
	Backness:             backnessTable,
	Tenseness:            tensenessTable,
	Roundedness:          roundednessTable,
	DiphthongStatus:      diphthongTable,
}

// Table returns the feature table for a dimension, or nil if the
// dimension is unknown.
func Table(d Dimension) FeatureTable {
	return tables[d]
}
