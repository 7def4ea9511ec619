package phoneme

import "testing"

func TestTablesCoverEveryCode(t *testing.T) {
	// Every code in a class inventory must have an entry in every
	// dimension of that class; anything else would make valid input
	// look out of range.
	for _, class := range []Class{Consonant, Vowel} {
		for _, d := range Dimensions(class) {
			tab := Table(d)
			if len(tab) != int(class.MaxCode()) {
				t.Errorf("%s: %d entries, want %d", d.Title(), len(tab), class.MaxCode())
			}
			for code := Code(1); code <= class.MaxCode(); code++ {
				f, ok := tab[code]
				if !ok {
					t.Errorf("%s: code %d unmapped", d.Title(), code)
					continue
				}
				if f.Primary == "" {
					t.Errorf("%s: code %d has empty primary", d.Title(), code)
				}
			}
		}
	}
}

func TestSingleLevelDimensionsHaveNoSecondary(t *testing.T) {
	for _, d := range []Dimension{Voicing, Height, Backness, Tenseness, Roundedness} {
		for code, f := range Table(d) {
			if f.Secondary != "" {
				t.Errorf("%s: code %d unexpectedly has secondary %q", d.Title(), code, f.Secondary)
			}
		}
	}
}

func TestChartSpotChecks(t *testing.T) {
	checks := []struct {
		d       Dimension
		code    Code
		feature Feature
	}{
		{PlaceOfArticulation, 23, Feature{"Labial", "Velar"}},
		{PlaceOfArticulation, 4, Feature{"Labial", "Labiodental"}},
		{PlaceOfArticulation, 25, Feature{"Glottal", ""}},
		{MannerOfArticulation, 22, Feature{"Nasal", "Stop"}},
		{MannerOfArticulation, 17, Feature{"Affricate", ""}},
		{Voicing, 24, Feature{"Voiceless", ""}},
		{Height, 11, Feature{"Mid", ""}},
		{Backness, 12, Feature{"Front", ""}},
		{Tenseness, 15, Feature{"Tensed", ""}},
		{Roundedness, 11, Feature{"Rounded", ""}},
		{DiphthongStatus, 14, Feature{"Diphthong", "Major Diphthong"}},
		{DiphthongStatus, 9, Feature{"Diphthong", "Minor Diphthong"}},
	}
	for _, c := range checks {
		if got := Table(c.d)[c.code]; got != c.feature {
			t.Errorf("%s code %d = %+v, want %+v", c.d.Title(), c.code, got, c.feature)
		}
	}
}

func TestSymbols(t *testing.T) {
	cases := []struct {
		class Class
		code  Code
		want  string
	}{
		{Consonant, 1, "p"},
		{Consonant, 23, "w"},
		{Consonant, 25, "h"},
		{Vowel, 1, "i"},
		{Vowel, 5, "e/ej"},
		{Vowel, 15, "ɑ"},
		{Consonant, 0, ""},
		{Consonant, 26, ""},
		{Vowel, 16, ""},
	}
	for _, c := range cases {
		if got := Symbol(c.class, c.code); got != c.want {
			t.Errorf("Symbol(%s, %d) = %q, want %q", c.class, c.code, got, c.want)
		}
	}
}

func TestDimensionsPerClass(t *testing.T) {
	if got := len(Dimensions(Consonant)); got != 3 {
		t.Errorf("consonant dimensions = %d, want 3", got)
	}
	if got := len(Dimensions(Vowel)); got != 5 {
		t.Errorf("vowel dimensions = %d, want 5", got)
	}
	if Dimensions(Class(3)) != nil {
		t.Error("unknown class should have no dimensions")
	}
}
