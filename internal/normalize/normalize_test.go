package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	defaults := DefaultOptions()

	tests := []struct {
		name string
		text string
		opts Options
		want string
	}{
		{
			name: "strips diacritics",
			text: "مُحَمَّد",
			opts: defaults,
			want: "محمد",
		},
		{
			name: "strips tatweel",
			text: "محـــمد",
			opts: defaults,
			want: "محمد",
		},
		{
			name: "harmonizes hamza alif forms",
			text: "أحمد إبراهيم آمنة",
			opts: defaults,
			want: "احمدابراهيمامنة",
		},
		{
			name: "alif maqsura becomes ya",
			text: "موسى",
			opts: defaults,
			want: "موسي",
		},
		{
			name: "removes punctuation and digits",
			text: "محمد، 123 (نور)!",
			opts: defaults,
			want: "محمدنور",
		},
		{
			name: "keeps spaces collapsed when configured",
			text: "  عبد   الله  ",
			opts: Options{RemoveVowels: true, IgnorePunctuation: true},
			want: "عبد الله",
		},
		{
			name: "keeps diacritics when disabled",
			text: "بَد",
			opts: Options{IgnorePunctuation: true, IgnoreSpaces: true},
			want: "بَد",
		},
		{
			name: "keeps diacritics while dropping punctuation",
			text: "بَد، 7!",
			opts: Options{IgnorePunctuation: true, IgnoreSpaces: true},
			want: "بَد",
		},
		{
			name: "empty input",
			text: "",
			opts: defaults,
			want: "",
		},
		{
			name: "fully stripped input",
			text: "123 !? abc",
			opts: defaults,
			want: "",
		},
		{
			name: "latin survives without punctuation stripping",
			text: "ali",
			opts: Options{RemoveVowels: true, IgnoreSpaces: true},
			want: "ali",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.text, tt.opts))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"مُحَمَّد",
		"أحمد بن إبراهيم",
		"بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ",
		"hello محمد 42",
		"",
	}
	optionSets := []Options{
		DefaultOptions(),
		{RemoveVowels: true, IgnorePunctuation: true},
		{IgnorePunctuation: true, IgnoreSpaces: true},
		{RemoveVowels: true},
	}

	for _, opts := range optionSets {
		for _, input := range inputs {
			once := Normalize(input, opts)
			twice := Normalize(once, opts)
			assert.Equal(t, once, twice, "input %q opts %+v", input, opts)
		}
	}
}

func TestDhikrStrict(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			// Committed regression fixture from the value tables.
			name: "strips article from al-latif",
			text: "اللَّطيف",
			want: "لطيف",
		},
		{
			name: "strips vocative ya",
			text: "يا لطيف",
			want: "لطيف",
		},
		{
			name: "strips vocative and article together",
			text: "يا اللطيف",
			want: "لطيف",
		},
		{
			name: "lafz al-jalala keeps its article",
			text: "الله",
			want: "الله",
		},
		{
			name: "ta marbuta folds to ha",
			text: "رحمة",
			want: "رحمه",
		},
		{
			name: "hamza on waw folds to waw",
			text: "المؤمن",
			want: "مومن",
		},
		{
			name: "hamza on ya folds to ya",
			text: "البارئ",
			want: "باري",
		},
		{
			name: "digits and latin removed",
			text: "اللطيف 99 latif",
			want: "لطيف",
		},
		{
			name: "short word keeps article",
			text: "الي",
			want: "الي",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DhikrStrict(tt.text))
		})
	}
}

func TestDhikrStrictIdempotentOnNames(t *testing.T) {
	for _, name := range []string{"الرحمن", "اللطيف", "الله", "يا ودود"} {
		once := DhikrStrict(name)
		assert.Equal(t, once, DhikrStrict(once), "name %q", name)
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{name: "arabic", text: "محمد", want: LanguageArabic},
		{name: "arabic with harakat", text: "مُحَمَّد", want: LanguageArabic},
		{name: "latin", text: "Muhammad", want: LanguageLatin},
		{name: "mixed", text: "Muhammad محمد", want: LanguageMixed},
		{name: "digits only", text: "1234", want: LanguageUnknown},
		{name: "empty", text: "", want: LanguageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}
