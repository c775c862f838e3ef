package resonance

import (
	"sort"

	"github.com/hurufapp/huruf/internal/abjad"
	"github.com/hurufapp/huruf/internal/normalize"
)

// DivineName is one entry of the 99-name table. Canonical is the
// dhikr-normalized spelling whose letters the Value sums; it is derived once
// at startup so the table can never drift from the alphabet assignments.
type DivineName struct {
	Number   int    `json:"number"`
	Arabic   string `json:"arabic"`
	Translit string `json:"transliteration"`
	Meaning  string `json:"meaning"`

	// Canonical is the tabulated spelling: diacritics stripped, variants
	// folded, vocative and article prefixes removed.
	Canonical string `json:"canonical"`

	// Value is the Mashriqī Abjad total of Canonical.
	Value int `json:"value"`
}

// NameMatch annotates a Divine Name with its distance from a queried total.
type NameMatch struct {
	Name     DivineName `json:"name"`
	Distance int        `json:"distance"`
	Exact    bool       `json:"exact"`
}

// NearestNameCount is the number of entries returned by NearestNames.
const NearestNameCount = 3

//nolint:gochecknoglobals // Populated once at init, read-only afterwards.
var divineNames []DivineName

type nameSeed struct {
	arabic   string
	translit string
	meaning  string
}

// The canonical 99 in traditional order.
//
//nolint:gochecknoglobals // Compile-time constant seed table.
var nameSeeds = []nameSeed{
	{"الرحمن", "Ar-Raḥmān", "The Most Merciful"},
	{"الرحيم", "Ar-Raḥīm", "The Bestower of Mercy"},
	{"الملك", "Al-Malik", "The King"},
	{"القدوس", "Al-Quddūs", "The Most Holy"},
	{"السلام", "As-Salām", "The Source of Peace"},
	{"المؤمن", "Al-Muʾmin", "The Giver of Faith"},
	{"المهيمن", "Al-Muhaymin", "The Guardian"},
	{"العزيز", "Al-ʿAzīz", "The Almighty"},
	{"الجبار", "Al-Jabbār", "The Compeller"},
	{"المتكبر", "Al-Mutakabbir", "The Supreme"},
	{"الخالق", "Al-Khāliq", "The Creator"},
	{"البارئ", "Al-Bāriʾ", "The Evolver"},
	{"المصور", "Al-Muṣawwir", "The Fashioner"},
	{"الغفار", "Al-Ghaffār", "The Ever-Forgiving"},
	{"القهار", "Al-Qahhār", "The Subduer"},
	{"الوهاب", "Al-Wahhāb", "The Bestower"},
	{"الرزاق", "Ar-Razzāq", "The Provider"},
	{"الفتاح", "Al-Fattāḥ", "The Opener"},
	{"العليم", "Al-ʿAlīm", "The All-Knowing"},
	{"القابض", "Al-Qābiḍ", "The Withholder"},
	{"الباسط", "Al-Bāsiṭ", "The Expander"},
	{"الخافض", "Al-Khāfiḍ", "The Abaser"},
	{"الرافع", "Ar-Rāfiʿ", "The Exalter"},
	{"المعز", "Al-Muʿizz", "The Honourer"},
	{"المذل", "Al-Mudhill", "The Humbler"},
	{"السميع", "As-Samīʿ", "The All-Hearing"},
	{"البصير", "Al-Baṣīr", "The All-Seeing"},
	{"الحكم", "Al-Ḥakam", "The Judge"},
	{"العدل", "Al-ʿAdl", "The Just"},
	{"اللطيف", "Al-Laṭīf", "The Subtle One"},
	{"الخبير", "Al-Khabīr", "The All-Aware"},
	{"الحليم", "Al-Ḥalīm", "The Forbearing"},
	{"العظيم", "Al-ʿAẓīm", "The Magnificent"},
	{"الغفور", "Al-Ghafūr", "The Great Forgiver"},
	{"الشكور", "Ash-Shakūr", "The Appreciative"},
	{"العلي", "Al-ʿAliyy", "The Most High"},
	{"الكبير", "Al-Kabīr", "The Most Great"},
	{"الحفيظ", "Al-Ḥafīẓ", "The Preserver"},
	{"المقيت", "Al-Muqīt", "The Sustainer"},
	{"الحسيب", "Al-Ḥasīb", "The Reckoner"},
	{"الجليل", "Al-Jalīl", "The Majestic"},
	{"الكريم", "Al-Karīm", "The Most Generous"},
	{"الرقيب", "Ar-Raqīb", "The Watchful"},
	{"المجيب", "Al-Mujīb", "The Responsive"},
	{"الواسع", "Al-Wāsiʿ", "The All-Encompassing"},
	{"الحكيم", "Al-Ḥakīm", "The All-Wise"},
	{"الودود", "Al-Wadūd", "The Most Loving"},
	{"المجيد", "Al-Majīd", "The Glorious"},
	{"الباعث", "Al-Bāʿith", "The Resurrector"},
	{"الشهيد", "Ash-Shahīd", "The Witness"},
	{"الحق", "Al-Ḥaqq", "The Truth"},
	{"الوكيل", "Al-Wakīl", "The Trustee"},
	{"القوي", "Al-Qawiyy", "The All-Strong"},
	{"المتين", "Al-Matīn", "The Firm"},
	{"الولي", "Al-Waliyy", "The Protecting Friend"},
	{"الحميد", "Al-Ḥamīd", "The Praiseworthy"},
	{"المحصي", "Al-Muḥṣī", "The All-Enumerating"},
	{"المبدئ", "Al-Mubdiʾ", "The Originator"},
	{"المعيد", "Al-Muʿīd", "The Restorer"},
	{"المحيي", "Al-Muḥyī", "The Giver of Life"},
	{"المميت", "Al-Mumīt", "The Bringer of Death"},
	{"الحي", "Al-Ḥayy", "The Ever-Living"},
	{"القيوم", "Al-Qayyūm", "The Self-Subsisting"},
	{"الواجد", "Al-Wājid", "The Perceiver"},
	{"الماجد", "Al-Mājid", "The Noble"},
	{"الواحد", "Al-Wāḥid", "The One"},
	{"الأحد", "Al-Aḥad", "The Unique"},
	{"الصمد", "As-Ṣamad", "The Eternal Refuge"},
	{"القادر", "Al-Qādir", "The All-Capable"},
	{"المقتدر", "Al-Muqtadir", "The All-Determining"},
	{"المقدم", "Al-Muqaddim", "The Expediter"},
	{"المؤخر", "Al-Muʾakhkhir", "The Delayer"},
	{"الأول", "Al-Awwal", "The First"},
	{"الآخر", "Al-Ākhir", "The Last"},
	{"الظاهر", "Aẓ-Ẓāhir", "The Manifest"},
	{"الباطن", "Al-Bāṭin", "The Hidden"},
	{"الوالي", "Al-Wālī", "The Governor"},
	{"المتعالي", "Al-Mutaʿālī", "The Self-Exalted"},
	{"البر", "Al-Barr", "The Source of Goodness"},
	{"التواب", "At-Tawwāb", "The Accepter of Repentance"},
	{"المنتقم", "Al-Muntaqim", "The Avenger"},
	{"العفو", "Al-ʿAfuww", "The Pardoner"},
	{"الرؤوف", "Ar-Raʾūf", "The Most Kind"},
	{"مالك الملك", "Mālik-ul-Mulk", "Master of the Kingdom"},
	{"ذو الجلال والإكرام", "Dhū-l-Jalāli wa-l-Ikrām", "Lord of Majesty and Generosity"},
	{"المقسط", "Al-Muqsiṭ", "The Equitable"},
	{"الجامع", "Al-Jāmiʿ", "The Gatherer"},
	{"الغني", "Al-Ghaniyy", "The Self-Sufficient"},
	{"المغني", "Al-Mughnī", "The Enricher"},
	{"المانع", "Al-Māniʿ", "The Preventer"},
	{"الضار", "Aḍ-Ḍārr", "The Distresser"},
	{"النافع", "An-Nāfiʿ", "The Benefactor"},
	{"النور", "An-Nūr", "The Light"},
	{"الهادي", "Al-Hādī", "The Guide"},
	{"البديع", "Al-Badīʿ", "The Incomparable"},
	{"الباقي", "Al-Bāqī", "The Everlasting"},
	{"الوارث", "Al-Wārith", "The Inheritor"},
	{"الرشيد", "Ar-Rashīd", "The Guide to the Right Path"},
	{"الصبور", "Aṣ-Ṣabūr", "The Most Patient"},
}

//nolint:gochecknoinits // Derives the value column once from the seed table.
func init() {
	divineNames = make([]DivineName, len(nameSeeds))
	for i, seed := range nameSeeds {
		canonical := normalize.DhikrStrict(seed.arabic)
		core := abjad.Compute(canonical, abjad.SystemMashriqi)
		divineNames[i] = DivineName{
			Number:    i + 1,
			Arabic:    seed.arabic,
			Translit:  seed.translit,
			Meaning:   seed.meaning,
			Canonical: canonical,
			Value:     core.Kabir,
		}
	}
}

// Names returns the full 99-entry table in traditional order as a fresh slice.
func Names() []DivineName {
	out := make([]DivineName, len(divineNames))
	copy(out, divineNames)
	return out
}

// NameByNumber returns the table entry for a 1..99 ordinal.
func NameByNumber(number int) (DivineName, bool) {
	if number < 1 || number > len(divineNames) {
		return DivineName{}, false
	}
	return divineNames[number-1], true
}

// FindNameByText resolves user input (with or without diacritics, the
// vocative, or the article) to a table entry by canonical spelling.
func FindNameByText(text string) (DivineName, bool) {
	canonical := normalize.DhikrStrict(text)
	if canonical == "" {
		return DivineName{}, false
	}
	for _, name := range divineNames {
		if name.Canonical == canonical {
			return name, true
		}
	}
	return DivineName{}, false
}

// FindNamesByValue returns all names whose value lies within tolerance of
// kabir, in table order. Tolerance 0 selects exact matches only. Negative
// tolerance is treated as 0.
func FindNamesByValue(kabir, tolerance int) []DivineName {
	if tolerance < 0 {
		tolerance = 0
	}
	var out []DivineName
	for _, name := range divineNames {
		if absDistance(name.Value, kabir) <= tolerance {
			out = append(out, name)
		}
	}
	return out
}

// NearestNames sorts the whole table by distance from kabir and returns the
// closest three, each annotated exact or approximate. Total for any integer
// input. Equidistant names keep their table order.
func NearestNames(kabir int) []NameMatch {
	matches := make([]NameMatch, len(divineNames))
	for i, name := range divineNames {
		d := absDistance(name.Value, kabir)
		matches[i] = NameMatch{Name: name, Distance: d, Exact: d == 0}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	return matches[:NearestNameCount]
}
