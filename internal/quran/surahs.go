// Package quran carries the static sūra metadata table and the verse-text
// provider client used to resolve Qurʾan-reference calculation requests.
package quran

// SurahCount is the number of sūras.
const SurahCount = 114

// Surah is one entry of the static metadata table.
type Surah struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Translit string `json:"transliteration"`
	Ayahs    int    `json:"ayahs"`
}

// surahs is the fixed 114-entry table in muṣḥaf order, with Ḥafṣ ayah counts.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var surahs = [SurahCount]Surah{
	{1, "الفاتحة", "Al-Fātiḥa", 7},
	{2, "البقرة", "Al-Baqara", 286},
	{3, "آل عمران", "Āl ʿImrān", 200},
	{4, "النساء", "An-Nisāʾ", 176},
	{5, "المائدة", "Al-Māʾida", 120},
	{6, "الأنعام", "Al-Anʿām", 165},
	{7, "الأعراف", "Al-Aʿrāf", 206},
	{8, "الأنفال", "Al-Anfāl", 75},
	{9, "التوبة", "At-Tawba", 129},
	{10, "يونس", "Yūnus", 109},
	{11, "هود", "Hūd", 123},
	{12, "يوسف", "Yūsuf", 111},
	{13, "الرعد", "Ar-Raʿd", 43},
	{14, "إبراهيم", "Ibrāhīm", 52},
	{15, "الحجر", "Al-Ḥijr", 99},
	{16, "النحل", "An-Naḥl", 128},
	{17, "الإسراء", "Al-Isrāʾ", 111},
	{18, "الكهف", "Al-Kahf", 110},
	{19, "مريم", "Maryam", 98},
	{20, "طه", "Ṭā-Hā", 135},
	{21, "الأنبياء", "Al-Anbiyāʾ", 112},
	{22, "الحج", "Al-Ḥajj", 78},
	{23, "المؤمنون", "Al-Muʾminūn", 118},
	{24, "النور", "An-Nūr", 64},
	{25, "الفرقان", "Al-Furqān", 77},
	{26, "الشعراء", "Ash-Shuʿarāʾ", 227},
	{27, "النمل", "An-Naml", 93},
	{28, "القصص", "Al-Qaṣaṣ", 88},
	{29, "العنكبوت", "Al-ʿAnkabūt", 69},
	{30, "الروم", "Ar-Rūm", 60},
	{31, "لقمان", "Luqmān", 34},
	{32, "السجدة", "As-Sajda", 30},
	{33, "الأحزاب", "Al-Aḥzāb", 73},
	{34, "سبأ", "Sabaʾ", 54},
	{35, "فاطر", "Fāṭir", 45},
	{36, "يس", "Yā-Sīn", 83},
	{37, "الصافات", "Aṣ-Ṣāffāt", 182},
	{38, "ص", "Ṣād", 88},
	{39, "الزمر", "Az-Zumar", 75},
	{40, "غافر", "Ghāfir", 85},
	{41, "فصلت", "Fuṣṣilat", 54},
	{42, "الشورى", "Ash-Shūrā", 53},
	{43, "الزخرف", "Az-Zukhruf", 89},
	{44, "الدخان", "Ad-Dukhān", 59},
	{45, "الجاثية", "Al-Jāthiya", 37},
	{46, "الأحقاف", "Al-Aḥqāf", 35},
	{47, "محمد", "Muḥammad", 38},
	{48, "الفتح", "Al-Fatḥ", 29},
	{49, "الحجرات", "Al-Ḥujurāt", 18},
	{50, "ق", "Qāf", 45},
	{51, "الذاريات", "Adh-Dhāriyāt", 60},
	{52, "الطور", "Aṭ-Ṭūr", 49},
	{53, "النجم", "An-Najm", 62},
	{54, "القمر", "Al-Qamar", 55},
	{55, "الرحمن", "Ar-Raḥmān", 78},
	{56, "الواقعة", "Al-Wāqiʿa", 96},
	{57, "الحديد", "Al-Ḥadīd", 29},
	{58, "المجادلة", "Al-Mujādila", 22},
	{59, "الحشر", "Al-Ḥashr", 24},
	{60, "الممتحنة", "Al-Mumtaḥana", 13},
	{61, "الصف", "Aṣ-Ṣaff", 14},
	{62, "الجمعة", "Al-Jumuʿa", 11},
	{63, "المنافقون", "Al-Munāfiqūn", 11},
	{64, "التغابن", "At-Taghābun", 18},
	{65, "الطلاق", "Aṭ-Ṭalāq", 12},
	{66, "التحريم", "At-Taḥrīm", 12},
	{67, "الملك", "Al-Mulk", 30},
	{68, "القلم", "Al-Qalam", 52},
	{69, "الحاقة", "Al-Ḥāqqa", 52},
	{70, "المعارج", "Al-Maʿārij", 44},
	{71, "نوح", "Nūḥ", 28},
	{72, "الجن", "Al-Jinn", 28},
	{73, "المزمل", "Al-Muzzammil", 20},
	{74, "المدثر", "Al-Muddaththir", 56},
	{75, "القيامة", "Al-Qiyāma", 40},
	{76, "الإنسان", "Al-Insān", 31},
	{77, "المرسلات", "Al-Mursalāt", 50},
	{78, "النبأ", "An-Nabaʾ", 40},
	{79, "النازعات", "An-Nāziʿāt", 46},
	{80, "عبس", "ʿAbasa", 42},
	{81, "التكوير", "At-Takwīr", 29},
	{82, "الانفطار", "Al-Infiṭār", 19},
	{83, "المطففين", "Al-Muṭaffifīn", 36},
	{84, "الانشقاق", "Al-Inshiqāq", 25},
	{85, "البروج", "Al-Burūj", 22},
	{86, "الطارق", "Aṭ-Ṭāriq", 17},
	{87, "الأعلى", "Al-Aʿlā", 19},
	{88, "الغاشية", "Al-Ghāshiya", 26},
	{89, "الفجر", "Al-Fajr", 30},
	{90, "البلد", "Al-Balad", 20},
	{91, "الشمس", "Ash-Shams", 15},
	{92, "الليل", "Al-Layl", 21},
	{93, "الضحى", "Aḍ-Ḍuḥā", 11},
	{94, "الشرح", "Ash-Sharḥ", 8},
	{95, "التين", "At-Tīn", 8},
	{96, "العلق", "Al-ʿAlaq", 19},
	{97, "القدر", "Al-Qadr", 5},
	{98, "البينة", "Al-Bayyina", 8},
	{99, "الزلزلة", "Az-Zalzala", 8},
	{100, "العاديات", "Al-ʿĀdiyāt", 11},
	{101, "القارعة", "Al-Qāriʿa", 11},
	{102, "التكاثر", "At-Takāthur", 8},
	{103, "العصر", "Al-ʿAṣr", 3},
	{104, "الهمزة", "Al-Humaza", 9},
	{105, "الفيل", "Al-Fīl", 5},
	{106, "قريش", "Quraysh", 4},
	{107, "الماعون", "Al-Māʿūn", 7},
	{108, "الكوثر", "Al-Kawthar", 3},
	{109, "الكافرون", "Al-Kāfirūn", 6},
	{110, "النصر", "An-Naṣr", 3},
	{111, "المسد", "Al-Masad", 5},
	{112, "الإخلاص", "Al-Ikhlāṣ", 4},
	{113, "الفلق", "Al-Falaq", 5},
	{114, "الناس", "An-Nās", 6},
}

// SurahByNumber returns the metadata for a 1..114 sūra number.
func SurahByNumber(number int) (Surah, bool) {
	if number < 1 || number > SurahCount {
		return Surah{}, false
	}
	return surahs[number-1], true
}

// Surahs returns the full table in muṣḥaf order as a fresh slice.
func Surahs() []Surah {
	out := make([]Surah, SurahCount)
	copy(out, surahs[:])
	return out
}

// ValidReference reports whether the surah/ayah pair addresses a real verse.
func ValidReference(surahNumber, ayahNumber int) bool {
	surah, ok := SurahByNumber(surahNumber)
	return ok && ayahNumber >= 1 && ayahNumber <= surah.Ayahs
}
