package jpholiday

import "golang.org/x/text/language"

// Key identifies a holiday. It is a stable lookup key, not a display string;
// use [Key.Name] or an application's own string table to render it.
type Key string

const (
	NewYearsDay           Key = "ganjitsu"
	ComingOfAgeDay        Key = "seijin_no_hi"
	NationalFoundationDay Key = "kenkokukinen_no_hi"
	EmperorsBirthday      Key = "tennotanjobi"
	VernalEquinoxDay      Key = "syunbun_no_hi"
	ShowaDay              Key = "showa_no_hi"
	AccessionDay          Key = "sokui_no_hi"
	ConstitutionDay       Key = "kenpokinenbi"
	GreeneryDay           Key = "midori_no_hi"
	ChildrensDay          Key = "kodomo_no_hi"
	MarineDay             Key = "umi_no_hi"
	MountainDay           Key = "yama_no_hi"
	RespectForTheAgedDay  Key = "keiro_no_hi"
	AutumnalEquinoxDay    Key = "syubun_no_hi"
	HealthAndSportsDay    Key = "taiiku_no_hi"
	SportsDay             Key = "sport_no_hi"
	EnthronementCeremony  Key = "sokui_reiseiden_no_hi"
	CultureDay            Key = "bunka_no_hi"
	LaborThanksgivingDay  Key = "kinrokansya_no_hi"
	SubstituteHoliday     Key = "furikae_kyujitsu"
	CitizensHoliday       Key = "kokumin_no_kyujitsu"
)

var allKeys = []Key{
	NewYearsDay, ComingOfAgeDay, NationalFoundationDay, EmperorsBirthday,
	VernalEquinoxDay, ShowaDay, AccessionDay, ConstitutionDay, GreeneryDay,
	ChildrensDay, MarineDay, MountainDay, RespectForTheAgedDay,
	AutumnalEquinoxDay, HealthAndSportsDay, SportsDay, EnthronementCeremony,
	CultureDay, LaborThanksgivingDay, SubstituteHoliday, CitizensHoliday,
}

// Keys returns every holiday key the engine can produce.
func Keys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)
	return out
}

// Derived reports whether k is produced by a derived rule (substitute or
// citizens' holiday) rather than a statutory one.
func (k Key) Derived() bool {
	return k == SubstituteHoliday || k == CitizensHoliday
}

// Statutory reports whether k names a statutory holiday.
func (k Key) Statutory() bool {
	if k == "" || k.Derived() {
		return false
	}
	_, ok := japaneseNames[k]
	return ok
}

var japaneseNames = map[Key]string{
	NewYearsDay:           "元日",
	ComingOfAgeDay:        "成人の日",
	NationalFoundationDay: "建国記念の日",
	EmperorsBirthday:      "天皇誕生日",
	VernalEquinoxDay:      "春分の日",
	ShowaDay:              "昭和の日",
	AccessionDay:          "即位の日",
	ConstitutionDay:       "憲法記念日",
	GreeneryDay:           "みどりの日",
	ChildrensDay:          "こどもの日",
	MarineDay:             "海の日",
	MountainDay:           "山の日",
	RespectForTheAgedDay:  "敬老の日",
	AutumnalEquinoxDay:    "秋分の日",
	HealthAndSportsDay:    "体育の日",
	SportsDay:             "スポーツの日",
	EnthronementCeremony:  "即位礼正殿の儀の行われる日",
	CultureDay:            "文化の日",
	LaborThanksgivingDay:  "勤労感謝の日",
	SubstituteHoliday:     "振替休日",
	CitizensHoliday:       "国民の休日",
}

var englishNames = map[Key]string{
	NewYearsDay:           "New Year's Day",
	ComingOfAgeDay:        "Coming of Age Day",
	NationalFoundationDay: "National Foundation Day",
	EmperorsBirthday:      "The Emperor's Birthday",
	VernalEquinoxDay:      "Vernal Equinox Day",
	ShowaDay:              "Showa Day",
	AccessionDay:          "Accession Day",
	ConstitutionDay:       "Constitution Memorial Day",
	GreeneryDay:           "Greenery Day",
	ChildrensDay:          "Children's Day",
	MarineDay:             "Marine Day",
	MountainDay:           "Mountain Day",
	RespectForTheAgedDay:  "Respect for the Aged Day",
	AutumnalEquinoxDay:    "Autumnal Equinox Day",
	HealthAndSportsDay:    "Health and Sports Day",
	SportsDay:             "Sports Day",
	EnthronementCeremony:  "Enthronement Ceremony Day",
	CultureDay:            "Culture Day",
	LaborThanksgivingDay:  "Labor Thanksgiving Day",
	SubstituteHoliday:     "Substitute Holiday",
	CitizensHoliday:       "Citizens' Holiday",
}

// nameTables is indexed in the same order as the matcher's supported tags.
var (
	nameTables  = []map[Key]string{japaneseNames, englishNames}
	nameMatcher = language.NewMatcher([]language.Tag{language.Japanese, language.English})
)

// Japanese returns the official Japanese name of k, or "" for an unknown key.
func (k Key) Japanese() string {
	return japaneseNames[k]
}

// Name returns the display name of k in the language closest to tag.
// Japanese is used when nothing matches.
func (k Key) Name(tag language.Tag) string {
	_, idx, _ := nameMatcher.Match(tag)
	return nameTables[idx][k]
}

// NameFor is like [Key.Name] but takes a BCP 47 string or an Accept-Language
// header value such as "en-US,en;q=0.9".
func (k Key) NameFor(lang string) string {
	_, idx := language.MatchStrings(nameMatcher, lang)
	return nameTables[idx][k]
}
