// Package i18n resolves UI string keys to localized strings for the
// supported watch locales. Lookup is a total function: a key missing from
// the active locale falls back to the default (English) table, and a key
// missing there too is returned verbatim. Partial coverage of the
// non-default tables is deliberate and relied upon.
package i18n

// Language is a supported locale code.
type Language string

const (
	Arabic     Language = "ar"
	English    Language = "en"
	Urdu       Language = "ur"
	Indonesian Language = "id"
	Turkish    Language = "tr"
	French     Language = "fr"
	Malay      Language = "ms"
	Bengali    Language = "bn"
	Persian    Language = "fa"
	Pashto     Language = "ps"
	Chinese    Language = "zh"
	Russian    Language = "ru"
)

// Default is the fallback locale; its table covers the full key vocabulary.
const Default = English

var supported = map[Language]struct{}{
	Arabic: {}, English: {}, Urdu: {}, Indonesian: {}, Turkish: {},
	French: {}, Malay: {}, Bengali: {}, Persian: {}, Pashto: {},
	Chinese: {}, Russian: {},
}

// rtl is the fixed set of right-to-left locales. Direction is a property
// of the locale code, never of string content.
var rtl = map[Language]struct{}{
	Arabic: {}, Urdu: {}, Persian: {}, Pashto: {},
}

// Supported reports whether code is a member of the canonical locale set.
func Supported(code Language) bool {
	_, ok := supported[code]
	return ok
}

// IsRTL reports whether lang lays out right-to-left.
func IsRTL(lang Language) bool {
	_, ok := rtl[lang]
	return ok
}

// Dir returns the text-direction attribute value for lang: "rtl" or "ltr".
func Dir(lang Language) string {
	if IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}

// Translate resolves key in lang with the three-tier fallback. It never
// fails and always returns a displayable string.
func Translate(lang Language, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[Default][key]; ok {
		return s
	}
	return key
}

// Translator returns a lookup function bound to lang, for callers that
// resolve many keys against one snapshot.
func Translator(lang Language) func(string) string {
	return func(key string) string { return Translate(lang, key) }
}

// DisplayName is a locale entry for the settings screen language list.
type DisplayName struct {
	Code   Language `json:"code"`
	Name   string   `json:"name"`
	Native string   `json:"native"`
}

// DisplayNames lists every supported locale with its English and native
// names, in the order the settings screen presents them.
func DisplayNames() []DisplayName {
	return []DisplayName{
		{Arabic, "Arabic", "العربية"},
		{English, "English", "English"},
		{Urdu, "Urdu", "اردو"},
		{Indonesian, "Indonesian", "Bahasa Indonesia"},
		{Turkish, "Turkish", "Türkçe"},
		{French, "French", "Français"},
		{Malay, "Malay", "Bahasa Melayu"},
		{Bengali, "Bengali", "বাংলা"},
		{Persian, "Persian", "فارسی"},
		{Pashto, "Pashto", "پښتو"},
		{Chinese, "Chinese", "中文"},
		{Russian, "Russian", "Русский"},
	}
}
