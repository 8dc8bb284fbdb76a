// LingoTeach - language-teaching voice skill backend
// License: MIT

// Package catalog is the static registry of languages the skill can speak.
package catalog

import "sort"

const (
	// SourceLanguage is the language every incoming phrase is assumed to be in.
	SourceLanguage = "en"
	// FallbackLanguage is used when a device has no stored preference.
	FallbackLanguage = "ru"
)

// Language couples a language code with its display name and synthesis voice.
type Language struct {
	Code  string
	Name  string
	Voice string
}

var languages = map[string]Language{
	"es": {Code: "es", Name: "Spanish", Voice: "Enrique"},
	"ru": {Code: "ru", Name: "Russian", Voice: "Maxim"},
	"pt": {Code: "pt", Name: "Portuguese", Voice: "Cristiano"},
	"ja": {Code: "ja", Name: "Japanese", Voice: "Takumi"},
	"it": {Code: "it", Name: "Italian", Voice: "Giorgio"},
	"de": {Code: "de", Name: "German", Voice: "Hans"},
	"fr": {Code: "fr", Name: "French", Voice: "Mathieu"},
}

// Lookup returns the language for code, if supported.
func Lookup(code string) (Language, bool) {
	lang, ok := languages[code]
	return lang, ok
}

// Supported reports whether code is a known language code.
func Supported(code string) bool {
	_, ok := languages[code]
	return ok
}

// Name returns the display name for code, or "" when unsupported.
func Name(code string) string {
	return languages[code].Name
}

// Voice returns the synthesis voice id for code, or "" when unsupported.
func Voice(code string) string {
	return languages[code].Voice
}

// Codes returns all supported language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
