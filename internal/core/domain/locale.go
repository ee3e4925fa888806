package domain

import "strings"

// Locale selects the localized variant of content field locations.
type Locale struct {
	Language string
	Country  string
}

// ParseLocale accepts "en", "en_US" or "en-US".
func ParseLocale(s string) Locale {
	s = strings.ReplaceAll(s, "-", "_")
	lang, country, _ := strings.Cut(s, "_")
	return Locale{Language: strings.ToLower(lang), Country: strings.ToUpper(country)}
}

func (l Locale) String() string {
	if l.Country == "" {
		return l.Language
	}
	return l.Language + "_" + l.Country
}

// Localize expands the {locale}, {language} and {country} tokens of a location.
func (l Locale) Localize(location string) string {
	if !strings.Contains(location, "{") {
		return location
	}
	return strings.NewReplacer(
		"{locale}", l.String(),
		"{language}", l.Language,
		"{country}", l.Country,
	).Replace(location)
}
