package model

import "strings"

type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// ParseLanguage accepts "ar"/"en" (and regional variants like "en-US").
// Anything else resolves to Arabic, the storefront default.
func ParseLanguage(v string) Language {
	v = strings.ToLower(strings.TrimSpace(v))
	if strings.HasPrefix(v, "en") {
		return English
	}
	return Arabic
}
