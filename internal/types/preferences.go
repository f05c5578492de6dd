// Package types provides type definitions for the content documents and preferences used throughout the portfolio renderer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "slices"

// Lang is a supported content language code.
type Lang string

const (
	PT Lang = "pt"
	EN Lang = "en"
)

// DefaultLang is used whenever no valid language can be determined.
const DefaultLang = PT

// SupportedLanguages returns all supported languages in detection order.
func SupportedLanguages() []Lang {
	return []Lang{PT, EN}
}

// IsSupported reports whether s is one of the supported language codes.
func IsSupported(s string) bool {
	return slices.Contains(SupportedLanguages(), Lang(s))
}

// ParseLang returns the language for s, or DefaultLang when s is not supported.
func ParseLang(s string) Lang {
	if IsSupported(s) {
		return Lang(s)
	}
	return DefaultLang
}

// OtherLang returns the other language (for the language toggle).
func OtherLang(lang Lang) Lang {
	if lang == PT {
		return EN
	}
	return PT
}

// Theme is the name of a root-level CSS class selecting a color palette.
type Theme string

const (
	ThemePurple Theme = "theme-purple"
	ThemeCyan   Theme = "theme-cyan"
	ThemeGreen  Theme = "theme-green"
)

// Themes returns every enumerated theme.
func Themes() []Theme {
	return []Theme{ThemePurple, ThemeCyan, ThemeGreen}
}

// IsTheme reports whether s names one of the enumerated themes.
func IsTheme(s string) bool {
	return slices.Contains(Themes(), Theme(s))
}

// Local storage keys.
const (
	PrefLang  = "lang"
	PrefTheme = "theme"
)
