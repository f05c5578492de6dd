package i18n

import (
	"strings"

	"github.com/jonathan/portfolio/internal/types"
	"golang.org/x/text/language"
)

// MatchLocale returns the supported language named by locale, which may be
// a BCP 47 tag, an Accept-Language list or a POSIX locale such as
// pt_BR.UTF-8. Only the most preferred entry of a list is considered, and
// its language must be explicit: "und-US" does not match.
func MatchLocale(locale string) (types.Lang, bool) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(normalized)
	if err == nil && len(tags) > 0 {
		base, conf := tags[0].Base()
		if conf == language.Exact && types.IsSupported(base.String()) {
			return types.Lang(base.String()), true
		}
		return "", false
	}

	// unparseable input still gets a plain prefix match
	lower := strings.ToLower(normalized)
	for _, lang := range types.SupportedLanguages() {
		if strings.HasPrefix(lower, string(lang)) {
			return lang, true
		}
	}
	return "", false
}

// normalizeLocale strips the codeset and modifier of POSIX locales and
// converts their separators.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 && !strings.Contains(locale, ",") {
		locale = locale[:i]
	}
	switch locale {
	case "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
