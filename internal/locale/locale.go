package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Parse resolves a compact locale folder name (enUS, esES, zhTW) to a BCP-47
// language tag. The compact form is the on-disk convention for locale
// subfolders; a hyphenated tag is accepted as-is.
func Parse(value string) (language.Tag, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return language.Und, fmt.Errorf("locale: empty value")
	}
	candidate := trimmed
	if !strings.ContainsAny(candidate, "-_") && len(candidate) == 4 {
		candidate = candidate[:2] + "-" + candidate[2:]
	}
	tag, err := language.Parse(candidate)
	if err != nil {
		return language.Und, fmt.Errorf("locale: parse %q: %w", value, err)
	}
	return tag, nil
}

// DisplayName returns a human-readable English name for a locale folder name,
// falling back to the raw value when it does not parse.
func DisplayName(value string) string {
	tag, err := Parse(value)
	if err != nil {
		return value
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return value
	}
	return name
}
