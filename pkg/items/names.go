package items

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier builds "namespace:segment".
func Identifier(ns, segment string) string {
	return ns + ":" + segment
}

// Segment returns the name part of a namespaced identifier.
func Segment(id string) (string, error) {
	ns, seg, ok := strings.Cut(id, ":")
	if !ok || ns == "" || seg == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedIdentifier, id)
	}
	return seg, nil
}

// FallbackName turns "diamond_sword" into "Diamond Sword".
func FallbackName(segment string) string {
	// cases.Caser keeps state, so one is built per call
	title := cases.Title(language.English)
	return title.String(strings.ReplaceAll(segment, "_", " "))
}

func langKey(kind LangKind, ns, segment string) string {
	return string(kind) + "." + ns + "." + segment
}
