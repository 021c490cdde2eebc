package content

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var previewLinkRe = regexp.MustCompile(`<a ?.*?>|</a>`)

// NormalizeTags splits a tag field on commas and newlines (YAML sequences
// and continuation lines are newline-joined). Each label loses all of its
// whitespace; order and duplicates are kept, empty labels are dropped.
func NormalizeTags(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' })
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.Join(strings.Fields(p), "")
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// ExtractPreview returns the body text before PreviewSentinel with anchor
// tags removed. ok is false when the body has no sentinel.
func ExtractPreview(body string) (preview string, ok bool) {
	before, _, found := strings.Cut(body, PreviewSentinel)
	if !found {
		return "", false
	}
	return previewLinkRe.ReplaceAllString(before, ""), true
}

// TitleFromName derives a display title from a file stem,
// e.g. "first-post" -> "First Post".
func TitleFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
