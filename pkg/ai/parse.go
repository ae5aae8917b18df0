package ai

import (
	"regexp"
	"strings"
)

// BulletResult is the output of the best-effort bullet parser. When OK is
// false the text did not look like a list and Raw carries it unchanged;
// callers must handle that case explicitly instead of assuming well-formed
// output.
type BulletResult struct {
	OK    bool
	Items []string
	Raw   string
}

// bulletPrefix matches leading dashes, asterisks, dots and "1." / "1)"
// style numbering.
var bulletPrefix = regexp.MustCompile(`^\s*(?:[-*•–—]+|\d+[.)])\s*`)

// ParseBullets splits free text into bullet points on line breaks, leading
// numbering and leading dashes. The suggestion endpoints return prose more
// often than lists, so the parser only claims success when the text has
// explicit markers or several distinct lines.
func ParseBullets(text string) BulletResult {
	lines := strings.Split(text, "\n")

	var items []string
	marked := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if stripped := bulletPrefix.ReplaceAllString(trimmed, ""); stripped != trimmed {
			trimmed = strings.TrimSpace(stripped)
			marked++
		}
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}

	// one unmarked paragraph is prose, not a list
	if len(items) == 0 || (marked == 0 && len(items) < 2) {
		return BulletResult{OK: false, Raw: text}
	}
	return BulletResult{OK: true, Items: items}
}
