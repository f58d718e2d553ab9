package paraphrase

import (
	"regexp"
	"strings"
)

// MockMarker is prefixed to rewritten text by the mock paraphraser.
const MockMarker = "[Đã viết lại] "

// tagPattern matches an open tag, its text content and the closing tag.
// This is a textual heuristic, not a markup-aware parse: content may not
// contain "<", so nested and adjacent tags only match at their innermost
// text. Keep it that way; observable behavior on edge cases is part of the
// contract.
var tagPattern = regexp.MustCompile(`<([^/>]+)>([^<]+)</([^>]+)>`)

// MockParaphrase simulates paraphrasing by prefixing the text inside each
// matched tag pair with MockMarker. The XML declaration pseudo-tag and tags
// with empty or whitespace-only content are left untouched. It performs no
// network I/O and is the documented substitute when a remote paraphrase
// provider fails.
func MockParaphrase(xmlContent string) string {
	return tagPattern.ReplaceAllStringFunc(xmlContent, func(match string) string {
		sub := tagPattern.FindStringSubmatch(match)
		tag, content, closing := sub[1], sub[2], sub[3]

		if strings.HasPrefix(tag, "?") || strings.TrimSpace(content) == "" {
			return match
		}
		return "<" + tag + ">" + MockMarker + content + "</" + closing + ">"
	})
}
