package docxml

import (
	"regexp"
	"strings"
	"unicode"
)

// LabelKind identifies what a classified line is.
type LabelKind int

const (
	// SectionHeader opens a new section titled by the line.
	SectionHeader LabelKind = iota
	// FieldLine is a key/value pair split on the first colon.
	FieldLine
	// PlainLine is anything else; whether it becomes a paragraph, a
	// standalone header, or nothing is decided by the document builder
	// based on whether a section is currently open.
	PlainLine
)

// Label is the classification of a single line.
type Label struct {
	Kind LabelKind

	// Title is set for SectionHeader: the line with any leading markdown
	// heading prefix stripped.
	Title string

	// Key and Value are set for FieldLine.
	Key   string
	Value string

	// Text and HasAlnum are set for PlainLine.
	Text     string
	HasAlnum bool
}

var (
	// Section-introducing vocabulary (Vietnamese legal-document headings)
	// or a markdown heading prefix.
	sectionPattern = regexp.MustCompile(`(?i)^(Điều|Mục|Phần|Chương|##?\s)`)

	// Leading markdown heading markers stripped from section titles.
	headingPrefix = regexp.MustCompile(`^#+\s*`)

	// Known field vocabulary or a bare alphabetic token, immediately
	// followed by a colon. The generic [A-Za-z]+ alternative can match
	// ordinary prose that begins with a capitalized word and a colon;
	// downstream consumers depend on that behavior, so it stays.
	fieldPattern = regexp.MustCompile(`(?i)^(Bên\s+[A-Z]|Địa chỉ|Tổng giá trị|Thanh toán|[A-Za-z]+):`)
)

// Classify categorizes one trimmed, non-empty line. Section headers win over
// fields, fields over plain text; first match applies.
func Classify(line string) Label {
	if sectionPattern.MatchString(line) {
		return Label{
			Kind:  SectionHeader,
			Title: headingPrefix.ReplaceAllString(line, ""),
		}
	}

	if fieldPattern.MatchString(line) {
		// The pattern requires the colon, so the split always succeeds.
		key, value, _ := strings.Cut(line, ":")
		return Label{
			Kind:  FieldLine,
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		}
	}

	return Label{
		Kind:     PlainLine,
		Text:     line,
		HasAlnum: hasAlnum(line),
	}
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
