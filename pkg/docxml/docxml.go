// Package docxml converts unstructured OCR text into a structured XML document.
//
// The conversion is a line-oriented state machine: each non-empty line of the
// input is classified as a section header, a key/value field, or plain text,
// and the classified stream is folded into a document of field, header and
// section elements. Plain lines belong to the most recently opened section as
// paragraphs; outside of any section they become standalone headers, or are
// dropped entirely when they carry no alphanumeric content.
//
// The output schema is fixed and relied on by downstream consumers:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<document>
//	  <field name="...">...</field>
//	  <header>...</header>
//	  <section title="...">
//	    <paragraph>...</paragraph>
//	  </section>
//	</document>
//
// Elements appear in the order their source lines were encountered, except
// that a section buffers its paragraphs and is emitted as a whole when the
// next section header (or end of input) closes it. Fields emitted while a
// section is open therefore precede that section in the output.
//
// The conversion never fails: unusual input degrades to header and paragraph
// entries rather than producing an error.
package docxml

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TextToXML converts raw OCR text to the structured XML document format.
//
// The input is normalized to NFC before classification so that decomposed
// Vietnamese diacritics, as produced by some OCR engines, still match the
// section and field vocabularies.
func TextToXML(text string) string {
	text = norm.NFC.String(text)

	b := newBuilder()
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		b.add(Classify(line))
	}
	return b.finish()
}

// builder folds a stream of classified lines into serialized XML parts.
// At most one section is open at a time; opening a new section flushes the
// previous one.
type builder struct {
	parts        []string
	sectionOpen  bool
	sectionTitle string
	paragraphs   []string
}

func newBuilder() *builder {
	return &builder{
		parts: []string{
			`<?xml version="1.0" encoding="UTF-8"?>`,
			"<document>",
		},
	}
}

func (b *builder) add(label Label) {
	switch label.Kind {
	case SectionHeader:
		b.flushSection()
		b.sectionOpen = true
		b.sectionTitle = label.Title
		b.paragraphs = nil
	case FieldLine:
		// Fields emit immediately in line order and do not close an
		// open section.
		b.parts = append(b.parts,
			`  <field name="`+Escape(label.Key)+`">`+Escape(label.Value)+"</field>")
	case PlainLine:
		if b.sectionOpen {
			b.paragraphs = append(b.paragraphs, label.Text)
			return
		}
		if !label.HasAlnum {
			return
		}
		b.parts = append(b.parts, "  <header>"+Escape(label.Text)+"</header>")
	}
}

func (b *builder) flushSection() {
	if !b.sectionOpen {
		return
	}
	b.parts = append(b.parts, `  <section title="`+Escape(b.sectionTitle)+`">`)
	for _, p := range b.paragraphs {
		b.parts = append(b.parts, "    <paragraph>"+Escape(p)+"</paragraph>")
	}
	b.parts = append(b.parts, "  </section>")
	b.sectionOpen = false
}

func (b *builder) finish() string {
	b.flushSection()
	b.parts = append(b.parts, "</document>")
	return strings.Join(b.parts, "\n")
}
