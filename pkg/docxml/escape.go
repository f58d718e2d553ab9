package docxml

import "strings"

// xmlEscaper replaces the five reserved markup characters in a single pass,
// so already-escaped entities in the input are not double-escaped beyond
// their own ampersand.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape escapes the XML reserved characters in free text. It is applied to
// element content and attribute values at serialization time, never to
// structural markup.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}
