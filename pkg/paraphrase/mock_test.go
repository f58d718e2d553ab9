package paraphrase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockParaphraseMarkerPlacement(t *testing.T) {
	in := "<paragraph>Xin chào</paragraph>"
	assert.Equal(t, "<paragraph>[Đã viết lại] Xin chào</paragraph>", MockParaphrase(in))
}

func TestMockParaphraseEmptyContentUnchanged(t *testing.T) {
	assert.Equal(t, "<paragraph></paragraph>", MockParaphrase("<paragraph></paragraph>"))
	assert.Equal(t, "<paragraph>   </paragraph>", MockParaphrase("<paragraph>   </paragraph>"))
}

func TestMockParaphraseKeepsAttributes(t *testing.T) {
	in := `<field name="Bên A">Công ty ABC</field>`
	assert.Equal(t, `<field name="Bên A">[Đã viết lại] Công ty ABC</field>`, MockParaphrase(in))
}

func TestMockParaphraseSkipsDeclaration(t *testing.T) {
	in := strings.Join([]string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		"<document>",
		"  <header>Hợp đồng mua bán</header>",
		"</document>",
	}, "\n")
	out := MockParaphrase(in)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<header>[Đã viết lại] Hợp đồng mua bán</header>")
	assert.NotContains(t, out, "[Đã viết lại] <document>")
}

func TestMockParaphraseMultipleTags(t *testing.T) {
	in := "<header>Một</header>\n<paragraph>Hai</paragraph>"
	want := "<header>[Đã viết lại] Một</header>\n<paragraph>[Đã viết lại] Hai</paragraph>"
	assert.Equal(t, want, MockParaphrase(in))
}

// Outer tags whose content includes markup never match; only the innermost
// text is rewritten. The textual heuristic is intentional.
func TestMockParaphraseNestedTags(t *testing.T) {
	in := `<section title="Điều 1"><paragraph>Nội dung</paragraph></section>`
	want := `<section title="Điều 1"><paragraph>[Đã viết lại] Nội dung</paragraph></section>`
	assert.Equal(t, want, MockParaphrase(in))
}

func TestMockParaphraseIdempotentInputWithoutTags(t *testing.T) {
	assert.Equal(t, "no markup here", MockParaphrase("no markup here"))
	assert.Equal(t, "", MockParaphrase(""))
}
