package docxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapePassthrough(t *testing.T) {
	for _, s := range []string{
		"",
		"plain text",
		"Hợp đồng mua bán",
		"123 Đường Nguyễn Huệ, Quận 1, TP.HCM",
	} {
		assert.Equal(t, s, Escape(s))
	}
}

func TestEscapeReservedCharacters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a & b", "a &amp; b"},
		{"a < b", "a &lt; b"},
		{"a > b", "a &gt; b"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&apos;s"},
		{`<tag attr="v">&'</tag>`, "&lt;tag attr=&quot;v&quot;&gt;&amp;&apos;&lt;/tag&gt;"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Escape(tc.in), "input %q", tc.in)
	}
}

func TestEscapeAppliedOnce(t *testing.T) {
	// An already-escaped entity only gets its own ampersand re-escaped;
	// the replacement output is never rescanned.
	assert.Equal(t, "&amp;lt;", Escape("&lt;"))
	assert.Equal(t, "&amp;amp;", Escape("&amp;"))
}

func TestEscapeDistinguishesInputs(t *testing.T) {
	// Distinct reserved-character combinations stay distinct.
	inputs := []string{"&", "<", ">", `"`, "'", "&<", "<&", "&&"}
	seen := map[string]string{}
	for _, in := range inputs {
		out := Escape(in)
		prev, dup := seen[out]
		assert.False(t, dup, "inputs %q and %q both escape to %q", prev, in, out)
		seen[out] = in
	}
}
