package docxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySectionHeaders(t *testing.T) {
	tests := []struct {
		line  string
		title string
	}{
		{"Điều 1: Đối tượng hợp đồng", "Điều 1: Đối tượng hợp đồng"},
		{"điều 2: Giá trị", "điều 2: Giá trị"},
		{"Mục A", "Mục A"},
		{"Phần thứ nhất", "Phần thứ nhất"},
		{"Chương II", "Chương II"},
		{"# Tiêu đề", "Tiêu đề"},
		{"## Tiêu đề phụ", "Tiêu đề phụ"},
	}
	for _, tc := range tests {
		got := Classify(tc.line)
		require.Equal(t, SectionHeader, got.Kind, "line %q", tc.line)
		assert.Equal(t, tc.title, got.Title, "line %q", tc.line)
	}
}

func TestClassifyFields(t *testing.T) {
	tests := []struct {
		line  string
		key   string
		value string
	}{
		{"Bên A: Công ty TNHH ABC", "Bên A", "Công ty TNHH ABC"},
		{"Bên B: Ông Nguyễn Văn A", "Bên B", "Ông Nguyễn Văn A"},
		{"Địa chỉ: 123 Đường ABC", "Địa chỉ", "123 Đường ABC"},
		{"Tổng giá trị: 100.000.000 VNĐ", "Tổng giá trị", "100.000.000 VNĐ"},
		{"Thanh toán: 50% khi ký", "Thanh toán", "50% khi ký"},
		{"Email: test@example.com", "Email", "test@example.com"},
		// Value keeps everything after the first colon.
		{"Time: 10:30:00", "Time", "10:30:00"},
		// Value may be empty.
		{"Note:", "Note", ""},
	}
	for _, tc := range tests {
		got := Classify(tc.line)
		require.Equal(t, FieldLine, got.Kind, "line %q", tc.line)
		assert.Equal(t, tc.key, got.Key, "line %q", tc.line)
		assert.Equal(t, tc.value, got.Value, "line %q", tc.line)
	}
}

// The generic alphabetic-token rule intentionally matches ordinary prose that
// opens with a capitalized word and a colon. Downstream consumers depend on
// this, so it is pinned rather than corrected.
func TestClassifyProseColonAmbiguity(t *testing.T) {
	got := Classify("Important: read this carefully before signing")
	require.Equal(t, FieldLine, got.Kind)
	assert.Equal(t, "Important", got.Key)
	assert.Equal(t, "read this carefully before signing", got.Value)
}

func TestClassifyPlain(t *testing.T) {
	tests := []struct {
		line     string
		hasAlnum bool
	}{
		{"Nội dung điều 1.", true},
		{"Hợp đồng mua bán", true},
		{"some plain prose without colon", true},
		{"---", false},
		{"***", false},
		{"...", false},
		{"42", true},
	}
	for _, tc := range tests {
		got := Classify(tc.line)
		require.Equal(t, PlainLine, got.Kind, "line %q", tc.line)
		assert.Equal(t, tc.line, got.Text)
		assert.Equal(t, tc.hasAlnum, got.HasAlnum, "line %q", tc.line)
	}
}

// A Vietnamese word with a diacritic inside breaks the ASCII-only token rule:
// "Nội:" does not classify as a field even though it ends in a colon.
func TestClassifyNonASCIITokenNotField(t *testing.T) {
	got := Classify("Nội: dung")
	assert.Equal(t, PlainLine, got.Kind)
}
