package paraphrase

import "fmt"

// promptTemplate is the fixed Vietnamese instruction prompt. It embeds the
// XML verbatim and asks the model to rewrite only the text inside the tags,
// keeping structure and meaning intact.
const promptTemplate = `Bạn là một chuyên gia về ngôn ngữ tiếng Việt.
Hãy paraphrase (viết lại) các đoạn văn bản tiếng Việt trong XML sau đây,
giữ nguyên cấu trúc XML và các thẻ, chỉ thay đổi nội dung văn bản bên trong các thẻ.
Đảm bảo giữ nguyên ý nghĩa nhưng sử dụng cách diễn đạt khác.

XML gốc:
%s

Trả về XML đã được paraphrase:`

// BuildPrompt renders the instruction prompt for the given XML document.
func BuildPrompt(xmlContent string) string {
	return fmt.Sprintf(promptTemplate, xmlContent)
}
