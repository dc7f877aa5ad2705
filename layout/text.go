package layout

import (
	"strings"
	"unicode"

	"github.com/ByLCY/txtpdf/charset"
)

// Normalize 将 CRLF 与单独的 CR 统一转换为 LF。
func Normalize(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// SplitParagraphs 按 LF 切分段落，空字符串代表空行。
// strings.Join(SplitParagraphs(s), "\n") == s。
func SplitParagraphs(text string) []string {
	return strings.Split(text, "\n")
}

// ExpandTabs 将制表符替换为空格，对齐到下一个 width 的整数倍列。width <= 0 时原样返回。
func ExpandTabs(paragraph string, width int) string {
	if width <= 0 || !strings.ContainsRune(paragraph, '\t') {
		return paragraph
	}
	var b strings.Builder
	col := 0
	for _, r := range paragraph {
		if r == '\t' {
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// punctuation 将常见的“智能”标点映射为 ASCII。
var punctuation = map[rune]string{
	'‘': "'",
	'’': "'",
	'“': `"`,
	'”': `"`,
	'–': "-",
	'—': "-",
	'…': "...",
}

// Sanitize 仅保留目标字体 8 位编码可以表示的字符：
// 先剔除控制字符，再替换智能标点，最后丢弃可打印 ASCII 与 0xA0-0xFF 之外的字符。
// 该变换是幂等的。
func Sanitize(paragraph string) string {
	var b strings.Builder
	b.Grow(len(paragraph))
	for _, r := range paragraph {
		if unicode.IsControl(r) {
			continue
		}
		if rep, ok := punctuation[r]; ok {
			b.WriteString(rep)
			continue
		}
		if charset.Supported(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
