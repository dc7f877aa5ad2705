// Package charset 检查并转换目标等宽字体所支持的 8 位拉丁字符集。
package charset

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// UnsupportedRuneError 表示文本中含有无法编码的字符。
type UnsupportedRuneError struct {
	Rune   rune
	Offset int // 字节偏移
}

func (e *UnsupportedRuneError) Error() string {
	return fmt.Sprintf("字符 %q (%U) 位于偏移 %d，超出 Latin-1 可打印范围", e.Rune, e.Rune, e.Offset)
}

// Supported reports whether r is printable ASCII or in 0xA0-0xFF.
func Supported(r rune) bool {
	return (r >= 0x20 && r <= 0x7E) || (r >= 0xA0 && r <= 0xFF)
}

// Validate 检查 s 中每个字符都是可打印的 Latin-1 字符。
func Validate(s string) error {
	for i, r := range s {
		if !Supported(r) {
			return &UnsupportedRuneError{Rune: r, Offset: i}
		}
	}
	return nil
}

// ToWinAnsi 将 UTF-8 文本转换为 Windows-1252 字节串，供 PDF 标准字体使用。
func ToWinAnsi(s string) (string, error) {
	if err := Validate(s); err != nil {
		return "", err
	}
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("转换为 WinAnsi 编码失败: %w", err)
	}
	return out, nil
}
