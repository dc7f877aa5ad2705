package layout

import (
	"fmt"
	"strings"
)

// monoMetrics 是测试用的等宽字体度量：每个字符 0.6em，遇到 reject 中的字符或 0xFF 以上的码点时返回错误。
type monoMetrics struct {
	reject string
	calls  int
}

func (m *monoMetrics) WidthOf(text string, fontSize float64) (float64, error) {
	m.calls++
	n := 0
	for _, r := range text {
		if r > 0xFF || strings.ContainsRune(m.reject, r) {
			return 0, fmt.Errorf("glyph %U not encodable", r)
		}
		n++
	}
	return advance(n, fontSize), nil
}

func advance(n int, fontSize float64) float64 {
	return float64(n) * 0.6 * fontSize
}
