package layout

import "strings"

// DropFunc 在某个单词或行被丢弃时调用。
type DropFunc func(text string, err error)

// Wrap 使用贪心算法将一个已清洗的段落按单个空格拆词并折行，保证每行宽度不超过 maxWidth。
// 单个超宽单词独占一行，不在词内拆分。测量失败的单词会被丢弃并通过 drop 通知调用方。
// 空段落返回零行。
//
// 连续空格产生的空单词在行内保留为空格，因此行首缩进与行内对齐得以保留；
// 折行处的空格会被吞掉，新行不以空格开头；行尾空格被去除，纯空白的段落不产生任何行。
func Wrap(paragraph string, metrics FontMetrics, maxWidth, fontSize float64, drop DropFunc) []string {
	var (
		lines   []string
		line    string
		started bool
	)
	for _, word := range strings.Split(paragraph, " ") {
		if word == "" && !started && len(lines) > 0 {
			continue
		}
		candidate := word
		if started {
			candidate = line + " " + word
		}
		width, err := metrics.WidthOf(candidate, fontSize)
		if err != nil {
			if drop != nil {
				drop(word, err)
			}
			continue
		}
		if width <= maxWidth || !started {
			line, started = candidate, true
			continue
		}
		if done := strings.TrimRight(line, " "); done != "" {
			lines = append(lines, done)
		}
		line, started = word, word != ""
	}
	if done := strings.TrimRight(line, " "); started && done != "" {
		lines = append(lines, done)
	}
	return lines
}
