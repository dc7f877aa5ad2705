// Package binding 为 PDF 元信息模板提供 ${path.to.value} 插值。
package binding

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 支持 ${path|默认值}：路径不存在或值为空时使用默认值；否则保留原占位符。
func Interpolate(text string, data map[string]any) string {
	if !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		path, fallback, hasFallback := strings.Cut(groups[1], "|")
		path = strings.TrimSpace(path)
		if path == "" {
			return match
		}
		if val, ok := resolvePath(data, path); ok {
			if s := fmt.Sprint(val); s != "" {
				return s
			}
		}
		if hasFallback {
			return strings.TrimSpace(fallback)
		}
		return match
	})
}

// FileVars 构造描述输入文件的模板变量：file.path、file.name、file.base、file.dir 与 now。
func FileVars(path string) map[string]any {
	name := filepath.Base(path)
	return map[string]any{
		"file": map[string]any{
			"path": path,
			"name": name,
			"base": strings.TrimSuffix(name, filepath.Ext(name)),
			"dir":  filepath.Dir(path),
		},
		"now": time.Now().Format("2006-01-02"),
	}
}

func resolvePath(data map[string]any, path string) (any, bool) {
	var current any = data
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[strings.TrimSpace(segment)]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
