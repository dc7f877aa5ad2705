package fonts

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
)

// DefaultMonospace 是内置等宽字体的名称。
const DefaultMonospace = "embed:gomono"

// Load 返回字体字节数据。src 为空或 "embed:gomono" 时返回内置的 Go Mono，否则按文件路径读取 TTF。
func Load(src string) ([]byte, error) {
	switch strings.TrimSpace(src) {
	case "", DefaultMonospace, "gomono":
		return gomono.TTF, nil
	}
	if strings.HasPrefix(src, "embed:") {
		return nil, fmt.Errorf("找不到内置字体 %s", src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", src, err)
	}
	return data, nil
}
