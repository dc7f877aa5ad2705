package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// WriteDebug 将排版结果输出为 JSON 或 YAML（按扩展名 .yaml/.yml 判断），便于调试或可视化。
func WriteDebug(doc *Document, path string) error {
	if doc == nil {
		return nil
	}
	data, err := MarshalDebug(doc, filepath.Ext(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// MarshalDebug 按格式序列化文档，ext 取 ".json"、".yaml" 或 ".yml"，其余按 JSON 处理。
func MarshalDebug(doc *Document, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("序列化 YAML 失败: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("序列化 JSON 失败: %w", err)
		}
		return data, nil
	}
}
