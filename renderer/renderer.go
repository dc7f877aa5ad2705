package renderer

import "github.com/ByLCY/txtpdf/layout"

// Renderer 将排版结果输出为最终文件，例如 PDF。
// Render 返回生成的二进制数据（例如 PDF 字节切片）以及可能的错误。
// 无法绘制的单行会被跳过并作为 layout.Warning 上报，不会中断渲染。
type Renderer interface {
	Render(doc *layout.Document) ([]byte, error)
}

// Backend 同时提供字体度量与渲染能力，排版与渲染必须使用同一后端以保证行宽一致。
type Backend interface {
	Renderer
	layout.FontMetrics
}
