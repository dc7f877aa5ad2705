package layout

import "fmt"

// 该文件定义排版结果，供布局计算、渲染与调试输出共用。
// 所有坐标与尺寸均以点（pt）为单位，y 轴以页面底边为原点向上增长（与 PDF 用户空间一致）。

// Document 保存排版后的全部页面。页面只会被追加，不会被删除。
type Document struct {
	Pages    []Page       `json:"pages" yaml:"pages"`
	Meta     DocumentMeta `json:"meta" yaml:"meta"`
	Warnings []Warning    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// PageCount 返回当前页数。
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Page 记录页面尺寸与按顺序绘制的文本指令。
// 同一文档内所有页面的尺寸相同。
type Page struct {
	Width  float64           `json:"width" yaml:"width"`
	Height float64           `json:"height" yaml:"height"`
	Texts  []DrawInstruction `json:"texts" yaml:"texts"`
}

// DrawInstruction 表示一行已经确定坐标的单行文本。Y 为基线位置。
type DrawInstruction struct {
	Text     string  `json:"text" yaml:"text"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	FontSize float64 `json:"fontSize" yaml:"fontSize"`
	Color    Color   `json:"color" yaml:"color"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// Black 是默认文字颜色。
var Black = Color{}

// PageSize 描述页面宽高（pt）。
type PageSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Landscape 返回宽高互换后的尺寸。
func (s PageSize) Landscape() PageSize {
	if s.Width >= s.Height {
		return s
	}
	return PageSize{Width: s.Height, Height: s.Width}
}

// Portrait 返回竖版尺寸。
func (s PageSize) Portrait() PageSize {
	if s.Width <= s.Height {
		return s
	}
	return PageSize{Width: s.Height, Height: s.Width}
}

// Common paper sizes in points.
var (
	SizeA3     = PageSize{Width: 841.89, Height: 1190.55}
	SizeA4     = PageSize{Width: 595.28, Height: 841.89}
	SizeA5     = PageSize{Width: 419.53, Height: 595.28}
	SizeLetter = PageSize{Width: 612, Height: 792}
	SizeLegal  = PageSize{Width: 612, Height: 1008}
)

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title" yaml:"title"`
	Author   string   `json:"author" yaml:"author"`
	Subject  string   `json:"subject" yaml:"subject"`
	Creator  string   `json:"creator" yaml:"creator"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Warning 记录一次可恢复的问题（被丢弃的单词或行）。Page 与 Paragraph 从 1 开始，0 表示未知。
type Warning struct {
	Page      int    `json:"page,omitempty" yaml:"page,omitempty"`
	Paragraph int    `json:"paragraph,omitempty" yaml:"paragraph,omitempty"`
	Text      string `json:"text" yaml:"text"`
	Err       error  `json:"-" yaml:"-"`
	Message   string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	msg := w.Message
	if w.Err != nil {
		msg = w.Err.Error()
	}
	switch {
	case w.Page > 0 && w.Paragraph > 0:
		return fmt.Sprintf("page %d, paragraph %d: dropped %q: %s", w.Page, w.Paragraph, w.Text, msg)
	case w.Page > 0:
		return fmt.Sprintf("page %d: dropped %q: %s", w.Page, w.Text, msg)
	case w.Paragraph > 0:
		return fmt.Sprintf("paragraph %d: dropped %q: %s", w.Paragraph, w.Text, msg)
	default:
		return fmt.Sprintf("dropped %q: %s", w.Text, msg)
	}
}

// NewWarning 构造 Warning，并把错误信息同步到 Message 以便序列化。
func NewWarning(page, paragraph int, text string, err error) Warning {
	w := Warning{Page: page, Paragraph: paragraph, Text: text, Err: err}
	if err != nil {
		w.Message = err.Error()
	}
	return w
}
