package layout

import (
	"fmt"
	"math"
)

// Build 将纯文本排版为多页文档：规范化换行、切分段落、清洗字符、逐段折行，
// 并按页面剩余空间生成绘制指令。首页在处理文本前创建，后续页面仅在游标低于下边距时创建。
func Build(text string, opts Options) (*Document, error) {
	if opts.Metrics == nil {
		return nil, ErrNoMetrics
	}
	opts = opts.withDefaults()
	if err := validateGeometry(opts); err != nil {
		return nil, err
	}

	c := newCursor(opts)
	maxWidth := opts.MaxWidth()
	paragraphs := SplitParagraphs(Normalize(text))
	for i, raw := range paragraphs {
		paragraph := Sanitize(ExpandTabs(raw, opts.TabWidth))
		index := i + 1
		lines := Wrap(paragraph, opts.Metrics, maxWidth, opts.FontSize, func(word string, err error) {
			c.warn(NewWarning(0, index, word, err))
		})
		if len(lines) == 0 {
			c.skipLine()
		}
		for _, line := range lines {
			c.drawLine(line)
		}
		if i < len(paragraphs)-1 {
			c.paragraphGap()
		}
	}
	return c.doc, nil
}

// validateGeometry 拒绝无法容纳一行文本的几何参数。比较写成 !(x > 0) 的形式以同时拒绝 NaN。
func validateGeometry(opts Options) error {
	switch {
	case !finite(opts.FontSize, opts.LineHeightFactor, opts.Margin, opts.PageSize.Width, opts.PageSize.Height):
		return fmt.Errorf("%w: 字号、行高、边距与页面尺寸必须是有限数值", ErrInvalidGeometry)
	case !(opts.FontSize > 0):
		return fmt.Errorf("%w: 字号必须为正数，当前 %g", ErrInvalidGeometry, opts.FontSize)
	case !(opts.LineHeightFactor > 0):
		return fmt.Errorf("%w: 行高倍数必须为正数，当前 %g", ErrInvalidGeometry, opts.LineHeightFactor)
	case !(opts.Margin >= 0):
		return fmt.Errorf("%w: 边距不能为负数，当前 %g", ErrInvalidGeometry, opts.Margin)
	case !(opts.MaxWidth() > 0):
		return fmt.Errorf("%w: 页面宽度 %g 不足以容纳左右边距 %g", ErrInvalidGeometry, opts.PageSize.Width, opts.Margin)
	case !(opts.PageSize.Height >= 2*opts.Margin):
		return fmt.Errorf("%w: 页面高度 %g 不足以容纳上下边距 %g", ErrInvalidGeometry, opts.PageSize.Height, opts.Margin)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// cursor 持有一次 Build 调用内的当前页与纵向位置。
type cursor struct {
	doc        *Document
	size       PageSize
	margin     float64
	lineHeight float64
	fontSize   float64
	color      Color
	y          float64
	handler    WarningHandler
}

func newCursor(opts Options) *cursor {
	c := &cursor{
		doc:        &Document{Meta: opts.Meta},
		size:       opts.PageSize,
		margin:     opts.Margin,
		lineHeight: opts.LineHeight(),
		fontSize:   opts.FontSize,
		color:      opts.Color,
		handler:    opts.Warn,
	}
	c.newPage()
	return c
}

func (c *cursor) newPage() {
	c.doc.Pages = append(c.doc.Pages, Page{Width: c.size.Width, Height: c.size.Height})
	c.y = c.top()
}

func (c *cursor) top() float64 { return c.size.Height - c.margin }

func (c *cursor) curr() *Page { return &c.doc.Pages[len(c.doc.Pages)-1] }

// ensureSpace 在游标低于下边距时换页。
func (c *cursor) ensureSpace() {
	if c.y < c.margin {
		c.newPage()
	}
}

func (c *cursor) drawLine(text string) {
	c.ensureSpace()
	page := c.curr()
	page.Texts = append(page.Texts, DrawInstruction{
		Text:     text,
		X:        c.margin,
		Y:        c.y,
		FontSize: c.fontSize,
		Color:    c.color,
	})
	c.y -= c.lineHeight
}

// skipLine 为空段落预留一行高度，不生成绘制指令。
func (c *cursor) skipLine() {
	c.ensureSpace()
	c.y -= c.lineHeight
}

func (c *cursor) paragraphGap() {
	c.y -= c.lineHeight / 2
	c.ensureSpace()
}

func (c *cursor) warn(w Warning) {
	c.doc.Warnings = append(c.doc.Warnings, w)
	if c.handler != nil {
		c.handler(w)
	}
}
