package layout

import "errors"

// 默认排版参数（pt）。
const (
	DefaultFontSize         = 12.0
	DefaultMargin           = 50.0
	DefaultLineHeightFactor = 1.2
)

var (
	// ErrNoMetrics 表示调用方没有提供字体度量后端。
	ErrNoMetrics = errors.New("layout: 缺少字体度量后端 FontMetrics")
	// ErrInvalidGeometry 表示页面尺寸、边距或字号无法容纳任何一行文本。
	ErrInvalidGeometry = errors.New("layout: 页面几何参数无效")
)

// FontMetrics 负责测量文本宽度。文本中含有字体无法编码的字符时返回错误。
type FontMetrics interface {
	WidthOf(text string, fontSize float64) (float64, error)
}

// WarningHandler 接收排版或渲染过程中的可恢复问题。
type WarningHandler func(Warning)

// Options 配置一次排版所需的依赖与参数。零值字段使用默认值。
type Options struct {
	Metrics          FontMetrics
	PageSize         PageSize
	Margin           float64
	FontSize         float64
	LineHeightFactor float64
	Color            Color
	TabWidth         int // >0 时将制表符展开为空格，否则按控制字符剔除
	Meta             DocumentMeta
	Warn             WarningHandler
}

func (o Options) withDefaults() Options {
	if o.PageSize.Width == 0 && o.PageSize.Height == 0 {
		o.PageSize = SizeA4
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.LineHeightFactor == 0 {
		o.LineHeightFactor = DefaultLineHeightFactor
	}
	return o
}

// LineHeight 返回行高（fontSize * factor）。
func (o Options) LineHeight() float64 {
	o = o.withDefaults()
	return o.FontSize * o.LineHeightFactor
}

// MaxWidth 返回可用于文本的最大行宽。
func (o Options) MaxWidth() float64 {
	o = o.withDefaults()
	return o.PageSize.Width - 2*o.Margin
}
