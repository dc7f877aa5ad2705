package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/txtpdf/charset"
	"github.com/ByLCY/txtpdf/fonts"
	"github.com/ByLCY/txtpdf/layout"
	"github.com/ByLCY/txtpdf/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
// Layout works in points; canvas works in millimeters, so every coordinate is converted at the boundary.
type Renderer struct {
	fontSrc string
	warn    layout.WarningHandler

	fontMu         sync.Mutex
	family         *canvas.FontFamily
	fallbackFamily *canvas.FontFamily
}

var _ renderer.Backend = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Font string                // TTF path, empty for the embedded Go Mono
	Warn layout.WarningHandler // receives dropped lines and font fallbacks
}

// NewRenderer creates a canvas-based renderer using the embedded monospace font.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with an optional font and warning handler.
func NewRendererWithOptions(opts Options) *Renderer {
	return &Renderer{
		fontSrc: opts.Font,
		warn:    opts.Warn,
	}
}

// WidthOf 实现 layout.FontMetrics：先检查字符集，再以 pt 返回文本宽度。
func (r *Renderer) WidthOf(text string, fontSize float64) (float64, error) {
	if err := charset.Validate(text); err != nil {
		return 0, err
	}
	face, err := r.fontFace(fontSize, layout.Black)
	if err != nil {
		return 0, err
	}
	return toPt(face.TextWidth(text)), nil
}

// Render renders the document into a PDF byte slice.
func (r *Renderer) Render(doc *layout.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	var buf bytes.Buffer
	first := doc.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	applyMeta(writer, doc.Meta)
	for i, page := range doc.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianI) // 原点在左下角，与排版坐标一致

		if err := r.drawPage(ctx, i+1, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

func (r *Renderer) drawPage(ctx *canvas.Context, number int, page layout.Page) error {
	for _, ins := range page.Texts {
		if err := charset.Validate(ins.Text); err != nil {
			r.report(layout.NewWarning(number, 0, ins.Text, err))
			continue
		}
		face, err := r.fontFace(ins.FontSize, ins.Color)
		if err != nil {
			return err
		}
		line := canvas.NewTextLine(face, ins.Text, canvas.Left)
		// 指令中的 Y 即基线位置
		ctx.DrawText(toMm(ins.X), toMm(ins.Y), line)
	}
	return nil
}

func (r *Renderer) report(w layout.Warning) {
	if r.warn != nil {
		r.warn(w)
	}
}

func (r *Renderer) fontFace(size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(size, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	family := canvas.NewFontFamily("txtpdf-mono")
	err := loadFontIntoFamily(family, r.fontSrc)
	if err == nil {
		r.family = family
		return family, nil
	}
	if r.fontSrc == "" {
		return nil, fmt.Errorf("加载内置等宽字体失败: %w", err)
	}
	fallback, fbErr := r.fallback()
	if fbErr != nil {
		return nil, err
	}
	r.report(layout.NewWarning(0, 0, r.fontSrc, fmt.Errorf("字体不可用，改用内置 Go Mono: %w", err)))
	r.family = fallback
	return fallback, nil
}

func loadFontIntoFamily(family *canvas.FontFamily, src string) error {
	data, err := fonts.Load(src)
	if err != nil {
		return err
	}
	return family.LoadFont(data, 0, canvas.FontRegular)
}

func (r *Renderer) fallback() (*canvas.FontFamily, error) {
	if r.fallbackFamily != nil {
		return r.fallbackFamily, nil
	}
	family := canvas.NewFontFamily("txtpdf-fallback")
	if err := loadFontIntoFamily(family, fonts.DefaultMonospace); err != nil {
		return nil, err
	}
	r.fallbackFamily = family
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }
