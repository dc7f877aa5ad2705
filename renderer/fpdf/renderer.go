// Package fpdfrenderer 使用 codeberg.org/go-pdf/fpdf 的 PDF 标准字体 Courier 输出文档。
// 标准字体不需要嵌入，文本以 WinAnsi (Windows-1252) 编码写入。
package fpdfrenderer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ByLCY/txtpdf/charset"
	"github.com/ByLCY/txtpdf/layout"
	"github.com/ByLCY/txtpdf/renderer"
)

const fontFamily = "Courier"

// Renderer 同时实现 layout.FontMetrics 与 renderer.Renderer。
type Renderer struct {
	warn layout.WarningHandler

	mu      sync.Mutex
	measure *fpdf.Fpdf
}

var _ renderer.Backend = (*Renderer)(nil)

// Options configures the fpdf renderer.
type Options struct {
	Warn layout.WarningHandler
}

// NewRenderer creates a Courier-based renderer.
func NewRenderer(opts Options) *Renderer {
	m := fpdf.New("P", "pt", "A4", "")
	m.SetFont(fontFamily, "", layout.DefaultFontSize)
	return &Renderer{warn: opts.Warn, measure: m}
}

// WidthOf 返回文本在 Courier 下的宽度（pt）。无法以 WinAnsi 编码的文本返回错误。
func (r *Renderer) WidthOf(text string, fontSize float64) (float64, error) {
	encoded, err := charset.ToWinAnsi(text)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.measure.SetFontSize(fontSize)
	w := r.measure.GetStringWidth(encoded)
	if err := r.measure.Error(); err != nil {
		return 0, fmt.Errorf("测量文本宽度失败: %w", err)
	}
	return w, nil
}

// Render renders the document into a PDF byte slice.
func (r *Renderer) Render(doc *layout.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	first := doc.Pages[0]
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: first.Width, Ht: first.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	applyMeta(pdf, doc.Meta)

	for i, page := range doc.Pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for _, ins := range page.Texts {
			encoded, err := charset.ToWinAnsi(ins.Text)
			if err != nil {
				r.report(layout.NewWarning(i+1, 0, ins.Text, err))
				continue
			}
			pdf.SetFont(fontFamily, "", ins.FontSize)
			pdf.SetTextColor(ins.Color.R, ins.Color.G, ins.Color.B)
			// fpdf 的原点在左上角，基线需要翻转
			pdf.Text(ins.X, page.Height-ins.Y, encoded)
		}
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("绘制第 %d 页失败: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(pdf *fpdf.Fpdf, meta layout.DocumentMeta) {
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(meta.Creator, true)
	if len(meta.Keywords) > 0 {
		pdf.SetKeywords(strings.Join(meta.Keywords, ", "), true)
	}
}

func (r *Renderer) report(w layout.Warning) {
	if r.warn != nil {
		r.warn(w)
	}
}
