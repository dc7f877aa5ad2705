// Package pagespec 解析页面几何规格，例如 "A4"、"letter landscape"、"210mm x 297mm margin 20mm"。
package pagespec

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/txtpdf/layout"
)

var (
	specLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n,]+`},
		{Name: "Length", Pattern: `(?:\d+\.\d+|\d+|\.\d+)(?:pt|mm|cm|in)?`},
		{Name: "Keyword", Pattern: `\b(?:portrait|landscape|margin)\b`},
		{Name: "Times", Pattern: `[x×*]`},
		{Name: "Ident", Pattern: `[a-z][a-z0-9_-]*`},
	})

	specParser = participle.MustBuild[Spec](
		participle.Lexer(specLexer),
		participle.Elide("Whitespace"),
	)
)

// Spec is the AST of a page geometry string.
type Spec struct {
	Pos         lexer.Position `parser:"" json:"-"`
	Size        *Size          `parser:"@@?"`
	Orientation string         `parser:"@( 'portrait' | 'landscape' )?"`
	Margin      *Length        `parser:"( 'margin' @Length )?"`
}

// Size is either a named preset or an explicit width x height.
type Size struct {
	Preset string  `parser:"  @Ident"`
	Width  *Length `parser:"| @Length Times"`
	Height *Length `parser:"  @Length"`
}

// Length captures a number with an optional unit suffix.
type Length struct {
	layout.Length
}

// Capture implements participle.Capture.
func (l *Length) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("length capture requires value")
	}
	parsed, err := layout.ParseLength(values[0])
	if err != nil {
		return err
	}
	l.Length = parsed
	return nil
}

// Geometry 是解析后的页面尺寸与可选边距（pt）。
type Geometry struct {
	Size   layout.PageSize
	Margin *float64
}

var presets = map[string]layout.PageSize{
	"a3":     layout.SizeA3,
	"a4":     layout.SizeA4,
	"a5":     layout.SizeA5,
	"letter": layout.SizeLetter,
	"legal":  layout.SizeLegal,
}

// ParseString 解析规格并返回 AST。输入不区分大小写。
func ParseString(input string) (*Spec, error) {
	return specParser.ParseString("", strings.ToLower(input))
}

// Parse 解析规格并换算为 pt。未指定尺寸时使用 A4。
func Parse(input string) (Geometry, error) {
	if strings.TrimSpace(input) == "" {
		return Geometry{Size: layout.SizeA4}, nil
	}
	spec, err := ParseString(input)
	if err != nil {
		return Geometry{}, fmt.Errorf("解析页面规格 %q 失败: %w", input, err)
	}
	return spec.Resolve()
}

// Resolve 将 AST 换算为页面几何。
func (s *Spec) Resolve() (Geometry, error) {
	geo := Geometry{Size: layout.SizeA4}
	if s.Size != nil {
		size, err := s.Size.resolve()
		if err != nil {
			return Geometry{}, err
		}
		geo.Size = size
	}
	switch s.Orientation {
	case "landscape":
		geo.Size = geo.Size.Landscape()
	case "portrait":
		geo.Size = geo.Size.Portrait()
	}
	if s.Margin != nil {
		m := s.Margin.ToPT()
		geo.Margin = &m
	}
	return geo, nil
}

func (s *Size) resolve() (layout.PageSize, error) {
	if s.Preset != "" {
		size, ok := presets[s.Preset]
		if !ok {
			return layout.PageSize{}, fmt.Errorf("暂不支持的纸张尺寸：%s", s.Preset)
		}
		return size, nil
	}
	if s.Width == nil || s.Height == nil {
		return layout.PageSize{}, fmt.Errorf("页面尺寸需要同时指定宽和高")
	}
	w, h := s.Width.ToPT(), s.Height.ToPT()
	if w <= 0 || h <= 0 {
		return layout.PageSize{}, fmt.Errorf("页面尺寸必须为正数：%s x %s", s.Width, s.Height)
	}
	return layout.PageSize{Width: w, Height: h}, nil
}
