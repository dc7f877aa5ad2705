package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/txtpdf/binding"
	"github.com/ByLCY/txtpdf/layout"
	"github.com/ByLCY/txtpdf/pagespec"
	"github.com/ByLCY/txtpdf/renderer"
	canvasrenderer "github.com/ByLCY/txtpdf/renderer/canvas"
	fpdfrenderer "github.com/ByLCY/txtpdf/renderer/fpdf"
)

// convert 串联读取、排版、渲染与写出。PDF 只会在排版与渲染都成功后写入。
func convert(s settings, stdout io.Writer, logger *log.Logger) error {
	if _, err := os.Stat(s.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file '%s' not found", s.Input)
		}
		return fmt.Errorf("无法访问输入文件 %s: %w", s.Input, err)
	}
	output := s.Output
	if output == "" {
		output = defaultOutputPath(s.Input)
	}

	geo, err := pagespec.Parse(s.Page)
	if err != nil {
		return err
	}
	margin := s.Margin
	if geo.Margin != nil {
		margin = *geo.Margin
	}
	if !(margin > 0) {
		return fmt.Errorf("%w: 边距必须为正数，当前 %g", layout.ErrInvalidGeometry, margin)
	}

	warn := func(w layout.Warning) { logger.Printf("warning: %s", w) }
	backend, err := newBackend(s.Backend, s.Font, warn)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(s.Input)
	if err != nil {
		return fmt.Errorf("读取输入文件 %s 失败: %w", s.Input, err)
	}

	vars := binding.FileVars(s.Input)
	doc, err := layout.Build(string(data), layout.Options{
		Metrics:  backend,
		PageSize: geo.Size,
		Margin:   margin,
		FontSize: s.FontSize,
		TabWidth: s.TabWidth,
		Meta: layout.DocumentMeta{
			Title:   binding.Interpolate(s.Title, vars),
			Author:  binding.Interpolate(s.Author, vars),
			Subject: binding.Interpolate(s.Subject, vars),
			Creator: "txtpdf " + version,
		},
		Warn: warn,
	})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}

	if s.Debug != "" {
		if err := writeDebug(doc, s.Debug); err != nil {
			return err
		}
	}

	pdfBytes, err := backend.Render(doc)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}

	fmt.Fprintf(stdout, "Successfully converted %s to %s\n", s.Input, output)
	return nil
}

// defaultOutputPath 去掉 .txt 后缀并追加 .pdf，输出到输入文件所在目录。
func defaultOutputPath(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), ".txt")
	return filepath.Join(filepath.Dir(input), base+".pdf")
}

func newBackend(name, font string, warn layout.WarningHandler) (renderer.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "canvas":
		return canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{Font: font, Warn: warn}), nil
	case "fpdf", "courier":
		return fpdfrenderer.NewRenderer(fpdfrenderer.Options{Warn: warn}), nil
	default:
		return nil, fmt.Errorf("未知的渲染后端：%s（可选 canvas、fpdf）", name)
	}
}

func writeDebug(doc *layout.Document, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebug(doc, debugPath); err != nil {
		return fmt.Errorf("输出调试文件失败: %w", err)
	}
	return nil
}
