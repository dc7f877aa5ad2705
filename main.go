package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

var errNoInput = errors.New("no input file specified")

// newRootCmd 构建命令行入口。每次调用都会创建独立的 viper 实例，避免测试之间共享状态。
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "txtpdf <input-file> [flags]",
		Short: "Convert text files to PDF",
		Long: `txtpdf converts a plain-text file into a paginated PDF using a fixed-width font.

Lines are wrapped at word boundaries to fit the page width, pages are added as
needed, and characters outside the Latin-1 repertoire are replaced or dropped.
The output defaults to the input path with its .txt extension replaced by .pdf.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return initConfig(v, cfgFile, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errNoInput
			}
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			s := loadSettings(v, args[0])
			logger := log.New(cmd.ErrOrStderr(), "txtpdf: ", 0)
			return convert(s, cmd.OutOrStdout(), logger)
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "output PDF file path (default: same as input with .pdf extension)")
	f.String("backend", defaultBackend, "PDF backend: canvas (embedded Go Mono) or fpdf (standard Courier)")
	f.String("page", "A4", `page geometry, e.g. "A4", "letter landscape", "210mm x 297mm margin 20mm"`)
	f.Float64("font-size", defaultFontSize, "font size in points")
	f.Float64("margin", defaultMargin, `page margin in points, must be > 0 (a "margin" in --page takes precedence)`)
	f.Int("tab-width", 0, "expand tabs to this many columns (0 strips tabs)")
	f.String("font", "", "TTF font file for the canvas backend (default: embedded Go Mono)")
	f.String("title", "${file.base}", "PDF title template")
	f.String("author", "", "PDF author")
	f.String("subject", "", "PDF subject template")
	f.String("debug", "", "write the laid-out document as .json or .yaml")
	cmd.PersistentFlags().String("config", "", "config file (default: ./txtpdf.yaml or ~/.config/txtpdf/txtpdf.yaml)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
