package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ByLCY/txtpdf/layout"
)

const (
	defaultBackend  = "canvas"
	defaultFontSize = layout.DefaultFontSize
	defaultMargin   = layout.DefaultMargin
)

// settings 汇总一次转换所需的全部参数，来源优先级：命令行 > 环境变量 > 配置文件 > 默认值。
type settings struct {
	Input    string
	Output   string
	Backend  string
	Page     string
	FontSize float64
	Margin   float64
	TabWidth int
	Font     string
	Title    string
	Author   string
	Subject  string
	Debug    string
}

func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("txtpdf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "txtpdf"))
		}
	}

	v.SetEnvPrefix("TXTPDF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("读取配置文件失败: %w", err)
	}
	fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}

func loadSettings(v *viper.Viper, input string) settings {
	return settings{
		Input:    input,
		Output:   v.GetString("output"),
		Backend:  v.GetString("backend"),
		Page:     v.GetString("page"),
		FontSize: v.GetFloat64("font-size"),
		Margin:   v.GetFloat64("margin"),
		TabWidth: v.GetInt("tab-width"),
		Font:     v.GetString("font"),
		Title:    v.GetString("title"),
		Author:   v.GetString("author"),
		Subject:  v.GetString("subject"),
		Debug:    v.GetString("debug"),
	}
}
