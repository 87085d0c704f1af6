package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Batch   BatchConfig   `mapstructure:"batch"`
	QR      QRConfig      `mapstructure:"qr"`
	Render  RenderConfig  `mapstructure:"render"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type BatchConfig struct {
	Count      int    `mapstructure:"count"`
	CodeLength int    `mapstructure:"code_length"`
	OutputDir  string `mapstructure:"output_dir"`
	Format     string `mapstructure:"format"`
}

type QRConfig struct {
	BoxSize int `mapstructure:"box_size"`
	Border  int `mapstructure:"border"`
}

type RenderConfig struct {
	Padding    int     `mapstructure:"padding"`
	TextGap    int     `mapstructure:"text_gap"`
	FontSize   float64 `mapstructure:"font_size"`
	FontPath   string  `mapstructure:"font_path"`
	Background string  `mapstructure:"background"`
	Foreground string  `mapstructure:"foreground"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// Load reads the config file at path. The file is optional: every key has a
// built-in default, so a missing file yields the default configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("batch.count", 24)
	v.SetDefault("batch.code_length", 5)
	v.SetDefault("batch.output_dir", "qr_codes")
	v.SetDefault("batch.format", "png")

	v.SetDefault("qr.box_size", 10)
	v.SetDefault("qr.border", 4)

	v.SetDefault("render.padding", 20)
	v.SetDefault("render.text_gap", 10)
	v.SetDefault("render.font_size", 25)
	v.SetDefault("render.font_path", "")
	v.SetDefault("render.background", "white")
	v.SetDefault("render.foreground", "black")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.file_path", "")
}
