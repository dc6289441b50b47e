package captcha

import (
	"errors"
	"fmt"
)

// DefaultAlphabet 去掉了 0/O、1/I 等容易混淆的字符。
const DefaultAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ErrInvalidConfig 配置不合法时返回，由 New 在构造阶段抛出。
var ErrInvalidConfig = errors.New("captcha: invalid config")

// Config 验证码引擎配置，构造后不可变。
type Config struct {
	Width             int
	Height            int
	Length            int
	Alphabet          string
	BackgroundPalette []string
	ForegroundColor   string
	FontSize          float64
	FontFamily        string
	Noise             bool
	Lines             bool
}

// DefaultConfig 返回默认配置：120x50，4 位，白色粗体字，开启噪点与干扰线。
func DefaultConfig() Config {
	return Config{
		Width:             120,
		Height:            50,
		Length:            4,
		Alphabet:          DefaultAlphabet,
		BackgroundPalette: []string{"#667eea", "#764ba2", "#f093fb", "#f5576c", "#4facfe", "#00f2fe"},
		ForegroundColor:   "#ffffff",
		FontSize:          24,
		FontFamily:        "Arial, sans-serif",
		Noise:             true,
		Lines:             true,
	}
}

// Validate 校验配置。
func (c Config) Validate() error {
	switch {
	case c.Alphabet == "":
		return fmt.Errorf("%w: alphabet is empty", ErrInvalidConfig)
	case c.Length <= 0:
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidConfig, c.Length)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font size must be positive, got %v", ErrInvalidConfig, c.FontSize)
	case len(c.BackgroundPalette) == 0:
		return fmt.Errorf("%w: background palette is empty", ErrInvalidConfig)
	}
	return nil
}
