// Package captcha 生成、渲染并校验 SVG 图形验证码。
//
// Engine 保存配置以及最近一次生成的验证码，只有最新的验证码可以通过校验。
// Engine 不是并发安全的：在多请求的服务端场景下，每个会话/表单应持有各自的实例，
// 多个请求共用同一实例并发调用 Generate 属于误用，先生成的验证码会被悄悄覆盖。
package captcha

import (
	"math/rand/v2"
	"net/url"
	"strings"
)

// Source 随机数来源，*rand.Rand (math/rand/v2) 即满足该接口。
// 测试中可注入固定种子的 PCG 以得到确定的输出。
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Captcha 一次生成的完整验证码。
type Captcha struct {
	Code    string `json:"code"`
	SVG     string `json:"svg"`
	DataURI string `json:"data_uri"`
}

// Engine 验证码引擎。
type Engine struct {
	cfg      Config
	alphabet []rune
	rnd      Source
	code     string
}

// Option 引擎构造选项。
type Option func(*Engine)

// WithSource 注入随机数来源。
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.rnd = src
		}
	}
}

// New 创建引擎，配置不合法时立即返回错误。
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.BackgroundPalette = append([]string(nil), cfg.BackgroundPalette...)
	e := &Engine{
		cfg:      cfg,
		alphabet: []rune(cfg.Alphabet),
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config 返回引擎配置的副本。
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.BackgroundPalette = append([]string(nil), e.cfg.BackgroundPalette...)
	return cfg
}

// Generate 生成新验证码并覆盖当前验证码。字符可重复。
func (e *Engine) Generate() string {
	buf := make([]rune, e.cfg.Length)
	for i := range buf {
		buf[i] = e.alphabet[e.rnd.IntN(len(e.alphabet))]
	}
	e.code = string(buf)
	return e.code
}

// Render 将给定验证码渲染为 SVG，不改变引擎状态。
func (e *Engine) Render(code string) string {
	return e.render(code)
}

// GenerateAndRender 生成新验证码并渲染，同时返回可直接嵌入的 data URI。
func (e *Engine) GenerateAndRender() Captcha {
	code := e.Generate()
	svg := e.Render(code)
	return Captcha{
		Code:    code,
		SVG:     svg,
		DataURI: DataURI(svg),
	}
}

// Verify 校验用户输入。未生成过验证码或输入为空时返回 false。
// 校验不会消耗验证码，失败后仍可重试。
func (e *Engine) Verify(input string, caseSensitive bool) bool {
	if input == "" || e.code == "" {
		return false
	}
	if caseSensitive {
		return input == e.code
	}
	return strings.ToUpper(input) == strings.ToUpper(e.code)
}

// CurrentCode 返回当前验证码，未生成时为空字符串。
func (e *Engine) CurrentCode() string {
	return e.code
}

// Batch 连续生成 n 个验证码，用于调试。结束后当前验证码为最后一个。
func (e *Engine) Batch(n int) []Captcha {
	if n <= 0 {
		return []Captcha{}
	}
	out := make([]Captcha, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, e.GenerateAndRender())
	}
	return out
}

// DataURI 将 SVG 编码为 data:image/svg+xml URI。
func DataURI(svg string) string {
	return "data:image/svg+xml," + url.PathEscape(svg)
}
