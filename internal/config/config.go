package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"perfect-pic-gallery/internal/captcha"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
	usedFile  atomic.Value
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Captcha   CaptchaConfig   `mapstructure:"captcha"`
	Gallery   GalleryConfig   `mapstructure:"gallery"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Request   RequestConfig   `mapstructure:"request"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	Mode           string `mapstructure:"mode"`
	TrustedProxies string `mapstructure:"trusted_proxies"`
	// StaticCacheControl 前端静态资源的 Cache-Control 值
	StaticCacheControl string `mapstructure:"static_cache_control"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
	Seed     bool   `mapstructure:"seed"` // 空库时写入示例数据
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`   // console, json
	Director   string `mapstructure:"director"` // 为空时只输出到终端
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // 天
	Compress   bool   `mapstructure:"compress"`
}

// CaptchaConfig 图形验证码配置，字段与 captcha.Config 一一对应。
type CaptchaConfig struct {
	Width             int      `mapstructure:"width"`
	Height            int      `mapstructure:"height"`
	Length            int      `mapstructure:"length"`
	Alphabet          string   `mapstructure:"alphabet"`
	BackgroundPalette []string `mapstructure:"background_palette"`
	ForegroundColor   string   `mapstructure:"foreground_color"`
	FontSize          float64  `mapstructure:"font_size"`
	FontFamily        string   `mapstructure:"font_family"`
	Noise             bool     `mapstructure:"noise"`
	Lines             bool     `mapstructure:"lines"`
	CaseSensitive     bool     `mapstructure:"case_sensitive"`
	TTLSeconds        int      `mapstructure:"ttl_seconds"`
	MaxSessions       int      `mapstructure:"max_sessions"`
}

type GalleryConfig struct {
	PageSize     int `mapstructure:"page_size"`
	HistoryLimit int `mapstructure:"history_limit"`
	RelatedLimit int `mapstructure:"related_limit"`
}

type RateLimitConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	CaptchaRPS   float64 `mapstructure:"captcha_rps"`
	CaptchaBurst int     `mapstructure:"captcha_burst"`
	AuthRPS      float64 `mapstructure:"auth_rps"`
	AuthBurst    int     `mapstructure:"auth_burst"`
}

type RequestConfig struct {
	MaxBodyMB int `mapstructure:"max_body_mb"`
}

// EngineConfig 转换为验证码引擎配置。
func (c CaptchaConfig) EngineConfig() captcha.Config {
	return captcha.Config{
		Width:             c.Width,
		Height:            c.Height,
		Length:            c.Length,
		Alphabet:          c.Alphabet,
		BackgroundPalette: append([]string(nil), c.BackgroundPalette...),
		ForegroundColor:   c.ForegroundColor,
		FontSize:          c.FontSize,
		FontFamily:        c.FontFamily,
		Noise:             c.Noise,
		Lines:             c.Lines,
	}
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

// Set 直接替换当前配置，供测试与嵌入方使用。
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&cfg)
}

func GetConfigDir() string {
	return configDir
}

// ConfigFileUsed 返回实际读取的配置文件路径，未找到配置文件时为空。
func ConfigFileUsed() string {
	if v, ok := usedFile.Load().(string); ok {
		return v
	}
	return ""
}

// InitConfig 读取配置文件与环境变量并校验验证码配置。
func InitConfig(customConfigDir string) error {
	v, err := initViper(customConfigDir)
	if err != nil {
		return err
	}
	return loadAndStore(v)
}

func initViper(customConfigDir string) (*viper.Viper, error) {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	setDefaults(v)

	// 读取配置文件
	usedFile.Store("")
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	} else {
		usedFile.Store(v.ConfigFileUsed())
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 PERFECT_PIC_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 PERFECT_PIC_SERVER_PORT
	v.SetEnvPrefix("PERFECT_PIC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v, nil
}

func setDefaults(v *viper.Viper) {
	def := captcha.DefaultConfig()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("server.static_cache_control", "public, max-age=86400")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/perfect_pic_gallery.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "perfect_pic_gallery")
	v.SetDefault("database.ssl", false)
	v.SetDefault("database.seed", true)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "perfect_pic")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.director", "")
	v.SetDefault("log.max_size", 64)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.compress", false)
	v.SetDefault("captcha.width", def.Width)
	v.SetDefault("captcha.height", def.Height)
	v.SetDefault("captcha.length", def.Length)
	v.SetDefault("captcha.alphabet", def.Alphabet)
	v.SetDefault("captcha.background_palette", def.BackgroundPalette)
	v.SetDefault("captcha.foreground_color", def.ForegroundColor)
	v.SetDefault("captcha.font_size", def.FontSize)
	v.SetDefault("captcha.font_family", def.FontFamily)
	v.SetDefault("captcha.noise", def.Noise)
	v.SetDefault("captcha.lines", def.Lines)
	v.SetDefault("captcha.case_sensitive", false)
	v.SetDefault("captcha.ttl_seconds", 300)
	v.SetDefault("captcha.max_sessions", 10000)
	v.SetDefault("gallery.page_size", 12)
	v.SetDefault("gallery.history_limit", 50)
	v.SetDefault("gallery.related_limit", 6)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.captcha_rps", 2)
	v.SetDefault("rate_limit.captcha_burst", 10)
	v.SetDefault("rate_limit.auth_rps", 1)
	v.SetDefault("rate_limit.auth_burst", 5)
	v.SetDefault("request.max_body_mb", 8)
}

// loadAndStore 解析、校验并原子更新配置
func loadAndStore(v *viper.Viper) error {
	// 加写锁，防止并发重载时的竞争
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		return fmt.Errorf("配置解析失败: %w", err)
	}

	// 验证码配置错误属于启动期错误，不允许带病运行
	if err := tempConfig.Captcha.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("验证码配置错误: %w", err)
	}
	if tempConfig.Captcha.TTLSeconds <= 0 {
		return errors.New("验证码配置错误: ttl_seconds 必须为正数")
	}

	appConfig.Store(&tempConfig)
	return nil
}
