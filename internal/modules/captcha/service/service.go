package service

import (
	"sync"
	"time"

	"perfect-pic-gallery/internal/captcha"
	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/logger"
	"perfect-pic-gallery/internal/modules/captcha/dto"
	platformservice "perfect-pic-gallery/internal/platform/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session 一个验证码会话独占一个引擎，引擎本身不是并发安全的，由 mu 保护。
type session struct {
	mu        sync.Mutex
	engine    *captcha.Engine
	createdAt time.Time
	expiresAt time.Time
	consumed  bool
}

// Service 按会话管理验证码引擎：每次 Issue 创建独立引擎，Refresh 在同一引擎上重新生成。
type Service struct {
	cfg       config.CaptchaConfig
	engineCfg captcha.Config
	ttl       time.Duration
	now       func() time.Time
	newSource func() captcha.Source

	mu       sync.Mutex
	sessions map[string]*session
}

type Option func(*Service)

// WithClock 替换时间来源
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSourceFactory 为每个新引擎注入随机数来源
func WithSourceFactory(f func() captcha.Source) Option {
	return func(s *Service) { s.newSource = f }
}

func New(cfg config.CaptchaConfig, opts ...Option) (*Service, error) {
	engineCfg := cfg.EngineConfig()
	if err := engineCfg.Validate(); err != nil {
		return nil, err
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	s := &Service{
		cfg:       cfg,
		engineCfg: engineCfg,
		ttl:       ttl,
		now:       time.Now,
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CodeLength 验证码长度
func (s *Service) CodeLength() int {
	return s.engineCfg.Length
}

// Issue 创建新会话并生成验证码
func (s *Service) Issue() (dto.Challenge, error) {
	var opts []captcha.Option
	if s.newSource != nil {
		opts = append(opts, captcha.WithSource(s.newSource()))
	}
	engine, err := captcha.New(s.engineCfg, opts...)
	if err != nil {
		return dto.Challenge{}, platformservice.NewInternalError("验证码生成失败", err)
	}

	now := s.now()
	sess := &session{engine: engine, createdAt: now, expiresAt: now.Add(s.ttl)}
	out := engine.GenerateAndRender()
	id := uuid.NewString()

	s.mu.Lock()
	s.sweepLocked(now)
	s.evictOverflowLocked()
	s.sessions[id] = sess
	s.mu.Unlock()

	logger.L().Debug("captcha issued", zap.String("captcha_id", id))
	return dto.Challenge{ID: id, Image: out.DataURI, Length: s.engineCfg.Length, ExpiresAt: sess.expiresAt}, nil
}

// Refresh 在原会话引擎上重新生成，旧验证码随即失效
func (s *Service) Refresh(id string) (dto.Challenge, error) {
	sess := s.lookup(id)
	if sess == nil {
		return dto.Challenge{}, platformservice.NewNotFoundError("验证码不存在或已过期")
	}
	return s.refreshSession(id, sess)
}

func (s *Service) refreshSession(id string, sess *session) (dto.Challenge, error) {
	sess.mu.Lock()
	if sess.consumed {
		sess.mu.Unlock()
		return dto.Challenge{}, platformservice.NewNotFoundError("验证码不存在或已过期")
	}
	out := sess.engine.GenerateAndRender()
	sess.expiresAt = s.now().Add(s.ttl)
	expiresAt := sess.expiresAt
	sess.mu.Unlock()

	return dto.Challenge{ID: id, Image: out.DataURI, Length: s.engineCfg.Length, ExpiresAt: expiresAt}, nil
}

// SVG 重新渲染当前验证码，不改变会话状态
func (s *Service) SVG(id string) (string, error) {
	sess := s.lookup(id)
	if sess == nil {
		return "", platformservice.NewNotFoundError("验证码不存在或已过期")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.engine.Render(sess.engine.CurrentCode()), nil
}

// Verify 校验答案，不消耗验证码；会话不存在或已过期时返回 false
func (s *Service) Verify(id, answer string, caseSensitive bool) bool {
	sess := s.lookup(id)
	if sess == nil {
		return false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.engine.Verify(answer, caseSensitive)
}

// Consume 按配置的大小写规则校验，成功后删除会话，一次验证只能放行一次操作。
// 校验与删除在同一把锁内完成，期间的 Refresh 要么先于校验生效，要么因会话已消耗而失败。
func (s *Service) Consume(id, answer string) bool {
	if id == "" {
		return false
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !now.Before(sess.expiresAt) {
		delete(s.sessions, id)
		return false
	}
	if !sess.engine.Verify(answer, s.cfg.CaseSensitive) {
		return false
	}
	sess.consumed = true
	delete(s.sessions, id)
	return true
}

// Len 当前存活的会话数
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.sessions)
}

func (s *Service) lookup(id string) *session {
	if id == "" {
		return nil
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	sess.mu.Lock()
	expired := !now.Before(sess.expiresAt)
	sess.mu.Unlock()
	if expired {
		delete(s.sessions, id)
		return nil
	}
	return sess
}

func (s *Service) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		sess.mu.Lock()
		expired := !now.Before(sess.expiresAt)
		sess.mu.Unlock()
		if expired {
			delete(s.sessions, id)
		}
	}
}

// evictOverflowLocked 达到上限时淘汰最早创建的会话
func (s *Service) evictOverflowLocked() {
	limit := s.cfg.MaxSessions
	if limit <= 0 {
		return
	}
	for len(s.sessions) >= limit {
		var oldestID string
		var oldest time.Time
		for id, sess := range s.sessions {
			if oldestID == "" || sess.createdAt.Before(oldest) {
				oldestID, oldest = id, sess.createdAt
			}
		}
		delete(s.sessions, oldestID)
	}
}
