package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/logger"
	"perfect-pic-gallery/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// LimitSelector 从限流配置中选出某一组路由的 rps 与 burst
type LimitSelector func(cfg config.RateLimitConfig) (float64, int)

func CaptchaLimits(cfg config.RateLimitConfig) (float64, int) {
	return cfg.CaptchaRPS, cfg.CaptchaBurst
}

func AuthLimits(cfg config.RateLimitConfig) (float64, int) {
	return cfg.AuthRPS, cfg.AuthBurst
}

// unlimited rps 与 burst 都不大于 0 时视为不限流，Redis 与进程内两条路径共用
func unlimited(rps float64, burst int) bool {
	return rps <= 0 && burst <= 0
}

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(time.Now().UnixNano())
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen.Store(time.Now().UnixNano())
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.lastSeen.Store(time.Now().UnixNano())
	i.ips.Store(ip, c)

	return c.limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		deadline := time.Now().Add(-3 * time.Minute).UnixNano()
		i.ips.Range(func(key, value any) bool {
			if value.(*client).lastSeen.Load() < deadline {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// allowByRedisRateLimit 以秒为窗口在 Redis 中计数，多实例部署时共享额度。
func allowByRedisRateLimit(client *redis.Client, scope, ip string, rps float64, burst int) (bool, error) {
	if unlimited(rps, burst) {
		return true, nil
	}
	if client == nil {
		return false, fmt.Errorf("redis client is nil")
	}

	limit := int64(burst)
	if perSecond := int64(math.Ceil(rps)); perSecond > limit {
		limit = perSecond
	}

	window := strconv.FormatInt(time.Now().Unix(), 10)
	key := service.RedisKey("rate", scope, ip, window)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	pipe := client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= limit, nil
}

// RateLimitMiddleware 按客户端 IP 限流。启用 Redis 时使用共享计数，
// Redis 出错时回退到进程内令牌桶。
func RateLimitMiddleware(appService *service.AppService, scope string, selectLimits LimitSelector) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := appService.Config().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		currentRPS, currentBurst := selectLimits(cfg)
		if unlimited(currentRPS, currentBurst) {
			c.Next()
			return
		}
		ip := c.ClientIP()

		if redisClient := service.GetRedisClient(); redisClient != nil {
			allowed, err := allowByRedisRateLimit(redisClient, scope, ip, currentRPS, currentBurst)
			if err == nil {
				if !allowed {
					rejectTooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			logger.L().Warn("redis rate limit failed, fallback to memory",
				zap.String("scope", scope), zap.Error(err))
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		l := limiter.getLimiter(ip)

		// 配置热更新后同步到已有的 limiter
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			rejectTooManyRequests(c)
			return
		}
		c.Next()
	}
}

func rejectTooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
	c.Abort()
}
