package middlewares

import (
	"math"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per-IP token bucket that blocks an address for blockTime once it runs dry.
// Addresses idle long enough to have a full bucket again are dropped on the next sweep.
type RateLimiter struct {
	visitors  map[string]*visitor
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

type visitor struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	idleTTL := per * time.Duration(requests)
	if blockTime > idleTTL {
		idleTTL = blockTime
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		log:       logger,
		now:       time.Now,
	}
}

func (m *Middlewares) NewRateLimiter(requests int, per, blockTime time.Duration) *RateLimiter {
	return NewRateLimiter(requests, per, blockTime, m.Log)
}

func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if retryAfter, ok := l.allow(ip); !ok {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			utils.BuildErrorResponse(l.log, w, exceptions.ErrTooManyAttempts(nil, ip, seconds))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (l *RateLimiter) allow(ip string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, exists := l.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(l.per), l.requests)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	if now.Before(v.blockedUntil) {
		return v.blockedUntil.Sub(now), false
	}

	if !v.limiter.AllowN(now, 1) {
		v.blockedUntil = now.Add(l.blockTime)
		return l.blockTime, false
	}
	return 0, true
}

// sweep drops visitors whose bucket has refilled and whose block has ended.
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	l.lastSweep = now
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL && !now.Before(v.blockedUntil) {
			delete(l.visitors, ip)
		}
	}
}

// size reports the number of tracked addresses.
func (l *RateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
