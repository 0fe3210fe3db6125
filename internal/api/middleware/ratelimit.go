package middleware

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
)

const (
	msgRateLimited = "rate limit exceeded, try again later"

	// DefaultLimiterIdleTTL сколько хранится лимитер IP без запросов
	DefaultLimiterIdleTTL = 10 * time.Minute
)

// ErrInvalidTrustedProxy адрес прокси в конфиге не разобран
var ErrInvalidTrustedProxy = errors.New("middleware: invalid trusted proxy")

// RateLimitOptions параметры ограничителя
type RateLimitOptions struct {
	// RequestsPerMinute <= 0 снимает ограничение
	RequestsPerMinute int
	Burst             int
	// TrustedProxies IP или CIDR прокси, чьим X-Forwarded-For / X-Real-IP верим
	TrustedProxies []string
	IdleTTL        time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничитель запросов по IP клиента
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	trusted  []netip.Prefix
	idleTTL  time.Duration
	now      func() time.Time
	log      Logger
}

func NewRateLimiter(opts RateLimitOptions, log Logger) (*RateLimiter, error) {
	trusted, err := parseTrustedProxies(opts.TrustedProxies)
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}
	idleTTL := opts.IdleTTL
	if idleTTL <= 0 {
		idleTTL = DefaultLimiterIdleTTL
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    opts.Burst,
		trusted:  trusted,
		idleTTL:  idleTTL,
		now:      time.Now,
		log:      log,
	}, nil
}

func parseTrustedProxies(raw []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.Contains(item, "/") {
			prefix, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTrustedProxy, item, err)
			}
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTrustedProxy, item, err)
		}
		out = append(out, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return out, nil
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

// Middleware отвечает 429, когда IP исчерпал лимит
func (l *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := l.ClientIP(r)
			if !l.limiter(ip).Allow() {
				l.log.Warn("Rate limit exceeded: ip=%s, path=%s", ip, r.URL.Path)
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Len число отслеживаемых IP
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Sweep удаляет лимитеры IP, не приходивших дольше idleTTL
func (l *RateLimiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idleTTL {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

// Run периодически чистит лимитеры до отмены контекста
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := l.Sweep(); removed > 0 {
				l.log.Info("ratelimit: dropped %d idle limiters, tracking %d", removed, l.Len())
			}
		case <-ctx.Done():
			return
		}
	}
}

// ClientIP адрес клиента. Заголовки прокси учитываются только когда
// соединение пришло от доверенного прокси; цепочка X-Forwarded-For
// читается справа налево до первого недоверенного адреса.
func (l *RateLimiter) ClientIP(r *http.Request) string {
	remote := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		remote = host
	}
	if !l.isTrusted(remote) {
		return remote
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop == "" {
				continue
			}
			if !l.isTrusted(hop) {
				return hop
			}
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return remote
}

func (l *RateLimiter) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range l.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
