package middleware

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	limiter := NewRateLimiter()
	quota := Limit{Requests: 3, Window: time.Hour}

	for i := 0; i < 3; i++ {
		if !limiter.Allow("key", quota) {
			t.Fatalf("expected request %d to be admitted", i+1)
		}
	}
	if limiter.Allow("key", quota) {
		t.Fatal("expected request over quota to be rejected")
	}
	if !limiter.Allow("other", quota) {
		t.Fatal("expected a different key to have its own window")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter()
	quota := Limit{Requests: 1, Window: time.Millisecond}

	if !limiter.Allow("key", quota) {
		t.Fatal("expected first request to be admitted")
	}
	if limiter.Allow("key", quota) {
		t.Fatal("expected second request in window to be rejected")
	}
	time.Sleep(5 * time.Millisecond)
	if !limiter.Allow("key", quota) {
		t.Fatal("expected request after window expiry to be admitted")
	}
}

func TestClientIP_UsesFirstForwardedHop(t *testing.T) {
	r := httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "10.0.0.1:4000"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2, 10.0.0.3")

	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}

func TestClientIP_FallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "10.0.0.1:4000"

	if got := ClientIP(r); got != "10.0.0.1" {
		t.Fatalf("expected remote addr host, got %q", got)
	}

	r.Header.Set("X-Forwarded-For", " , ")
	if got := ClientIP(r); got != "10.0.0.1" {
		t.Fatalf("expected blank forwarded header to be ignored, got %q", got)
	}
}

func TestLimiterKeys(t *testing.T) {
	r := httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "192.0.2.9:1234"

	if got := LoginIPKey(r); got != "login:ip:192.0.2.9" {
		t.Fatalf("unexpected login key %q", got)
	}
	if got := ResetIPKey(r); got != "reset:ip:192.0.2.9" {
		t.Fatalf("unexpected reset key %q", got)
	}
	if got := ResetEmailKey("user@example.com"); got != "reset:email:user@example.com" {
		t.Fatalf("unexpected email key %q", got)
	}
}
