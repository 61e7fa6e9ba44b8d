package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/haguru/signup/internal/interfaces"
	"github.com/haguru/signup/internal/metrics"
	"github.com/haguru/signup/internal/models/dto"
	"golang.org/x/time/rate"
)

const MsgTooManyRequests = "Too many requests. Please try again later."

// NewLimiter returns a token bucket for the configured rate, or nil when
// requestsPerSecond is zero.
func NewLimiter(requestsPerSecond float64, burst int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// RateLimitMiddleware rejects requests with 429 once the limiter is
// exhausted. A nil limiter lets every request through. appMetrics may be nil.
func RateLimitMiddleware(limiter *rate.Limiter, appMetrics interfaces.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				if appMetrics != nil {
					appMetrics.IncCounter(metrics.SignupRateLimitedTotal)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				resp := dto.RateLimitResponse{Message: MsgTooManyRequests}
				_ = json.NewEncoder(w).Encode(resp)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
