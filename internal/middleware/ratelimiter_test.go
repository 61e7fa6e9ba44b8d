package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haguru/signup/internal/metrics"
	"github.com/haguru/signup/internal/models/dto"
	pkgmetrics "github.com/haguru/signup/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewLimiter(t *testing.T) {
	tests := []struct {
		name      string
		rps       float64
		burst     int
		wantNil   bool
		wantBurst int
	}{
		{name: "disabled", rps: 0, burst: 10, wantNil: true},
		{name: "configured", rps: 5, burst: 10, wantBurst: 10},
		{name: "zero burst", rps: 5, burst: 0, wantBurst: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewLimiter(tt.rps, tt.burst)
			if tt.wantNil {
				assert.Nil(t, limiter)
				return
			}
			require.NotNil(t, limiter)
			assert.Equal(t, tt.wantBurst, limiter.Burst())
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	m := pkgmetrics.NewMetrics("test")
	metrics.RegisterSignupMetrics(m)

	// a very slow refill keeps the bucket empty after the burst is spent
	handler := RateLimitMiddleware(NewLimiter(0.001, 2), m)(okHandler())

	var codes []int
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", nil))
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			var body dto.RateLimitResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, MsgTooManyRequests, body.Message)
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)
	var limited float64
	for _, family := range families {
		if family.GetName() == "test_"+metrics.SignupRateLimitedTotal {
			limited = family.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, limited)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	handler := RateLimitMiddleware(nil, nil)(okHandler())

	for i := 0; i < 20; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/signup", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
