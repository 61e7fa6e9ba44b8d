package metrics

import (
	"testing"

	pkgmetrics "github.com/haguru/signup/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSignupMetrics(t *testing.T) {
	m := pkgmetrics.NewMetrics("signup")
	RegisterSignupMetrics(m)

	m.IncCounter(SignupRequestsTotal)
	m.IncCounter(SignupSuccessTotal)
	m.IncCounter(SignupErrorsTotal)
	m.IncCounter(SignupRateLimitedTotal)
	m.IncCounterVec(SignupResponsesTotal, "200")
	m.IncGauge(SignupInFlightRequests)
	m.ObserveHistogram(SignupDurationSeconds, 0.2)

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}

	for _, want := range []string{
		"signup_" + SignupRequestsTotal,
		"signup_" + SignupSuccessTotal,
		"signup_" + SignupErrorsTotal,
		"signup_" + SignupRateLimitedTotal,
		"signup_" + SignupResponsesTotal,
		"signup_" + SignupInFlightRequests,
		"signup_" + SignupDurationSeconds,
	} {
		assert.True(t, names[want], "metric %s not registered", want)
	}
}

func TestRegisterSignupMetrics_Twice(t *testing.T) {
	m := pkgmetrics.NewMetrics("signup")
	RegisterSignupMetrics(m)

	assert.Panics(t, func() { RegisterSignupMetrics(m) })
}
