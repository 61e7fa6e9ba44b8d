package metrics

import "github.com/haguru/signup/internal/interfaces"

var SignupDurationSecondsBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

const (
	SignupRequestsTotal        = "signup_requests_total"
	SignupRequestsTotalHelp    = "Total number of signup requests received"
	SignupSuccessTotal         = "signup_success_total"
	SignupSuccessTotalHelp     = "Total number of successful signup requests"
	SignupErrorsTotal          = "signup_errors_total"
	SignupErrorsTotalHelp      = "Total number of signup requests that did not create an account"
	SignupRateLimitedTotal     = "signup_rate_limited_total"
	SignupRateLimitedTotalHelp = "Total number of signup requests rejected by the rate limiter"
	SignupResponsesTotal       = "signup_responses_total"
	SignupResponsesTotalHelp   = "Total number of signup responses by HTTP status"
	SignupInFlightRequests     = "signup_in_flight_requests"
	SignupInFlightRequestsHelp = "Number of signup requests currently being handled"
	SignupDurationSeconds      = "signup_duration_seconds"
	SignupDurationSecondsHelp  = "Duration of signup requests in seconds"
	StatusLabel                = "status"
)

// RegisterSignupMetrics registers every metric used by the signup route and
// its middleware.
func RegisterSignupMetrics(m interfaces.Metrics) {
	m.RegisterCounter(SignupRequestsTotal, SignupRequestsTotalHelp)
	m.RegisterCounter(SignupSuccessTotal, SignupSuccessTotalHelp)
	m.RegisterCounter(SignupErrorsTotal, SignupErrorsTotalHelp)
	m.RegisterCounter(SignupRateLimitedTotal, SignupRateLimitedTotalHelp)
	m.RegisterCounterVec(SignupResponsesTotal, SignupResponsesTotalHelp, []string{StatusLabel})
	m.RegisterGauge(SignupInFlightRequests, SignupInFlightRequestsHelp)
	m.RegisterHistogram(SignupDurationSeconds, SignupDurationSecondsHelp, SignupDurationSecondsBuckets)
}
