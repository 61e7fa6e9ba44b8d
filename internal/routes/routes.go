package routes

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/haguru/signup/internal/auth"
	"github.com/haguru/signup/internal/httperrors"
	"github.com/haguru/signup/internal/interfaces"
	"github.com/haguru/signup/internal/metrics"
	"github.com/haguru/signup/internal/models/dto"
	"github.com/haguru/signup/pkg/helper"
)

type Route struct {
	Metrics    interfaces.Metrics
	Controller interfaces.Controller
	Health     interfaces.HealthChecker
	PrivateKey *ecdsa.PrivateKey
	logger     interfaces.Logger
}

// NewRoute creates a new Route instance. metrics, health and privateKey may
// be nil.
func NewRoute(metrics interfaces.Metrics, controller interfaces.Controller, health interfaces.HealthChecker,
	privateKey *ecdsa.PrivateKey, logger interfaces.Logger,
) *Route {
	return &Route{
		Metrics:    metrics,
		Controller: controller,
		Health:     health,
		PrivateKey: privateKey,
		logger:     logger,
	}
}

// Signup decodes a signup request, hands it to the controller and writes the
// controller's response as JSON. The stored password hash is never written.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	funcName := helper.GetFuncName()
	startTime := time.Now()
	status := http.StatusOK

	if r.Metrics != nil {
		r.Metrics.IncGauge(metrics.SignupInFlightRequests)
		r.Metrics.IncCounter(metrics.SignupRequestsTotal)
		defer func() {
			r.Metrics.DecGauge(metrics.SignupInFlightRequests)
			r.recordOutcome(status)
		}()
	}

	if req.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		status = http.StatusMethodNotAllowed
		r.writeError(w, status, MethodNotAllowedKind, fmt.Sprintf(ErrMethodNotAllowedFormat, req.Method))
		return
	}

	mediaType, _, err := mime.ParseMediaType(req.Header.Get(ContentType))
	if err != nil || mediaType != ContentTypeJson {
		status = http.StatusBadRequest
		r.writeError(w, status, InvalidContentTypeKind, fmt.Sprintf(ErrInvalidContentTypeFormat, req.Header.Get(ContentType)))
		return
	}

	signupRequest := dto.SignUpRequestDTO{}
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, MaxRequestBodyBytes)).Decode(&signupRequest); err != nil {
		r.logger.Debug(ErrInvalidRequestBody, "func", funcName, "error", err)
		status = http.StatusBadRequest
		r.writeError(w, status, InvalidRequestBodyKind, ErrInvalidRequestBody)
		return
	}

	response := r.Controller.Handle(req.Context(), dto.HttpRequest{Body: signupRequest})

	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(metrics.SignupDurationSeconds, time.Since(startTime).Seconds())
	}
	r.logger.Info(MsgSignupHandled, "func", funcName, "status", response.StatusCode)

	status = response.StatusCode
	if status != http.StatusOK || response.Account == nil {
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
		if response.Err == nil {
			response.Err = httperrors.NewServerError()
		}
		r.writeError(w, status, httperrors.Kind(response.Err), response.Err.Error())
		return
	}

	account := response.Account
	if r.PrivateKey != nil {
		sessionToken, err := auth.CreateToken(account.ID, r.PrivateKey)
		if err != nil {
			// the account exists at this point, so the response stays 200
			r.logger.Error(ErrFailedToGenerateToken, "func", funcName, "ID", account.ID, "error", err)
		} else {
			http.SetCookie(w, &http.Cookie{
				Name:     auth.SessionCookieName,
				Value:    sessionToken,
				Path:     "/",
				HttpOnly: true,
				Secure:   req.TLS != nil,
				SameSite: http.SameSiteStrictMode,
				MaxAge:   int(auth.TokenTTL.Seconds()),
			})
		}
	}

	r.writeJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
	})
}

// HealthCheck reports 200 when the database answers a ping and 503 otherwise.
func (r *Route) HealthCheck(w http.ResponseWriter, req *http.Request) {
	if r.Health != nil {
		if err := r.Health.Ping(req.Context()); err != nil {
			r.logger.Warn(ErrDatabaseUnavailable, "func", helper.GetFuncName(), "error", err)
			r.writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponseDTO{
				Error:   UnavailableKind,
				Message: ErrDatabaseUnavailable,
			})
			return
		}
	}
	r.writeJSON(w, http.StatusOK, map[string]string{"status": MsgHealthy})
}

func (r *Route) writeError(w http.ResponseWriter, status int, kind, message string) {
	r.writeJSON(w, status, dto.ErrorResponseDTO{
		Error:   kind,
		Message: message,
	})
}

// recordOutcome counts a finished signup request by its status.
func (r *Route) recordOutcome(status int) {
	r.Metrics.IncCounterVec(metrics.SignupResponsesTotal, strconv.Itoa(status))
	if status == http.StatusOK {
		r.Metrics.IncCounter(metrics.SignupSuccessTotal)
		return
	}
	r.Metrics.IncCounter(metrics.SignupErrorsTotal)
}

func (r *Route) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		r.logger.Error(ErrFailedToEncodeResponse, "error", err)
	}
}
