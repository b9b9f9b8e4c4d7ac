package routes

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/haguru/dispatcher/internal/dispatch"
	"github.com/haguru/dispatcher/internal/gate"
	"github.com/haguru/dispatcher/internal/interfaces"
	"github.com/haguru/dispatcher/internal/models/dto"
	"github.com/haguru/dispatcher/pkg/helper"
)

type Route struct {
	Gate       *gate.Gate
	Dispatcher interfaces.Dispatcher
	Metrics    interfaces.Metrics
	Logger     interfaces.Logger
}

// NewRoute creates a new Route instance.
func NewRoute(g *gate.Gate, dispatcher interfaces.Dispatcher,
	metrics interfaces.Metrics, logger interfaces.Logger,
) *Route {

	return &Route{
		Gate:       g,
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	}
}

// Login checks the submitted login/pwd pair and either forwards the request to
// the success resource or renders the failure message followed by the login form.
func (r *Route) Login(w http.ResponseWriter, req *http.Request) {
	funcName := helper.GetFuncName()

	if req.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		r.errorResponse(w, http.StatusMethodNotAllowed,
			fmt.Errorf("method %s not allowed", req.Method), ErrMethodNotAllowed)
		return
	}

	if r.Metrics != nil {
		r.Metrics.IncCounter(GateRequestsTotal)
		startTime := time.Now()
		defer func() {
			r.Metrics.ObserveHistogram(GateDurationSeconds, time.Since(startTime).Seconds())
		}()
	}

	if err := dispatch.ParseParameters(req); err != nil {
		r.Logger.Warn(ErrInvalidFormBody, "func", funcName, "error", err)
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidFormBody)
		r.recordOutcome(OutcomeBadRequest)
		return
	}

	action, err := r.Gate.HandleSubmission(
		dispatch.Parameter(req, gate.ParamLogin),
		dispatch.Parameter(req, gate.ParamPwd))
	if err != nil {
		r.Logger.Debug("Rejected submission", "func", funcName, "error", err)
		r.errorResponse(w, http.StatusBadRequest, err, ErrMissingParameter)
		r.recordOutcome(OutcomeMissingParameter)
		return
	}

	w.Header().Set(ContentType, ContentTypeHTML)

	switch a := action.(type) {
	case gate.Forward:
		r.Logger.Debug("Forwarding submission", "func", funcName, "target", a.Target)
		if err := r.Dispatcher.Forward(w, req, a.Target); err != nil {
			r.Logger.Error(ErrDispatchFailed, "func", funcName, "target", a.Target, "error", err)
			r.errorResponse(w, http.StatusInternalServerError, err, ErrResourceNotAvailable)
			r.recordOutcome(OutcomeDispatchError)
			return
		}
		r.recordOutcome(OutcomeForward)

	case gate.RenderThenInclude:
		r.Logger.Debug("Including fallback after failed login", "func", funcName, "target", a.Target)
		fmt.Fprintf(w, FailureFragmentHTML, html.EscapeString(a.Message))
		// the failure message is already on the wire, so a failed include is only logged
		if err := r.Dispatcher.Include(w, req, a.Target); err != nil {
			r.Logger.Error(ErrDispatchFailed, "func", funcName, "target", a.Target, "error", err)
			r.recordOutcome(OutcomeDispatchError)
			return
		}
		r.recordOutcome(OutcomeInclude)
	}
}

func (r *Route) recordOutcome(outcome string) {
	if r.Metrics != nil {
		r.Metrics.IncCounterVec(GateOutcomesTotal, outcome)
	}
}

func (r *Route) errorResponse(w http.ResponseWriter, status int, err error, message string) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&dto.ErrorResponseDTO{
		Error:   err.Error(),
		Message: message,
	})
}
