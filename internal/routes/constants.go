package routes

var (
	GateDurationSecondsBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1}
)

const (
	// API route constants
	RootRouteAPI      = "/"
	LoginFormRouteAPI = "/1.html"
	GateRouteAPI      = "/CallServlet"
	MetricsRouteAPI   = "/metrics"

	// Content-Type constants
	ContentType         = "Content-Type"
	ContentTypeJson     = "application/json"
	ContentTypeHTML     = "text/html; charset=utf-8"
	FailureFragmentHTML = "<p><h1>%s </h1></p>\n"

	// Error messages
	ErrMethodNotAllowed     = "method not allowed"
	ErrInvalidFormBody      = "invalid form submission"
	ErrMissingParameter     = "login and pwd are required"
	ErrDispatchFailed       = "failed to dispatch request"
	ErrResourceNotAvailable = "requested resource is not available"

	// outcome labels
	OutcomeForward          = "forward"
	OutcomeInclude          = "include"
	OutcomeMissingParameter = "missing_parameter"
	OutcomeBadRequest       = "bad_request"
	OutcomeDispatchError    = "dispatch_error"

	// metrics constants
	GateRequestsTotal       = "gate_requests_total"
	GateRequestsTotalHelp   = "Total number of login gate submissions received"
	GateOutcomesTotal       = "gate_outcomes_total"
	GateOutcomesTotalHelp   = "Total number of login gate submissions by outcome"
	GateOutcomeLabel        = "outcome"
	GateDurationSeconds     = "gate_duration_seconds"
	GateDurationSecondsHelp = "Duration of login gate submissions in seconds"
	InFlightRequests        = "inflight_requests"
	InFlightRequestsHelp    = "Number of requests currently being served"
)
