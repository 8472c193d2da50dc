package dto

// Health statuses reported by the liveness and readiness endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of GET /health/live and GET /health/ready.
// Checks is omitted for liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse summarizes health check results keyed by component
// name. A nil error is reported as HealthOK; any failure makes the whole
// response HealthNotReady.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{
		Status: HealthReady,
		Checks: make(map[string]string, len(results)),
	}

	ready := true
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			ready = false
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if !ready {
		resp.Status = HealthNotReady
	}
	return resp, ready
}
