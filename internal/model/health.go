package model

// Health status values. The overall status is three-state on purpose: a
// caller must be able to tell "server fine, network not" from total failure.
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
)

// HealthProbe is one sub-check of health_check.
type HealthProbe struct {
	Name   string `json:"name"`
	Status string `json:"status"` // "ok" or "failed"
	Detail string `json:"detail,omitempty"`
}

// HealthResult is the payload for health_check.
type HealthResult struct {
	Status   string        `json:"status"`
	Network  string        `json:"network"`
	Endpoint string        `json:"endpoint"`
	Probes   []HealthProbe `json:"probes"`
}
