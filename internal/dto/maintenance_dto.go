package dto

import "time"

type CleanupRequest struct {
	// CutoffDays overrides the configured retention window. Absent means
	// use the configured default; an explicit non-positive value is
	// rejected by the sweep.
	CutoffDays *int `json:"cutoff_days,omitempty"`
}

type CleanupResponse struct {
	Deleted   map[string]int64  `json:"deleted"`
	Failed    map[string]string `json:"failed,omitempty"`
	Threshold time.Time         `json:"threshold"`
}

type ServiceInfoResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
	Timestamp time.Time         `json:"timestamp"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}
