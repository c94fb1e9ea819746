package checks

import (
	"context"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
)

// ClassroomReport strictly types the result of the platform probe.
type ClassroomReport struct {
	Reachable bool   `json:"reachable"`
	Status    string `json:"status"` // "ok", "error"
	Error     string `json:"error,omitempty"`
}

// CheckClassroom probes the platform API with a single-page course request.
func CheckClassroom(ctx context.Context, client classroom.Client) *ClassroomReport {
	if err := client.Ping(ctx); err != nil {
		return &ClassroomReport{Status: "error", Error: err.Error()}
	}
	return &ClassroomReport{Reachable: true, Status: "ok"}
}
