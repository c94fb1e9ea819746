package models

import (
	"time"

	"github.com/bme-wacoisd/google-classroom/core/reconcile"
)

// Run is one persisted reconciliation run. The diff itself is stored as a
// JSON blob so past runs replay without refetching the platform.
type Run struct {
	ID            string    `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"column:created_at;index" json:"created_at"`
	Convention    string    `gorm:"column:convention" json:"convention"`
	AcceptSwapped bool      `gorm:"column:accept_swapped" json:"accept_swapped"`
	TotalSource   int       `gorm:"column:total_source" json:"total_source"`
	TotalPlatform int       `gorm:"column:total_platform" json:"total_platform"`
	TotalMatched  int       `gorm:"column:total_matched" json:"total_matched"`
	TotalMissing  int       `gorm:"column:total_missing" json:"total_missing"`
	TotalExtra    int       `gorm:"column:total_extra" json:"total_extra"`
	RowErrors     int       `gorm:"column:row_errors" json:"row_errors"`
	Archived      bool      `gorm:"column:archived" json:"archived"`
	Diff          []byte    `gorm:"column:diff" json:"-"`
}

// TableName overrides the table name used by GORM.
func (Run) TableName() string {
	return "audit_runs"
}

// Summary rebuilds the run's counters as a reconcile.Summary, mainly for
// delta computation against a later run.
func (r Run) Summary() reconcile.Summary {
	return reconcile.Summary{
		TotalSource:   r.TotalSource,
		TotalPlatform: r.TotalPlatform,
		TotalMatched:  r.TotalMatched,
		TotalMissing:  r.TotalMissing,
		TotalExtra:    r.TotalExtra,
	}
}
