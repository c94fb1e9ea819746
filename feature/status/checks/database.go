package checks

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/bme-wacoisd/google-classroom/core/database"
	"github.com/bme-wacoisd/google-classroom/feature/audit/models"

	"gorm.io/gorm"
)

// DatabaseReport strictly types the result of the run-history check.
type DatabaseReport struct {
	Connected      bool     `json:"connected"`
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
	Errors         []string `json:"errors,omitempty"`
}

// CheckDatabase verifies the connection and the audit_runs schema using the
// GORM model as the source of truth.
func CheckDatabase(ctx context.Context, db *gorm.DB) (*DatabaseReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &DatabaseReport{
		Table:          models.Run{}.TableName(),
		MissingColumns: []string{},
		Status:         "ok",
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		report.Status = "error"
		report.Errors = append(report.Errors, fmt.Sprintf("ping failed: %v", err))
		return report, nil
	}
	report.Connected = true

	actualCols, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		report.Status = "error"
		report.Errors = append(report.Errors, fmt.Sprintf("failed to inspect table %s: %v", report.Table, err))
		return report, nil
	}

	actualMap := make(map[string]database.ColumnInfo)
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	// The Run model's gorm tags are the expected schema.
	val := reflect.TypeOf(models.Run{})
	for i := 0; i < val.NumField(); i++ {
		colName := parseGormColumn(val.Field(i).Tag.Get("gorm"))
		if colName == "" {
			continue
		}
		if _, exists := actualMap[colName]; !exists {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Status = "error"
		}
	}
	return report, nil
}

// parseGormColumn pulls the column name out of a GORM struct tag.
func parseGormColumn(tag string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}
