package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"gopkg.in/yaml.v3"
)

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

type ExportUser struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

type ExportData struct {
	ExportDate     time.Time           `json:"exportDate" yaml:"exportDate"`
	User           *ExportUser         `json:"user" yaml:"user"`
	Profile        *model.UserProfile  `json:"profile" yaml:"profile"`
	HealthMetrics  model.HealthMetrics `json:"healthMetrics" yaml:"healthMetrics"`
	FoodLogs       []model.FoodLog     `json:"foodLogs" yaml:"foodLogs"`
	WeeklyCalories []model.DayCalories `json:"weeklyCalories" yaml:"weeklyCalories"`
}

type ImportOptions struct {
	RestoreProfile bool
}

type ImportReport struct {
	FoodLogsInserted int  `json:"foodLogsInserted"`
	FoodLogsSkipped  int  `json:"foodLogsSkipped"`
	ProfileRestored  bool `json:"profileRestored"`
}

// ExportDataSnapshot assembles the export document from current state.
func (a *App) ExportDataSnapshot() *ExportData {
	data := &ExportData{
		ExportDate:     a.now().UTC(),
		HealthMetrics:  a.Session.Metrics(),
		FoodLogs:       a.FoodLogs.All(),
		WeeklyCalories: a.WeeklyCalories(),
	}
	if u, ok := a.Session.User(); ok {
		data.User = &ExportUser{Name: u.Name, Email: u.Email}
	}
	if p, ok := a.Session.Profile(); ok {
		data.Profile = &p
	}
	if data.FoodLogs == nil {
		data.FoodLogs = []model.FoodLog{}
	}
	return data
}

// DefaultExportFilename is mindmeal-data-YYYY-MM-DD with the format's
// extension.
func (a *App) DefaultExportFilename(format ExportFormat) string {
	ext := "json"
	if format == ExportYAML {
		ext = "yaml"
	}
	return fmt.Sprintf("mindmeal-data-%s.%s", a.now().Format(dateLayout), ext)
}

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExportJSON:
		return ExportJSON, nil
	case ExportYAML, "yml":
		return ExportYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use json or yaml)", s)
	}
}

func EncodeExport(data *ExportData, format ExportFormat) ([]byte, error) {
	switch format {
	case ExportYAML:
		b, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("encode yaml export: %w", err)
		}
		return b, nil
	default:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json export: %w", err)
		}
		return append(b, '\n'), nil
	}
}

// DecodeExport accepts either format; JSON is tried first.
func DecodeExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, apperrors.NewValidationError([]apperrors.FieldError{{Field: "document", Message: "is not a valid json or yaml export"}})
	}
	return &data, nil
}

// ImportDataSnapshot merges food logs by id and can restore the profile.
func (a *App) ImportDataSnapshot(ctx context.Context, data *ExportData, opts ImportOptions) (ImportReport, error) {
	if data == nil {
		return ImportReport{}, fmt.Errorf("import data is required")
	}
	var report ImportReport
	inserted, skipped, err := a.FoodLogs.Merge(ctx, data.FoodLogs)
	if err != nil {
		return ImportReport{}, err
	}
	report.FoodLogsInserted = inserted
	report.FoodLogsSkipped = skipped

	if opts.RestoreProfile && data.Profile != nil {
		if _, err := a.Session.ReplaceProfile(ctx, *data.Profile); err != nil {
			return report, err
		}
		report.ProfileRestored = true
	}
	return report, nil
}
