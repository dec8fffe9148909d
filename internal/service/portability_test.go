package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

func seededApp(t *testing.T) *service.App {
	t.Helper()
	ctx := context.Background()
	app, _ := newTestApp(t, storage.NewMemoryStore())
	signUp(t, app)
	if _, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{
		Location:     ptr("karnataka"),
		Goals:        []model.Goal{model.GoalWeightLoss},
		TargetWeight: ptr(64),
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if _, err := app.FoodLogs.Add(ctx, mustFood(t, "masala-dosa"), model.MealBreakfast, 1); err != nil {
		t.Fatalf("add log: %v", err)
	}
	if _, err := app.FoodLogs.Add(ctx, mustFood(t, "rajma"), model.MealDinner, 1.5); err != nil {
		t.Fatalf("add log: %v", err)
	}
	return app
}

func TestExportJSONRoundTrip(t *testing.T) {
	t.Parallel()
	app := seededApp(t)

	raw, err := service.EncodeExport(app.ExportDataSnapshot(), service.ExportJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	for _, key := range []string{"exportDate", "user", "profile", "healthMetrics", "foodLogs", "weeklyCalories"} {
		if _, ok := generic[key]; !ok {
			t.Fatalf("expected top-level key %q", key)
		}
	}

	decoded, err := service.DecodeExport(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	original := app.FoodLogs.All()
	if len(decoded.FoodLogs) != len(original) {
		t.Fatalf("expected %d logs, got %d", len(original), len(decoded.FoodLogs))
	}
	for i := range original {
		got, want := decoded.FoodLogs[i], original[i]
		if got.ID != want.ID || got.Servings != want.Servings || got.FoodItem.Calories != want.FoodItem.Calories || got.FoodItem.Protein != want.FoodItem.Protein {
			t.Fatalf("log %d changed in round trip: %+v vs %+v", i, got, want)
		}
	}
	if decoded.Profile == nil || decoded.Profile.TargetWeight == nil || *decoded.Profile.TargetWeight != 64 {
		t.Fatalf("expected profile with target weight, got %+v", decoded.Profile)
	}
	if decoded.User == nil || decoded.User.Email != "asha@example.com" {
		t.Fatalf("expected exported user, got %+v", decoded.User)
	}
	if decoded.HealthMetrics.DailyCalorieGoal != 1472 {
		t.Fatalf("expected metrics in export, got %+v", decoded.HealthMetrics)
	}
}

func TestExportYAMLDecodes(t *testing.T) {
	t.Parallel()
	app := seededApp(t)

	raw, err := service.EncodeExport(app.ExportDataSnapshot(), service.ExportYAML)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(raw), "foodLogs:") {
		t.Fatalf("expected yaml document, got %q", string(raw))
	}
	decoded, err := service.DecodeExport(raw)
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if len(decoded.FoodLogs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(decoded.FoodLogs))
	}
	if _, err := service.DecodeExport([]byte("::: not an export")); err == nil {
		t.Fatalf("expected garbage to be rejected")
	}
}

func TestImportMergesByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	source := seededApp(t)
	data := source.ExportDataSnapshot()

	target, _ := newTestApp(t, storage.NewMemoryStore())
	signUp(t, target)
	report, err := target.ImportDataSnapshot(ctx, data, service.ImportOptions{RestoreProfile: true})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.FoodLogsInserted != 2 || report.FoodLogsSkipped != 0 || !report.ProfileRestored {
		t.Fatalf("unexpected first import report %+v", report)
	}
	p, ok := target.Session.Profile()
	if !ok || p.Location != "karnataka" || !p.HasGoal(model.GoalWeightLoss) {
		t.Fatalf("expected restored profile, got %+v", p)
	}

	report, err = target.ImportDataSnapshot(ctx, data, service.ImportOptions{})
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if report.FoodLogsInserted != 0 || report.FoodLogsSkipped != 2 {
		t.Fatalf("expected duplicates skipped, got %+v", report)
	}
	if len(target.FoodLogs.All()) != 2 {
		t.Fatalf("expected 2 logs after re-import")
	}
}

func TestRestoreProfileMatchesExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	source, _ := newTestApp(t, storage.NewMemoryStore())
	signUp(t, source)
	if _, err := source.Session.UpdateProfile(ctx, service.ProfilePatch{
		Location: ptr("goa"),
		Goals:    []model.Goal{model.GoalDietPlan},
	}); err != nil {
		t.Fatalf("update source profile: %v", err)
	}
	data := source.ExportDataSnapshot()
	if data.Profile == nil || data.Profile.TargetWeight != nil {
		t.Fatalf("expected exported profile without target weight, got %+v", data.Profile)
	}

	target, _ := newTestApp(t, storage.NewMemoryStore())
	signUp(t, target)
	if _, err := target.Session.UpdateProfile(ctx, service.ProfilePatch{
		Goals:        []model.Goal{model.GoalWeightGain},
		TargetWeight: ptr(80),
	}); err != nil {
		t.Fatalf("update target profile: %v", err)
	}
	if _, err := target.ImportDataSnapshot(ctx, data, service.ImportOptions{RestoreProfile: true}); err != nil {
		t.Fatalf("import: %v", err)
	}
	p, _ := target.Session.Profile()
	if p.TargetWeight != nil || p.Location != "goa" || p.HasGoal(model.GoalWeightGain) || !p.HasGoal(model.GoalDietPlan) {
		t.Fatalf("expected restored profile to equal the export, got %+v", p)
	}
}

func TestDefaultExportFilename(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, storage.NewMemoryStore())

	if got := app.DefaultExportFilename(service.ExportJSON); got != "mindmeal-data-2026-03-11.json" {
		t.Fatalf("unexpected filename %q", got)
	}
	format, err := service.ParseExportFormat("YML")
	if err != nil || format != service.ExportYAML {
		t.Fatalf("expected yml alias, got %q err=%v", format, err)
	}
	if _, err := service.ParseExportFormat("csv"); err == nil {
		t.Fatalf("expected csv to be unsupported")
	}
}
