package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/metrics"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
)

func TestSignupLoginRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)
	app, _ := newTestApp(t, store)
	signUp(t, app)

	raw, ok, err := store.Get(ctx, storage.KeyAuth)
	if err != nil || !ok {
		t.Fatalf("expected stored credentials, ok=%v err=%v", ok, err)
	}
	if strings.Contains(string(raw), "secret123") {
		t.Fatalf("password must not be stored in plain text")
	}

	reloaded, _ := newTestApp(t, store)
	if !reloaded.Session.IsAuthenticated() {
		t.Fatalf("expected identity to survive reload")
	}

	_, err = reloaded.Session.Login(ctx, service.LoginInput{Email: "asha@example.com", Password: "wrong-pass"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	user, err := reloaded.Session.Login(ctx, service.LoginInput{Email: " ASHA@example.com ", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "Asha" {
		t.Fatalf("expected stored identity, got %+v", user)
	}
}

func TestFirstLoginProvisionsAccount(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, storage.NewMemoryStore())

	user, err := app.Session.Login(context.Background(), service.LoginInput{Email: "ravi.k@example.com", Password: "anything"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "ravi.k" || user.ID == "" {
		t.Fatalf("expected provisioned user named after email, got %+v", user)
	}
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, storage.NewMemoryStore())

	_, err := app.Session.Signup(context.Background(), service.SignupInput{Name: "", Email: "nope", Password: "123"})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "email", "password"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in %q", field, err.Error())
		}
	}
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, storage.NewMemoryStore())

	_, err := app.Session.UpdateProfile(context.Background(), service.ProfilePatch{Age: ptr(30)})
	if !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
}

func TestUpdateProfileMergesNormalizesAndValidates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, _ := newTestApp(t, storage.NewMemoryStore())
	signUp(t, app)

	p, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{
		Location:          ptr("kerala"),
		Goals:             []model.Goal{model.GoalCalorieTracking, model.GoalCalorieTracking},
		TargetWeight:      ptr(60),
		MedicalConditions: []model.MedicalCondition{model.ConditionNone, model.ConditionThyroid},
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if p.Age != 25 || p.Height != 170 || p.Weight != 70 || p.Gender != model.GenderMale {
		t.Fatalf("expected defaults for unset fields, got %+v", p)
	}
	if len(p.Goals) != 1 {
		t.Fatalf("expected goals deduplicated, got %v", p.Goals)
	}
	if p.TargetWeight != nil {
		t.Fatalf("expected target weight cleared without weight-change goal")
	}
	if len(p.MedicalConditions) != 1 || p.MedicalConditions[0] != model.ConditionThyroid {
		t.Fatalf("expected none dropped next to real condition, got %v", p.MedicalConditions)
	}

	_, err = app.Session.UpdateProfile(ctx, service.ProfilePatch{Age: ptr(12), Height: ptr(260), Weight: ptr(301)})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"age", "height", "weight"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s to be reported in %q", field, err.Error())
		}
	}
	current, _ := app.Session.Profile()
	if current.Age != 25 {
		t.Fatalf("rejected update must not change the profile, got age %d", current.Age)
	}
}

func TestMetricsRecomputeOnProfileChange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, _ := newTestApp(t, storage.NewMemoryStore())

	if got := app.Session.Metrics(); got != metrics.Fallback() {
		t.Fatalf("expected fallback metrics before onboarding, got %+v", got)
	}
	if _, err := app.Session.Cluster(); !errors.Is(err, apperrors.ErrProfileMissing) {
		t.Fatalf("expected missing profile for cluster, got %v", err)
	}

	signUp(t, app)
	if _, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{Weight: ptr(70)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	before := app.Session.Metrics()
	if _, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{Goals: []model.Goal{model.GoalWeightLoss}}); err != nil {
		t.Fatalf("update goals: %v", err)
	}
	after := app.Session.Metrics()
	if after.DailyCalorieGoal != before.DailyCalorieGoal-500 {
		t.Fatalf("expected deficit after weight loss goal, before=%d after=%d", before.DailyCalorieGoal, after.DailyCalorieGoal)
	}
}

func TestCompleteOnboarding(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	app, _ := newTestApp(t, store)
	signUp(t, app)

	if err := app.Session.CompleteOnboarding(ctx); !errors.Is(err, apperrors.ErrProfileMissing) {
		t.Fatalf("expected missing profile, got %v", err)
	}
	if _, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{Age: ptr(40)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	err := app.Session.CompleteOnboarding(ctx)
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) || !strings.Contains(err.Error(), "location") || !strings.Contains(err.Error(), "goals") {
		t.Fatalf("expected location and goals to be required, got %v", err)
	}
	if _, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{
		Location: ptr("goa"),
		Goals:    []model.Goal{model.GoalImproveMentalHealth},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := app.Session.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}

	_, err = app.Session.UpdateProfile(ctx, service.ProfilePatch{Goals: []model.Goal{}})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) || !strings.Contains(err.Error(), "goals") {
		t.Fatalf("expected emptying goals after onboarding to fail, got %v", err)
	}
	if p, _ := app.Session.Profile(); !p.HasGoal(model.GoalImproveMentalHealth) {
		t.Fatalf("expected goals kept after rejected update, got %+v", p.Goals)
	}

	reloaded, _ := newTestApp(t, store)
	if !reloaded.Session.OnboardingComplete() {
		t.Fatalf("expected onboarding flag to persist")
	}
	if err := reloaded.Session.ResetProfile(ctx); err != nil {
		t.Fatalf("reset profile: %v", err)
	}
	if reloaded.Session.OnboardingComplete() {
		t.Fatalf("expected onboarding flag cleared")
	}
	if _, ok := reloaded.Session.Profile(); ok {
		t.Fatalf("expected profile cleared")
	}
}

func TestLogoutRemovesEveryKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)
	app, _ := newTestApp(t, store)
	signUp(t, app)
	if _, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{Location: ptr("delhi")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := app.Chat.Ask(ctx, "hello"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if _, err := app.Water.Add(ctx); err != nil {
		t.Fatalf("water: %v", err)
	}

	if err := app.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	for _, key := range storage.AllKeys {
		if _, ok, _ := store.Get(ctx, key); ok {
			t.Fatalf("expected %s removed", key)
		}
	}
	if app.Session.IsAuthenticated() || len(app.Chat.History()) != 0 || app.Water.Glasses() != 0 {
		t.Fatalf("expected in-memory state reset")
	}
}

func TestCorruptProfileLoadsAsMissing(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	_ = store.Set(context.Background(), storage.KeyProfile, []byte("{broken"))

	app, _ := newTestApp(t, store)
	if _, ok := app.Session.Profile(); ok {
		t.Fatalf("expected corrupt profile to read as missing")
	}
	if app.Session.Metrics().DailyCalorieGoal != 2000 {
		t.Fatalf("expected fallback calorie goal")
	}
}

func TestNullUserRecordIsNotASession(t *testing.T) {
	t.Parallel()
	store := storage.NewMemoryStore()
	_ = store.Set(context.Background(), storage.KeyUser, []byte("null"))

	app, _ := newTestApp(t, store)
	if app.Session.IsAuthenticated() {
		t.Fatalf("expected a null user record to read as signed out")
	}
	if _, err := app.Session.RequireUser(); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
}

func TestRequireOnboarded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	app, _ := newTestApp(t, storage.NewMemoryStore())

	if _, err := app.Session.RequireOnboarded(); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated before signup, got %v", err)
	}
	signUp(t, app)
	if _, err := app.Session.RequireOnboarded(); !errors.Is(err, apperrors.ErrOnboardingIncomplete) {
		t.Fatalf("expected onboarding incomplete, got %v", err)
	}
	if _, err := app.Session.UpdateProfile(ctx, service.ProfilePatch{
		Location: ptr("kerala"),
		Goals:    []model.Goal{model.GoalCalorieTracking},
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := app.Session.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if u, err := app.Session.RequireOnboarded(); err != nil || u.Email != "asha@example.com" {
		t.Fatalf("expected onboarded user, got %+v err=%v", u, err)
	}
}
