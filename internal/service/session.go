package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/mindmeal/mindmeal-cli/internal/errors"
	"github.com/mindmeal/mindmeal-cli/internal/logger"
	"github.com/mindmeal/mindmeal-cli/internal/metrics"
	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/recommend"
	"github.com/mindmeal/mindmeal-cli/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// Session holds the signed-in identity and onboarding profile. It is loaded
// once from the store and every mutation is written through before returning.
type Session struct {
	mu        sync.RWMutex
	store     storage.Store
	now       func() time.Time
	user      *model.User
	profile   *model.UserProfile
	onboarded bool
}

type SignupInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfilePatch carries a partial profile. Nil fields are left unchanged.
type ProfilePatch struct {
	Location          *string                  `json:"location,omitempty"`
	Language          *model.Language          `json:"language,omitempty"`
	Gender            *model.Gender            `json:"gender,omitempty"`
	Goals             []model.Goal             `json:"goals,omitempty"`
	ActivityLevel     *model.ActivityLevel     `json:"activityLevel,omitempty"`
	Age               *int                     `json:"age,omitempty"`
	Height            *int                     `json:"height,omitempty"`
	Weight            *int                     `json:"weight,omitempty"`
	TargetWeight      *int                     `json:"targetWeight,omitempty"`
	MedicalConditions []model.MedicalCondition `json:"medicalConditions,omitempty"`
}

func loadSession(ctx context.Context, store storage.Store, now func() time.Time) *Session {
	s := &Session{store: store, now: now}
	var user model.User
	if storage.LoadJSON(ctx, store, storage.KeyUser, &user) && user.ID != "" {
		s.user = &user
	}
	var profile model.UserProfile
	if storage.LoadJSON(ctx, store, storage.KeyProfile, &profile) {
		s.profile = &profile
	}
	var onboarded bool
	if storage.LoadJSON(ctx, store, storage.KeyOnboardingComplete, &onboarded) {
		s.onboarded = onboarded
	}
	return s
}

func (s *Session) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

// RequireUser returns the signed-in user or ErrNotAuthenticated.
func (s *Session) RequireUser() (model.User, error) {
	u, ok := s.User()
	if !ok {
		return model.User{}, apperrors.ErrNotAuthenticated
	}
	return u, nil
}

// RequireOnboarded returns the signed-in user once onboarding is complete.
func (s *Session) RequireOnboarded() (model.User, error) {
	u, err := s.RequireUser()
	if err != nil {
		return model.User{}, err
	}
	if !s.OnboardingComplete() {
		return model.User{}, apperrors.ErrOnboardingIncomplete
	}
	return u, nil
}

// Signup creates a new account, replacing any stored one.
func (s *Session) Signup(ctx context.Context, in SignupInput) (model.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return model.User{}, err
	}
	user := model.User{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.storeAccount(ctx, user, in.Password); err != nil {
		return model.User{}, err
	}
	logger.Info("account created", "user_id", user.ID)
	return user, nil
}

// Login checks the password against the stored credential record. When no
// account exists yet the first login provisions one named after the email's
// local part.
func (s *Session) Login(ctx context.Context, in LoginInput) (model.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return model.User{}, err
	}

	var creds model.Credentials
	if !storage.LoadJSON(ctx, s.store, storage.KeyAuth, &creds) {
		user := model.User{
			ID:        uuid.NewString(),
			Name:      strings.SplitN(in.Email, "@", 2)[0],
			Email:     in.Email,
			CreatedAt: s.now().UTC(),
		}
		if err := s.storeAccount(ctx, user, in.Password); err != nil {
			return model.User{}, err
		}
		logger.Info("account provisioned on first login", "user_id", user.ID)
		return user, nil
	}

	if creds.Email != in.Email || bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(in.Password)) != nil {
		logger.Warn("login rejected", "email", in.Email)
		return model.User{}, apperrors.ErrInvalidCredentials
	}
	var user model.User
	if !storage.LoadJSON(ctx, s.store, storage.KeyUser, &user) || user.ID == "" {
		return model.User{}, apperrors.ErrInvalidCredentials
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

func (s *Session) storeAccount(ctx context.Context, user model.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	creds := model.Credentials{Email: user.Email, PasswordHash: string(hash)}
	if err := storage.SaveJSON(ctx, s.store, storage.KeyAuth, creds); err != nil {
		return err
	}
	if err := storage.SaveJSON(ctx, s.store, storage.KeyUser, user); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// Profile returns a copy of the current profile.
func (s *Session) Profile() (model.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return model.UserProfile{}, false
	}
	return s.profile.Clone(), true
}

func (s *Session) OnboardingComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded
}

// UpdateProfile merges patch onto the current profile, or the default one
// before onboarding, then normalizes, validates and persists it. Out of range
// values are rejected, never clamped. Once onboarded the goal set may not be
// emptied.
func (s *Session) UpdateProfile(ctx context.Context, patch ProfilePatch) (model.UserProfile, error) {
	if _, err := s.RequireUser(); err != nil {
		return model.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := model.DefaultProfile()
	if s.profile != nil {
		next = s.profile.Clone()
	}
	applyPatch(&next, patch)
	return s.commitProfile(ctx, next)
}

// ReplaceProfile swaps in p as a whole, so fields p leaves unset (such as
// targetWeight) are cleared rather than kept.
func (s *Session) ReplaceProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error) {
	if _, err := s.RequireUser(); err != nil {
		return model.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitProfile(ctx, p.Clone())
}

// commitProfile normalizes, validates and persists next. Callers hold s.mu.
func (s *Session) commitProfile(ctx context.Context, next model.UserProfile) (model.UserProfile, error) {
	normalizeProfile(&next)
	if err := validateStruct(next); err != nil {
		return model.UserProfile{}, err
	}
	if s.onboarded && len(next.Goals) == 0 {
		return model.UserProfile{}, apperrors.NewValidationError([]apperrors.FieldError{{Field: "goals", Message: "must have at least 1 items"}})
	}
	if err := storage.SaveJSON(ctx, s.store, storage.KeyProfile, next); err != nil {
		return model.UserProfile{}, err
	}
	s.profile = &next
	logger.Debug("profile updated", "activity_level", next.ActivityLevel, "goals", len(next.Goals))
	return next.Clone(), nil
}

// CompleteOnboarding requires a full profile: location set and at least one
// goal selected.
func (s *Session) CompleteOnboarding(ctx context.Context) error {
	if _, err := s.RequireUser(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return apperrors.ErrProfileMissing
	}
	if err := validateStruct(*s.profile); err != nil {
		return err
	}
	var missing []apperrors.FieldError
	if strings.TrimSpace(s.profile.Location) == "" {
		missing = append(missing, apperrors.FieldError{Field: "location", Message: "is required"})
	}
	if len(s.profile.Goals) == 0 {
		missing = append(missing, apperrors.FieldError{Field: "goals", Message: "must have at least 1 items"})
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError(missing)
	}
	if err := storage.SaveJSON(ctx, s.store, storage.KeyOnboardingComplete, true); err != nil {
		return err
	}
	s.onboarded = true
	return nil
}

// ResetProfile discards the profile and the onboarding flag.
func (s *Session) ResetProfile(ctx context.Context) error {
	s.mu.Lock()
	s.profile = nil
	s.onboarded = false
	s.mu.Unlock()
	return storage.RemoveAll(ctx, s.store, []string{storage.KeyProfile, storage.KeyOnboardingComplete})
}

// Metrics recomputes health metrics from the current profile, falling back
// to fixed defaults when there is none.
func (s *Session) Metrics() model.HealthMetrics {
	p, ok := s.Profile()
	if !ok {
		return metrics.Fallback()
	}
	return metrics.All(p)
}

func (s *Session) Cluster() (model.UserCluster, error) {
	p, ok := s.Profile()
	if !ok {
		return model.UserCluster{}, apperrors.ErrProfileMissing
	}
	return recommend.Cluster(p), nil
}

func (s *Session) Recommendations() ([]model.Recommendation, error) {
	p, ok := s.Profile()
	if !ok {
		return nil, apperrors.ErrProfileMissing
	}
	return recommend.Recommendations(p), nil
}

func (s *Session) MealSuggestions(meal model.MealType, candidates []model.FoodItem) ([]model.FoodItem, error) {
	if !validMealType(meal) {
		return nil, apperrors.NewValidationError([]apperrors.FieldError{{Field: "mealType", Message: "must be one of: breakfast, lunch, snack, dinner"}})
	}
	p, ok := s.Profile()
	if !ok {
		p = model.DefaultProfile()
	}
	return recommend.MealSuggestions(p, meal, candidates), nil
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.profile = nil
	s.onboarded = false
}

func applyPatch(p *model.UserProfile, patch ProfilePatch) {
	if patch.Location != nil {
		p.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Goals != nil {
		p.Goals = append([]model.Goal(nil), patch.Goals...)
	}
	if patch.ActivityLevel != nil {
		p.ActivityLevel = *patch.ActivityLevel
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.Height != nil {
		p.Height = *patch.Height
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.TargetWeight != nil {
		v := *patch.TargetWeight
		p.TargetWeight = &v
	}
	if patch.MedicalConditions != nil {
		p.MedicalConditions = append([]model.MedicalCondition(nil), patch.MedicalConditions...)
	}
}

// normalizeProfile treats goals and conditions as sets, drops "none" when a
// real condition is held, and clears targetWeight without a weight-change
// goal.
func normalizeProfile(p *model.UserProfile) {
	p.Goals = dedupe(p.Goals)
	p.MedicalConditions = dedupe(p.MedicalConditions)
	if len(p.MedicalConditions) > 1 {
		kept := p.MedicalConditions[:0]
		for _, c := range p.MedicalConditions {
			if c != model.ConditionNone {
				kept = append(kept, c)
			}
		}
		p.MedicalConditions = kept
	}
	if !p.HasGoal(model.GoalWeightLoss) && !p.HasGoal(model.GoalWeightGain) {
		p.TargetWeight = nil
	}
	if p.Goals == nil {
		p.Goals = []model.Goal{}
	}
	if p.MedicalConditions == nil {
		p.MedicalConditions = []model.MedicalCondition{}
	}
}

func dedupe[T comparable](in []T) []T {
	if in == nil {
		return nil
	}
	seen := make(map[T]bool, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
