package mindmeal

import (
	"fmt"
	"io"
	"strings"

	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your health profile",
}

var (
	profileLocation     string
	profileLanguage     string
	profileGender       string
	profileGoals        string
	profileActivity     string
	profileAge          int
	profileHeight       int
	profileWeight       int
	profileTargetWeight int
	profileConditions   string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields (only flags you pass change)",
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := profilePatchFromFlags(cmd)
		if err != nil {
			return err
		}
		return withApp(cmd, func(env runEnv) error {
			p, err := env.app.Session.UpdateProfile(env.ctx, patch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			printProfile(cmd.OutOrStdout(), p)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(cmd, func(env runEnv) error {
			p, ok := env.app.Session.Profile()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Profile: not set")
				return nil
			}
			printProfile(cmd.OutOrStdout(), p)
			fmt.Fprintf(cmd.OutOrStdout(), "Onboarding complete: %t\n", env.app.Session.OnboardingComplete())
			return nil
		})
	},
}

var profileCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Finish onboarding once location and goals are set",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(env runEnv) error {
			if err := env.app.Session.CompleteOnboarding(env.ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Onboarding complete")
			return nil
		})
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the profile and restart onboarding",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(cmd, func(env runEnv) error {
			if err := env.app.Session.ResetProfile(env.ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile reset")
			return nil
		})
	},
}

var profileOptionsCmd = &cobra.Command{
	Use:       "options [states|languages|activity|goals|conditions]",
	Short:     "List accepted values for profile fields",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"states", "languages", "activity", "goals", "conditions"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var options []refdata.Option
		switch args[0] {
		case "states":
			options = refdata.States
		case "languages":
			options = refdata.Languages
		case "activity":
			options = refdata.ActivityLevels
		case "goals":
			options = refdata.Goals
		case "conditions":
			options = refdata.MedicalConditions
		default:
			return fmt.Errorf("unknown option table %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "VALUE\tLABEL\tDESCRIPTION")
		for _, o := range options {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", o.Value, o.Label, o.Description)
		}
		return nil
	},
}

func profilePatchFromFlags(cmd *cobra.Command) (service.ProfilePatch, error) {
	var patch service.ProfilePatch
	flags := cmd.Flags()
	if flags.Changed("location") {
		if profileLocation != "" && !refdata.HasOption(refdata.States, profileLocation) {
			return patch, fmt.Errorf("unknown location %q (see `mindmeal profile options states`)", profileLocation)
		}
		patch.Location = &profileLocation
	}
	if flags.Changed("language") {
		v := model.Language(profileLanguage)
		patch.Language = &v
	}
	if flags.Changed("gender") {
		v := model.Gender(profileGender)
		patch.Gender = &v
	}
	if flags.Changed("goals") {
		patch.Goals = []model.Goal{}
		for _, g := range splitList(profileGoals) {
			patch.Goals = append(patch.Goals, model.Goal(g))
		}
	}
	if flags.Changed("activity") {
		v := model.ActivityLevel(profileActivity)
		patch.ActivityLevel = &v
	}
	if flags.Changed("age") {
		patch.Age = &profileAge
	}
	if flags.Changed("height") {
		patch.Height = &profileHeight
	}
	if flags.Changed("weight") {
		patch.Weight = &profileWeight
	}
	if flags.Changed("target-weight") {
		patch.TargetWeight = &profileTargetWeight
	}
	if flags.Changed("conditions") {
		patch.MedicalConditions = []model.MedicalCondition{}
		for _, c := range splitList(profileConditions) {
			patch.MedicalConditions = append(patch.MedicalConditions, model.MedicalCondition(c))
		}
	}
	return patch, nil
}

func printProfile(w io.Writer, p model.UserProfile) {
	fmt.Fprintf(w, "Location: %s\n", valueOr(p.Location, "-"))
	fmt.Fprintf(w, "Language: %s\n", p.Language)
	fmt.Fprintf(w, "Gender: %s | Age: %d | Height: %d cm | Weight: %d kg\n", p.Gender, p.Age, p.Height, p.Weight)
	if p.TargetWeight != nil {
		fmt.Fprintf(w, "Target weight: %d kg\n", *p.TargetWeight)
	}
	fmt.Fprintf(w, "Activity: %s\n", p.ActivityLevel)
	fmt.Fprintf(w, "Goals: %s\n", valueOr(joinValues(p.Goals), "-"))
	fmt.Fprintf(w, "Conditions: %s\n", valueOr(joinValues(p.MedicalConditions), "-"))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd, profileCompleteCmd, profileResetCmd, profileOptionsCmd)

	f := profileSetCmd.Flags()
	f.StringVar(&profileLocation, "location", "", "State or union territory (value from `profile options states`)")
	f.StringVar(&profileLanguage, "language", "", "english, hindi or malayalam")
	f.StringVar(&profileGender, "gender", "", "male, female or other")
	f.StringVar(&profileGoals, "goals", "", "Comma-separated goals, e.g. weight_loss,improve_mental_health")
	f.StringVar(&profileActivity, "activity", "", "sedentary, lightly_active, moderately_active, very_active or extremely_active")
	f.IntVar(&profileAge, "age", 0, "Age in years (13-100)")
	f.IntVar(&profileHeight, "height", 0, "Height in cm (100-250)")
	f.IntVar(&profileWeight, "weight", 0, "Weight in kg (30-300)")
	f.IntVar(&profileTargetWeight, "target-weight", 0, "Target weight in kg (needs a weight loss/gain goal)")
	f.StringVar(&profileConditions, "conditions", "", "Comma-separated medical conditions, or none")
}
