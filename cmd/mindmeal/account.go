package mindmeal

import (
	"fmt"

	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	accountName     string
	accountEmail    string
	accountPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create the local account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(env runEnv) error {
			user, err := env.app.Session.Signup(env.ctx, service.SignupInput{
				Name:     accountName,
				Email:    accountEmail,
				Password: accountPassword,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! Run `mindmeal profile set` to start onboarding.\n", user.Name)
			return nil
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the local account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(env runEnv) error {
			user, err := env.app.Session.Login(env.ctx, service.LoginInput{
				Email:    accountEmail,
				Password: accountPassword,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and erase all local data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(env runEnv) error {
			if err := env.app.Logout(env.ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out. Local data removed.")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(env runEnv) error {
			user, err := env.app.Session.RequireUser()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Onboarding complete: %t\n", env.app.Session.OnboardingComplete())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)

	signupCmd.Flags().StringVar(&accountName, "name", "", "Your name")
	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().StringVar(&accountEmail, "email", "", "Email address")
		c.Flags().StringVar(&accountPassword, "password", "", "Password (min 6 characters)")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
}
