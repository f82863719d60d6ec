package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syedOmegaPrime/SolitudeFinalProject/app"
	"github.com/syedOmegaPrime/SolitudeFinalProject/auth"
)

// newRegisterCmd creates an account and logs it straight in, the way the
// registration page does.
func newRegisterCmd(a *app.App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}
			user, err := a.Auth.Register(cmd.Context(), auth.RegisterRequest{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				successStyle.Render("Welcome,"), displayName(user))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLoginCmd(a *app.App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}
			user, err := a.Auth.Login(cmd.Context(), auth.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				successStyle.Render("Signed in as"), displayName(user))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Signed out."))
			return nil
		},
	}
}

func newWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.Auth.CurrentUser()
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Not signed in."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", displayName(user), user.Email)
			return nil
		},
	}
}

// displayName prefers the optional name over the email.
func displayName(u *auth.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
