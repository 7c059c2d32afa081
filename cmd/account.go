package cmd

import (
	"github.com/spf13/cobra"
)

func newAccountCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Register, sign in, and manage your account",
	}

	var email, password string
	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in and print the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := app.Account.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			cmd.Printf("Signed in as %s.\nExport API_TOKEN=%s to reuse this session.\n", auth.Email, auth.Token)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")

	var name, regEmail, regPassword, regConfirm string
	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account (verification email follows)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Account.SignUp(cmd.Context(), name, regEmail, regPassword, regConfirm); err != nil {
				return err
			}
			cmd.Println("Registered. Check your inbox for the verification code.")
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "display name")
	register.Flags().StringVar(&regEmail, "email", "", "account email")
	register.Flags().StringVar(&regPassword, "password", "", "account password")
	register.Flags().StringVar(&regConfirm, "confirm-password", "", "password confirmation")

	var verifyEmail, code string
	verify := &cobra.Command{
		Use:   "verify",
		Short: "Confirm registration with the emailed code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Account.VerifyEmail(cmd.Context(), verifyEmail, code); err != nil {
				return err
			}
			cmd.Println("Email verified. You can sign in now.")
			return nil
		},
	}
	verify.Flags().StringVar(&verifyEmail, "email", "", "account email")
	verify.Flags().StringVar(&code, "code", "", "verification code")

	var forgotEmail string
	forgot := &cobra.Command{
		Use:   "forgot",
		Short: "Request a password reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Account.RequestPasswordReset(cmd.Context(), forgotEmail); err != nil {
				return err
			}
			cmd.Println("Reset email sent.")
			return nil
		},
	}
	forgot.Flags().StringVar(&forgotEmail, "email", "", "account email")

	var resetToken, newPassword, confirmPassword string
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Reset the password with the emailed token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Account.ResetPassword(cmd.Context(), resetToken, newPassword, confirmPassword); err != nil {
				return err
			}
			cmd.Println("Password updated.")
			return nil
		},
	}
	reset.Flags().StringVar(&resetToken, "token", "", "reset token from the email")
	reset.Flags().StringVar(&newPassword, "password", "", "new password")
	reset.Flags().StringVar(&confirmPassword, "confirm-password", "", "password confirmation")

	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Account.Profile(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("Nickname: %s\nEmail: %s\n", p.Nickname, p.Email)
			return nil
		},
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Drop the session token",
		Run: func(cmd *cobra.Command, args []string) {
			app.Account.SignOut()
			cmd.Println("Signed out.")
		},
	}

	cmd.AddCommand(login, register, verify, forgot, reset, profile, logout)
	return cmd
}
