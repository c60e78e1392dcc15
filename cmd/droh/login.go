package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bekendz87/droh-admin/internal/cli"
	"github.com/bekendz87/droh-admin/internal/session"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Save a backend session token",
		Long: `Save a DROH session token for the report commands.

Paste the token exactly as the clinic portal hands it out; surrounding
quotes and stray backslashes are stripped automatically. When the token
is a JWT, the user identity is read from its claims.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sess, err := session.New(args[0])
			if err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}
			if err := sess.Save(); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			who := sess.Username
			if who == "" {
				who = "unknown user"
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", who)))
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := session.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Println(cli.FormatSuccess("Logged out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the saved session identity",
		RunE: func(_ *cobra.Command, _ []string) error {
			sess, err := loadSession()
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Session"))
			fmt.Printf("  user:     %s\n", sess.Username)
			fmt.Printf("  user id:  %s\n", sess.UserID)
			fmt.Printf("  saved at: %s\n", sess.SavedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}
