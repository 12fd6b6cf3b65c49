package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"taskboard/internal/domain/entity"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in or sign up",
	Long: `Authenticate against the task board server.

A successful login or signup remembers your email in the session file.

Examples:
  taskboard auth login --email dana@example.com --password hunter2
  taskboard auth signup --name Dana --email dana@example.com --password hunter2

  # Use the interactive form instead
  taskboard tui --signup`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		result, err := container.LoginUseCase.Execute(getContext(cmd), email, password)
		return reportAuth(result, err)
	},
}

var authSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		result, err := container.SignupUseCase.Execute(getContext(cmd), entity.Credentials{
			Name:     name,
			Email:    email,
			Password: password,
		})
		return reportAuth(result, err)
	},
}

// reportAuth prints the server's message. A rejected attempt fails the command.
func reportAuth(result entity.AuthResult, err error) error {
	if err != nil {
		if result.Message != "" {
			return errors.New(result.Message)
		}
		return err
	}
	if !result.Success {
		return errors.New(result.Message)
	}
	printer.Success("%s", result.Message)
	return nil
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authSignupCmd)

	for _, c := range []*cobra.Command{authLoginCmd, authSignupCmd} {
		c.Flags().String("email", "", "Account email")
		c.Flags().String("password", "", "Account password")
	}
	authSignupCmd.Flags().String("name", "", "Your name")
}
