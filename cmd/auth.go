package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leniks/cinema2/session"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the identity service",
	RunE:  runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE:  runLogout,
}

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&usernameFlag, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&passwordFlag, "password", "", "", "password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := usernameFlag
	if username == "" {
		var err error
		if username, err = prompt("Username: "); err != nil {
			return err
		}
	}

	password := passwordFlag
	if password == "" {
		var err error
		if password, err = prompt("Password: "); err != nil {
			return err
		}
	}

	// Login failures must stay visible: no degrade-to-empty here.
	resp, err := identityClient.Login(context.Background(), username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	profile := &session.Profile{
		UserType: resp.UserType,
		Username: resp.Username,
		UserID:   resp.UserID,
	}
	if err := sessions.Login(resp.AccessToken, profile); err != nil {
		return fmt.Errorf("failed to establish session: %w", err)
	}

	user, _ := sessions.Current()
	fmt.Printf("✓ Logged in as %s\n", user.Login)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := sessions.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	user, ok := sessions.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("Login: %s\n", user.Login)
	fmt.Printf("ID:    %d\n", user.ID)
	fmt.Printf("Role:  %s\n", user.Role)
	if user.Email != "" {
		fmt.Printf("Email: %s\n", user.Email)
	}
	return nil
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("no input")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
