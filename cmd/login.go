package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cinemaseat-cli/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and keep the session on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		usernamePrompt := promptui.Prompt{
			Label:   "Username",
			Default: store.LastUsername(),
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return fmt.Errorf("username is required")
				}
				return nil
			},
		}
		username, err := usernamePrompt.Run()
		if err != nil {
			return err
		}

		passwordPrompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
		}
		password, err := passwordPrompt.Run()
		if err != nil {
			return err
		}

		client := newClient()
		if err := client.Login(context.Background(), strings.TrimSpace(username), password); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		_ = store.RememberUsername(username)

		fmt.Printf("Signed in as %s\n", strings.TrimSpace(username))
		if exp, ok := client.TokenExpiry(); ok {
			fmt.Printf("Session valid until %s\n", exp.Local().Format("Mon, 02 Jan 2006 15:04"))
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().Logout(); err != nil {
			return err
		}
		fmt.Println("Signed out")
		return nil
	},
}
