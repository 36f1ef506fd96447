package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cinemaseat-cli/service"
	"cinemaseat-cli/store"
	"cinemaseat-cli/tui"
)

var rootCmd = &cobra.Command{
	Use:   "cinemaseat",
	Short: "Cinema seat booking from the terminal",
	Long:  `Browse movies, pick a show, grab your seats and keep your tickets, all without leaving the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		program := tea.NewProgram(tui.New(newClient()), tea.WithAltScreen())
		_, err := program.Run()
		return err
	},
}

func newClient() *service.Client {
	return service.NewClient(nil, store.FileTokens{})
}

func Execute() {
	rootCmd.AddCommand(loginCmd, logoutCmd, moviesCmd, showsCmd, bookCmd, historyCmd, versionCmd)
	historyCmd.Flags().Int("export", 0, "write a PDF ticket for the given booking id")
	versionCmd.Flags().Bool("check", false, "ping the booking API as well")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
