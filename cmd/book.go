package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book <show-id> <seat> [seat...]",
	Short: "Book seats for a show",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		showID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("show id must be a number: %q", args[0])
		}

		numbers := make([]int, 0, len(args)-1)
		for _, arg := range args[1:] {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("seat number must be a number: %q", arg)
			}
			numbers = append(numbers, n)
		}

		client := newClient()
		if !client.LoggedIn() {
			return fmt.Errorf("not signed in, run %q first", "cinemaseat login")
		}

		outcome, err := client.BookSeats(context.Background(), showID, numbers)
		if err != nil {
			return err
		}
		fmt.Println(outcome.Summary())
		return nil
	},
}
