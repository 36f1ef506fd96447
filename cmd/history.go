package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cinemaseat-cli/service"
	"cinemaseat-cli/ticket"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your bookings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		bookings, err := client.MyBookings(context.Background())
		if err != nil {
			if service.IsUnauthorized(err) {
				return fmt.Errorf("not signed in, run %q first", "cinemaseat login")
			}
			return err
		}

		exportID, _ := cmd.Flags().GetInt("export")
		if exportID != 0 {
			for _, booking := range bookings {
				if booking.ID != exportID {
					continue
				}
				username := ""
				if user, err := client.Me(context.Background()); err == nil {
					username = user.Username
				}
				path, err := ticket.ExportFile(booking, username)
				if err != nil {
					return err
				}
				fmt.Printf("Saved %s\n", path)
				return nil
			}
			return fmt.Errorf("no booking with id %d", exportID)
		}

		if len(bookings) == 0 {
			fmt.Println("No bookings yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Movie", "Seat", "Starts"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 40, AutoMerge: true},
		})
		t.Style().Options.SeparateRows = true
		for _, booking := range bookings {
			starts := "-"
			if booking.ShowStartTime != nil {
				starts = booking.ShowStartTime.Local().Format(time.RFC822)
			}
			t.AppendRow(table.Row{booking.ID, booking.MovieTitle, int(booking.SeatNumber), starts})
		}
		t.Render()
		return nil
	},
}
