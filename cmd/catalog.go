package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cinemaseat-cli/store"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movies now showing",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		movies, fresh, err := store.LoadMovieCache()
		if err != nil || !fresh || len(movies) == 0 {
			movies, err = client.Movies(context.Background())
			if err != nil {
				return err
			}
			_ = store.SaveMovieCache(movies)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Language", "Certificate"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, WidthMax: 40},
		})
		for _, movie := range movies {
			t.AppendRow(table.Row{movie.ID, movie.Title, movie.Language, movie.Certificate})
		}
		t.Render()
		return nil
	},
}

var showsCmd = &cobra.Command{
	Use:   "shows <movie-id>",
	Short: "List the shows for a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		movieID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("movie id must be a number: %q", args[0])
		}

		shows, err := newClient().Shows(context.Background(), movieID)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Starts"})
		for _, show := range shows {
			starts := "-"
			if !show.StartTime.IsZero() {
				starts = show.StartTime.Local().Format(time.RFC822)
			}
			t.AppendRow(table.Row{show.ID, starts})
		}
		t.Render()
		return nil
	},
}
