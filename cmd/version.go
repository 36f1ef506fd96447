package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "HEAD"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CinemaSeat CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("CinemaSeat CLI v%s -- %s\n", version, commit)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := newClient().Health(ctx); err != nil {
			return fmt.Errorf("API unreachable: %w", err)
		}
		fmt.Println("API reachable")
		return nil
	},
}
