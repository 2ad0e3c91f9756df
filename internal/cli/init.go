// ABOUTME: Init command for creating the database
// ABOUTME: Ensures the schema exists and reports where it lives
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintln(out, "Database ready")
		fmt.Fprintf(out, "Path:    %s\n", s.store.Path())
		fmt.Fprintf(out, "Driver:  %s\n", s.store.Driver())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
