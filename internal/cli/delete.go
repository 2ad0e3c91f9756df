// ABOUTME: Delete command for removing a mood entry
// ABOUTME: Asks for confirmation unless --force is given
package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an entry and its emotion and factor links",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEntryID(args[0])
		if err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		details, err := s.store.GetDetails(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}
		if details == nil {
			color.New(color.FgYellow).Fprintf(out, "Entry %d not found.\n", id)
			return nil
		}

		if !deleteForce {
			e := details.Entry
			fmt.Fprintf(out, "Delete entry %d from %s (valence %+d, arousal %d)? [y/N]: ", e.ID, e.Timestamp, e.Valence, e.Arousal)

			reader := bufio.NewReader(cmd.InOrStdin())
			confirmation, _ := reader.ReadString('\n')
			confirmation = strings.TrimSpace(strings.ToLower(confirmation))

			if confirmation != "y" && confirmation != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		deleted, err := s.store.DeleteEntry(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		if !deleted {
			color.New(color.FgYellow).Fprintf(out, "Entry %d not found.\n", id)
			return nil
		}

		color.New(color.FgGreen).Fprintf(out, "Entry %d deleted\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without asking")
	rootCmd.AddCommand(deleteCmd)
}
