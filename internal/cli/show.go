// ABOUTME: Show command for displaying a single entry
// ABOUTME: Prints ratings, note, emotions, and factors
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showJSONOutput bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry with its note and tags",
	Args:  cobra.ExactArgs(1),
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

		details, err := s.store.GetDetails(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get entry: %w", err)
		}

		out := cmd.OutOrStdout()
		if details == nil {
			color.New(color.FgYellow).Fprintf(out, "Entry %d not found.\n", id)
			return nil
		}

		if showJSONOutput {
			data, err := json.MarshalIndent(details, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		e := details.Entry
		fmt.Fprintf(out, "Entry:    %d\n", e.ID)
		fmt.Fprintf(out, "Time:     %s\n", e.Timestamp)
		fmt.Fprintf(out, "Valence:  %+d\n", e.Valence)
		fmt.Fprintf(out, "Arousal:  %d\n", e.Arousal)
		fmt.Fprintf(out, "Energy:   %s\n", formatOptional(e.Energy))
		fmt.Fprintf(out, "Social:   %s\n", formatOptional(e.Social))
		fmt.Fprintf(out, "Emotions: %s\n", strings.Join(details.Emotions, ", "))
		fmt.Fprintf(out, "Factors:  %s\n", strings.Join(details.Factors, ", "))
		if e.Note != nil {
			fmt.Fprintf(out, "Note:     %s\n", *e.Note)
		}

		return nil
	},
}

func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entry id %q", arg)
	}
	return id, nil
}

func init() {
	showCmd.Flags().BoolVar(&showJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(showCmd)
}
