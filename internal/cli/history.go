// ABOUTME: History command for displaying recent entries
// ABOUTME: Supports a since filter and table or JSON output
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/db"
)

var (
	historyLimit      int
	historySince      string
	historyJSONOutput bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list", "ls"},
	Short:   "List recent entries, newest first",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		limit := historyLimit
		if limit <= 0 {
			limit = s.cfg.HistoryLimit
		}

		var entries []db.Summary
		if historySince != "" {
			since, err := dateparse.ParseLocal(historySince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			entries, err = s.store.ListSince(cmd.Context(), since, limit)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}
		} else {
			entries, err = s.store.ListRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		if historyJSONOutput {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(entries) == 0 {
			color.New(color.FgYellow).Fprintln(out, "No entries yet.")
			return nil
		}

		fmt.Fprintln(out, "ID\tTimestamp\t\tValence\tArousal\tEnergy\tSocial")
		fmt.Fprintln(out, "--\t---------\t\t-------\t-------\t------\t------")
		for _, e := range entries {
			fmt.Fprintf(out, "%d\t%s\t%+d\t%d\t%s\t%s\n",
				e.ID, e.Timestamp, e.Valence, e.Arousal, formatOptional(e.Energy), formatOptional(e.Social))
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Number of entries to show (default from config)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "Only entries at or after this date (natural language or ISO)")
	historyCmd.Flags().BoolVar(&historyJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(historyCmd)
}
