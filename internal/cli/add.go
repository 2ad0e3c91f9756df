// ABOUTME: Add command for recording mood entries
// ABOUTME: Handles rating flags, notes, emotion and factor lists
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/journal"
)

var (
	addValence  int
	addArousal  int
	addEnergy   int
	addSocial   int
	addNote     string
	addEmotions []string
	addFactors  []string
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Record a mood entry",
	Example: `  moodlog add --valence 2 --arousal 3
  moodlog add -V -1 -A 4 --energy 1 -e tense -e "worried;tired" -f work --note "deadline"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		entry := db.NewEntry{
			Valence:  addValence,
			Arousal:  addArousal,
			Note:     optionalNote(addNote),
			Emotions: splitNames(addEmotions),
			Factors:  splitNames(addFactors),
		}
		if cmd.Flags().Changed("energy") {
			entry.Energy = &addEnergy
		}
		if cmd.Flags().Changed("social") {
			entry.Social = &addSocial
		}

		id, err := s.store.CreateEntry(cmd.Context(), entry)
		if err != nil {
			if db.IsConstraintViolation(err) {
				return fmt.Errorf("rating out of range (valence -5..5, arousal, energy and social 0..5): %w", err)
			}
			return fmt.Errorf("failed to create entry: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "Entry created (ID: %d)\n", id)

		if s.cfg.Journal.Enabled {
			details, err := s.store.GetDetails(cmd.Context(), id)
			switch {
			case err != nil:
				s.logger.Warn("failed to read entry for journal", "id", id, "err", err)
			case details == nil:
				s.logger.Warn("entry vanished before journaling", "id", id)
			default:
				if err := journal.Write(s.cfg.Journal.Dir, s.cfg.Journal.Format, *details); err != nil {
					s.logger.Warn("failed to write journal", "dir", s.cfg.Journal.Dir, "err", err)
				} else {
					fmt.Fprintf(out, "Journal updated: %s\n", s.cfg.Journal.Dir)
				}
			}
		}

		return nil
	},
}

// optionalNote returns nil for blank notes.
func optionalNote(note string) *string {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}
	return &note
}

// splitNames expands semicolon separated flag values into individual names.
func splitNames(values []string) []string {
	var names []string
	for _, v := range values {
		for _, part := range strings.Split(v, ";") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
	}
	return names
}

func init() {
	addCmd.Flags().IntVarP(&addValence, "valence", "V", 0, "How pleasant, from -5 to 5 (required)")
	addCmd.Flags().IntVarP(&addArousal, "arousal", "A", 0, "How activated, from 0 to 5 (required)")
	addCmd.Flags().IntVar(&addEnergy, "energy", 0, "Energy level, from 0 to 5")
	addCmd.Flags().IntVar(&addSocial, "social", 0, "Social battery, from 0 to 5")
	addCmd.Flags().StringVarP(&addNote, "note", "m", "", "Free-text note")
	addCmd.Flags().StringArrayVarP(&addEmotions, "emotion", "e", []string{}, "Emotion felt (repeatable, ';' separated)")
	addCmd.Flags().StringArrayVarP(&addFactors, "factor", "f", []string{}, "Influencing factor (repeatable, ';' separated)")
	_ = addCmd.MarkFlagRequired("valence")
	_ = addCmd.MarkFlagRequired("arousal")
	rootCmd.AddCommand(addCmd)
}
