// ABOUTME: Tags command for browsing and seeding emotion and factor names
// ABOUTME: Lists vocabularies with optional usage counts
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/moodlog/internal/db"
)

var tagsCounts bool

var tagsCmd = &cobra.Command{
	Use:   "tags [emotions|factors]",
	Short: "List known emotions and factors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vocabs := db.Vocabularies()
		if len(args) == 1 {
			v, err := db.ParseVocabulary(args[0])
			if err != nil {
				return err
			}
			vocabs = []db.Vocabulary{v}
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		heading := color.New(color.Bold)
		for i, v := range vocabs {
			if i > 0 {
				fmt.Fprintln(out)
			}
			heading.Fprintf(out, "%s:\n", v)

			if tagsCounts {
				usage, err := s.store.TagUsage(cmd.Context(), v)
				if err != nil {
					return fmt.Errorf("failed to count %s: %w", v, err)
				}
				if len(usage) == 0 {
					fmt.Fprintln(out, "  (none)")
				}
				for _, u := range usage {
					fmt.Fprintf(out, "  %-20s %d\n", u.Name, u.Count)
				}
				continue
			}

			names, err := s.store.ListTags(cmd.Context(), v)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", v, err)
			}
			if len(names) == 0 {
				fmt.Fprintln(out, "  (none)")
			}
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", name)
			}
		}

		return nil
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <emotions|factors> <name>...",
	Short: "Add names to a vocabulary without recording an entry",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := db.ParseVocabulary(args[0])
		if err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ids, err := s.store.ResolveTags(cmd.Context(), v, splitNames(args[1:]))
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", v, err)
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%d %s ready\n", len(ids), v)
		return nil
	},
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsCounts, "counts", false, "Show how many entries use each name")
	tagsCmd.AddCommand(tagsAddCmd)
	rootCmd.AddCommand(tagsCmd)
}
