package commands

import (
	"fmt"
	"os"

	"hltv-scraper/internal/pipeline"

	"github.com/spf13/cobra"
)

var teamListFlag *string

func init() {
	teamListFlag = teamsCmd.Flags().String("list", "", "The team list to read, defaults to team_list in the config.")
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams [--list <teamlist.txt>]",
	Short: "Scrapes every team in the team list into a single teams file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		path := e.teamListPath(*teamListFlag)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open team list: %w", err)
		}
		refs, err := pipeline.ParseTeamList(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		_, failures, err := e.pipeline.Teams(cmd.Context(), refs)
		if err != nil {
			return err
		}
		for _, failure := range failures {
			cmd.PrintErrf("skipped %s (%d) at %s: %v\n", failure.Ref.Slug, failure.Ref.Id, failure.Stage, failure.Err)
		}
		return nil
	},
}
