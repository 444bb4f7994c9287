package commands

import (
	"fmt"
	"strconv"

	"hltv-scraper/internal/chrono"
	"hltv-scraper/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	startFlag *string
	endFlag   *string
)

func init() {
	startFlag = playerCmd.Flags().String("start", "", "Only count matches from this date on (YYYY-MM-DD).")
	endFlag = playerCmd.Flags().String("end", "", "Only count matches up to this date (YYYY-MM-DD).")
	playerCmd.MarkFlagsRequiredTogether("start", "end")
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player <id> <name> [--start <date> --end <date>]",
	Short: "Scrapes the summary and individual stats of a player into <name>.json.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("player id must be a number: %w", err)
		}
		ref := pipeline.NewPlayerRef(id, args[1])
		if ref.Slug == "" {
			return fmt.Errorf("player name %q has no letters or digits", args[1])
		}

		var dates *chrono.DateRange
		if *startFlag != "" {
			parsed, err := chrono.ParseDateRange(*startFlag, *endFlag)
			if err != nil {
				return err
			}
			dates = &parsed
		}

		e, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer e.close()

		player, err := e.pipeline.Player(cmd.Context(), ref, dates)
		if err != nil {
			return err
		}
		cmd.Printf("%s: %s\n", player.Nickname, player.Role)
		return nil
	},
}
