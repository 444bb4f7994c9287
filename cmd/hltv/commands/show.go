package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"hltv-scraper/internal/hltv"
	"hltv-scraper/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file.json>",
	Short: "Prints a saved teams file or player file as tables.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := store.ReadDocument(args[0])
		if err != nil {
			return err
		}
		if doc.Teams != nil {
			renderTeams(cmd.OutOrStdout(), *doc.Teams)
			return nil
		}
		return renderPlayer(cmd.OutOrStdout(), *doc.Player)
	},
}

func rosterNames(entries []hltv.RosterEntry) string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Nickname
	}
	return strings.Join(names, ", ")
}

func renderTeams(out io.Writer, batch hltv.TeamBatch) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Id", "Team", "Ranking", "Coach", "Players", "Bench"})
	for _, team := range batch.Teams {
		ranking := "-"
		if team.Ranking.Parsed {
			ranking = fmt.Sprintf("#%d", team.Ranking.Value)
		}
		t.AppendRow(table.Row{
			team.Id,
			team.Name,
			ranking,
			team.Coach.Name,
			rosterNames(team.Players),
			rosterNames(team.Bench),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d teams", len(batch.Teams))})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func renderPlayer(out io.Writer, player hltv.Player) error {
	encoded, err := json.Marshal(player)
	if err != nil {
		return err
	}
	var fields map[string]any
	err = json.Unmarshal(encoded, &fields)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%s (%s)", player.Nickname, player.Role))
	t.AppendHeader(table.Row{"Stat", "Value"})
	for _, key := range keys {
		value := fields[key]
		if value == nil {
			value = "-"
		}
		t.AppendRow(table.Row{key, value})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
