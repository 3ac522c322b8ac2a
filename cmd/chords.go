package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordcast/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [key]",
	Short: "Prints the diatonic chords of a key",
	Long:  `Prints the chords for degrees 1-7 of one key, or of all twelve.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := chord.Keys
		if len(args) == 1 {
			k, err := chord.ParseKey(args[0])
			if err != nil {
				return err
			}
			keys = []chord.Key{k}
		}
		for _, k := range keys {
			row, _ := chord.Table(k)
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = fmt.Sprintf("%-6s", c)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-3s %s\n", k, strings.TrimRight(strings.Join(cells, ""), " "))
		}
		return nil
	},
}
