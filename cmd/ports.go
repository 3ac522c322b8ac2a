package cmd

import (
	"fmt"

	"github.com/jsphweid/chordcast/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists MIDI input ports",
	Long:  `Lists MIDI input ports usable with present --midi.`,
	Run: func(cmd *cobra.Command, args []string) {
		defer midi.CloseDriver()
		ports := midi.InPorts()
		if len(ports) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no MIDI input ports found")
			return
		}
		for _, p := range ports {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
	},
}
