package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jsphweid/chordcast/audience"
	"github.com/jsphweid/chordcast/broadcast"
	"github.com/jsphweid/chordcast/logging"
	"github.com/jsphweid/chordcast/model"
	"github.com/jsphweid/chordcast/tui"
	"github.com/spf13/cobra"
)

var (
	watchRoom   string
	watchServer string
	watchPlain  bool
)

func init() {
	watchCmd.Flags().StringVar(&watchRoom, "room", "", "room to watch")
	watchCmd.Flags().StringVar(&watchServer, "server", "", "relay server URL (default $CHORDCAST_SERVER_URL)")
	watchCmd.Flags().BoolVar(&watchPlain, "plain", false, "print one line per change instead of a full screen")
	watchCmd.MarkFlagRequired("room")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watches a presenter's room",
	Long:  `Shows the key and chord a presenter picks, as they pick them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(cmd)
	},
}

func watch(cmd *cobra.Command) error {
	newLogger := logging.ForScreen
	if watchPlain {
		newLogger = logging.New
	}
	logger, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	serverURL := cfg.ServerURL
	if watchServer != "" {
		serverURL = watchServer
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	w, err := broadcast.DialAudience(ctx, serverURL, watchRoom, logger)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", serverURL, err)
	}
	defer w.Close()

	if watchPlain {
		view := audience.NewView(audience.NewLineDisplay(cmd.OutOrStdout()))
		return w.Run(ctx, view.Render)
	}

	p := tea.NewProgram(tui.NewAudienceModel(watchRoom), tea.WithAltScreen())
	go func() {
		err := w.Run(ctx, func(s model.Snapshot) {
			p.Send(tui.SnapshotMsg(s))
		})
		if err == nil || !errors.Is(err, context.Canceled) {
			p.Send(tui.DisconnectedMsg{})
		}
	}()
	_, err = p.Run()
	return err
}
