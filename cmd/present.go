package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jsphweid/chordcast/broadcast"
	"github.com/jsphweid/chordcast/chord"
	"github.com/jsphweid/chordcast/input"
	"github.com/jsphweid/chordcast/logging"
	"github.com/jsphweid/chordcast/midi"
	"github.com/jsphweid/chordcast/presenter"
	"github.com/jsphweid/chordcast/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	presentRoom   string
	presentServer string
	presentKey    string
	presentMidi   bool
)

func init() {
	presentCmd.Flags().StringVar(&presentRoom, "room", "", "room to present in (default: a new random room)")
	presentCmd.Flags().StringVar(&presentServer, "server", "", "relay server URL (default $CHORDCAST_SERVER_URL)")
	presentCmd.Flags().StringVar(&presentKey, "key", "", "starting key (default $CHORDCAST_DEFAULT_KEY or C)")
	presentCmd.Flags().BoolVar(&presentMidi, "midi", false, "also take input from a MIDI keyboard ($CHORDCAST_MIDI_PORT or the first port)")
	rootCmd.AddCommand(presentCmd)
}

var presentCmd = &cobra.Command{
	Use:   "present",
	Short: "Presents chords to a room",
	Long:  `Opens the presenter screen. Keys 1-7 pick a degree, q/w flatten/sharpen, arrows change key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return present(cmd)
	},
}

func present(cmd *cobra.Command) error {
	logger, err := logging.ForScreen(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	room := presentRoom
	if room == "" {
		room = uuid.NewString()
	}
	serverURL := cfg.ServerURL
	if presentServer != "" {
		serverURL = presentServer
	}
	keyName := cfg.DefaultKey
	if presentKey != "" {
		keyName = presentKey
	}
	key, err := chord.ParseKey(keyName)
	if err != nil {
		return err
	}

	pub, err := broadcast.DialPresenter(cmd.Context(), serverURL, room, logger)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", serverURL, err)
	}
	defer pub.Close()

	state, err := presenter.New(key, pub)
	if err != nil {
		return err
	}
	// audiences that join before the first selection still learn the key
	pub.Publish(state.Snapshot())

	var actions <-chan input.Action
	if presentMidi {
		in, err := midi.InPort(cfg.MidiPort)
		if err != nil {
			return fmt.Errorf("midi port: %w", err)
		}
		defer midi.CloseDriver()
		collector := midi.NewCollector(cfg.MidiDebounce)
		stop, err := midi.Listen(in, collector)
		if err != nil {
			return err
		}
		defer stop()
		actions = collector.Actions()
		logger.Info("listening to midi", zap.String("port", in.String()))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Audience can join with: chordcast watch --room %s --server %s\n", room, serverURL)
	m := tui.NewPresenterModel(state, room, actions, pub.Done())
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
