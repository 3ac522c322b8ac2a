package main

import (
	"github.com/jsphweid/chordcast/cmd"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func main() {
	cmd.Execute()
}
