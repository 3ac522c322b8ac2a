package constants

import "time"

// websocket frame types
const (
	EventChordChange = "chord-change"
	EventUpdateChord = "update-chord"
	EventJoined      = "joined"
	EventError       = "error"
)

const (
	RolePresenter = "presenter"
	RoleAudience  = "audience"
)

// per-audience snapshot buffer; a slow reader loses snapshots past this
const DefaultSubscriberBuffer = 16

// a pianist's chord lands as several note-ons within a few ms
const DefaultMidiDebounce = 30 * time.Millisecond

// largest frame a presenter may send
const MaxFrameBytes = 4 * 1024
