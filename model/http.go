package model

type KeyChords struct {
	Key    string   `json:"key"`
	Chords []string `json:"chords"`
}

type RoomStatus struct {
	Room      string    `json:"room"`
	Presenter bool      `json:"presenter"`
	Audience  int       `json:"audience"`
	Last      *Snapshot `json:"last,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
