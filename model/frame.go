package model

import "encoding/json"

// Frame is one websocket message: a named event with a JSON payload.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Joined struct {
	Room         string `json:"room"`
	ConnectionId string `json:"connection_id"`
	Role         string `json:"role"`
}

type FrameError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
