package broadcast

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jsphweid/chordcast/constants"
	"github.com/jsphweid/chordcast/model"
	"golang.org/x/net/websocket"
)

// Peer exchanges frames over one websocket connection, one JSON frame per
// websocket message.
type Peer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewPeer(conn *websocket.Conn) *Peer {
	return &Peer{conn: conn}
}

func (p *Peer) WriteFrame(frame model.Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return websocket.JSON.Send(p.conn, frame)
}

// Send wraps payload in a frame of the given type.
func (p *Peer) Send(kind string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	return p.WriteFrame(model.Frame{Type: kind, Payload: data})
}

func (p *Peer) SendError(code, message string) error {
	return p.Send(constants.EventError, model.FrameError{Code: code, Message: message})
}

// ReadFrame blocks for the next frame. Only one goroutine may read. A message
// larger than the connection's MaxPayloadBytes is skipped and reported as
// websocket.ErrFrameTooLarge; the next call reads the following message.
func (p *Peer) ReadFrame() (model.Frame, error) {
	var frame model.Frame
	err := websocket.JSON.Receive(p.conn, &frame)
	return frame, err
}

func (p *Peer) Close() error {
	return p.conn.Close()
}
