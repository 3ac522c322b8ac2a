package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/jsphweid/chordcast/constants"
	"github.com/jsphweid/chordcast/model"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

var ErrJoinRejected = errors.New("join rejected")

// PresentPath and WatchPath are the websocket routes for a room.
func PresentPath(room string) string {
	return "/ws/present/" + url.PathEscape(room)
}

func WatchPath(room string) string {
	return "/ws/watch/" + url.PathEscape(room)
}

func dial(ctx context.Context, serverURL string, path string) (*Peer, model.Joined, error) {
	httpURL := strings.TrimRight(serverURL, "/")
	wsURL := "ws" + strings.TrimPrefix(httpURL, "http") + path
	cfg, err := websocket.NewConfig(wsURL, httpURL)
	if err != nil {
		return nil, model.Joined{}, fmt.Errorf("websocket config for %s: %w", wsURL, err)
	}
	conn, err := cfg.DialContext(ctx)
	if err != nil {
		return nil, model.Joined{}, fmt.Errorf("dial %s: %w", wsURL, err)
	}

	peer := NewPeer(conn)
	frame, err := peer.ReadFrame()
	if err != nil {
		_ = peer.Close()
		return nil, model.Joined{}, fmt.Errorf("read join frame: %w", err)
	}
	switch frame.Type {
	case constants.EventJoined:
		var joined model.Joined
		if err := json.Unmarshal(frame.Payload, &joined); err != nil {
			_ = peer.Close()
			return nil, model.Joined{}, fmt.Errorf("decode join frame: %w", err)
		}
		return peer, joined, nil
	case constants.EventError:
		var fe model.FrameError
		_ = json.Unmarshal(frame.Payload, &fe)
		_ = peer.Close()
		return nil, model.Joined{}, fmt.Errorf("%w: %s: %s", ErrJoinRejected, fe.Code, fe.Message)
	}
	_ = peer.Close()
	return nil, model.Joined{}, fmt.Errorf("%w: unexpected frame %q", ErrJoinRejected, frame.Type)
}

// Publisher sends a presenter's snapshots to the server. It satisfies
// presenter.Notifier.
type Publisher struct {
	peer   *Peer
	joined model.Joined
	logger *zap.Logger
	done   chan struct{}
}

func DialPresenter(ctx context.Context, serverURL string, room string, logger *zap.Logger) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	peer, joined, err := dial(ctx, serverURL, PresentPath(room))
	if err != nil {
		return nil, err
	}
	p := &Publisher{
		peer:   peer,
		joined: joined,
		logger: logger.With(zap.String("room", joined.Room), zap.String("connection", joined.ConnectionId)),
		done:   make(chan struct{}),
	}
	go p.drain()
	return p, nil
}

// drain reads server frames until the connection ends.
func (p *Publisher) drain() {
	defer close(p.done)
	for {
		frame, err := p.peer.ReadFrame()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.logger.Debug("presenter connection ended", zap.Error(err))
			}
			return
		}
		if frame.Type == constants.EventError {
			p.logger.Warn("server rejected frame", zap.ByteString("payload", frame.Payload))
		}
	}
}

// Publish sends s once. A failed send is logged and dropped.
func (p *Publisher) Publish(s model.Snapshot) {
	if err := p.peer.Send(constants.EventChordChange, s); err != nil {
		p.logger.Warn("could not send snapshot", zap.Error(err))
	}
}

func (p *Publisher) Joined() model.Joined {
	return p.joined
}

// Done is closed when the server connection is gone.
func (p *Publisher) Done() <-chan struct{} {
	return p.done
}

func (p *Publisher) Close() error {
	return p.peer.Close()
}

// Watcher receives a room's snapshots as an audience.
type Watcher struct {
	peer   *Peer
	joined model.Joined
	logger *zap.Logger
}

func DialAudience(ctx context.Context, serverURL string, room string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	peer, joined, err := dial(ctx, serverURL, WatchPath(room))
	if err != nil {
		return nil, err
	}
	return &Watcher{
		peer:   peer,
		joined: joined,
		logger: logger.With(zap.String("room", joined.Room), zap.String("connection", joined.ConnectionId)),
	}, nil
}

func (w *Watcher) Joined() model.Joined {
	return w.joined
}

// Run calls fn for every snapshot until the connection ends or ctx is done.
// fn runs on the calling goroutine.
func (w *Watcher) Run(ctx context.Context, fn func(model.Snapshot)) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = w.peer.Close()
		case <-stop:
		}
	}()

	for {
		frame, err := w.peer.ReadFrame()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		switch frame.Type {
		case constants.EventUpdateChord:
			var s model.Snapshot
			if err := json.Unmarshal(frame.Payload, &s); err != nil {
				w.logger.Warn("bad snapshot payload", zap.Error(err))
				continue
			}
			fn(s)
		case constants.EventError:
			w.logger.Warn("server error", zap.ByteString("payload", frame.Payload))
		default:
			w.logger.Debug("ignoring frame", zap.String("type", frame.Type))
		}
	}
}

func (w *Watcher) Close() error {
	return w.peer.Close()
}
