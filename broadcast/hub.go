// Package broadcast carries presenter snapshots to audiences. A Hub holds
// rooms; each room has at most one presenter and fans every snapshot out to
// its subscribers.
package broadcast

import (
	"errors"
	"sync"

	"github.com/jsphweid/chordcast/constants"
	"github.com/jsphweid/chordcast/model"
	"github.com/jsphweid/chordcast/util"
	"go.uber.org/zap"
)

var (
	ErrPresenterAttached = errors.New("room already has a presenter")
	ErrRoomClosed        = errors.New("room closed")
)

type Hub struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	buffer int
	logger *zap.Logger
}

type Option func(*Hub)

// WithBuffer sets how many snapshots each subscriber may fall behind before
// it starts losing them.
func WithBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		rooms:  make(map[string]*Room),
		buffer: constants.DefaultSubscriberBuffer,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Room returns the room with id, creating it on first use.
func (h *Hub) Room(id string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.room(id)
}

// room finds or creates a room. h.mu must be held.
func (h *Hub) room(id string) *Room {
	room, ok := h.rooms[id]
	if ok {
		return room
	}
	room = newRoom(id, h.buffer, h.logger.With(zap.String("room", id)))
	h.rooms[id] = room
	return room
}

// Attach finds or creates room id and claims its presenter seat in one step,
// so a concurrent Release cannot close the room in between.
func (h *Hub) Attach(id string) (*Room, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.room(id)
	if err := room.Attach(); err != nil {
		return nil, err
	}
	return room, nil
}

// Subscribe finds or creates room id and subscribes to it in one step. See
// Room.Subscribe.
func (h *Hub) Subscribe(id string) (*Room, <-chan model.Snapshot, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.room(id)
	ch, stop := room.Subscribe()
	return room, ch, stop
}

// Lookup returns an existing room.
func (h *Hub) Lookup(id string) (*Room, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[id]
	return room, ok
}

func (h *Hub) RoomIds() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.GetKeysSorted(h.rooms)
}

// Release drops the room if nobody is using it. Joiners should go through
// Hub.Attach or Hub.Subscribe; a *Room obtained from Room may be closed by
// Release before it is joined.
func (h *Hub) Release(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[id]
	if !ok || !room.idle() {
		return
	}
	delete(h.rooms, id)
	room.close()
}

// Close closes every room and every subscriber channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.rooms {
		room.close()
		delete(h.rooms, id)
	}
}

type Room struct {
	mu          sync.Mutex
	id          string
	presenter   bool
	last        *model.Snapshot
	subscribers map[chan model.Snapshot]struct{}
	buffer      int
	closed      bool
	logger      *zap.Logger
}

func newRoom(id string, buffer int, logger *zap.Logger) *Room {
	return &Room{
		id:          id,
		subscribers: make(map[chan model.Snapshot]struct{}),
		buffer:      buffer,
		logger:      logger,
	}
}

func (r *Room) Id() string {
	return r.id
}

// Attach claims the presenter seat. Only one presenter per room.
func (r *Room) Attach() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRoomClosed
	}
	if r.presenter {
		return ErrPresenterAttached
	}
	r.presenter = true
	return nil
}

func (r *Room) Detach() {
	r.mu.Lock()
	r.presenter = false
	r.mu.Unlock()
}

func (r *Room) HasPresenter() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presenter
}

// Subscribe returns a channel of snapshots and a func to stop receiving. The
// last published snapshot, if any, is queued first.
func (r *Room) Subscribe() (<-chan model.Snapshot, func()) {
	ch := make(chan model.Snapshot, r.buffer)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		close(ch)
		return ch, func() {}
	}
	if r.last != nil {
		ch <- *r.last
	}
	r.subscribers[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if _, ok := r.subscribers[ch]; ok {
				delete(r.subscribers, ch)
				close(ch)
			}
		})
	}
}

// Publish sends s to every subscriber without blocking. A subscriber whose
// buffer is full misses s; the next snapshot supersedes it anyway.
func (r *Room) Publish(s model.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if s.HasKey() || s.Active() || s.Cleared() {
		r.last = r.merge(s)
	}
	for ch := range r.subscribers {
		select {
		case ch <- s:
		default:
			r.logger.Debug("dropped snapshot for slow subscriber")
		}
	}
}

// merge folds s into the last snapshot so a late joiner sees both the
// current key and the current selection.
func (r *Room) merge(s model.Snapshot) *model.Snapshot {
	next := s
	if r.last != nil {
		if !next.HasKey() {
			next.Key = r.last.Key
		}
		if next.Degree == nil && next.Chord == nil {
			next.Degree = r.last.Degree
			next.Chord = r.last.Chord
		}
	}
	return &next
}

// Last returns the snapshot a newly joining audience would see first.
func (r *Room) Last() (model.Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return model.Snapshot{}, false
	}
	return *r.last, true
}

func (r *Room) Audience() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}

func (r *Room) Status() model.RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	status := model.RoomStatus{
		Room:      r.id,
		Presenter: r.presenter,
		Audience:  len(r.subscribers),
	}
	if r.last != nil {
		last := *r.last
		status.Last = &last
	}
	return status
}

func (r *Room) idle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.presenter && len(r.subscribers) == 0
}

func (r *Room) close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for ch := range r.subscribers {
		close(ch)
		delete(r.subscribers, ch)
	}
}
