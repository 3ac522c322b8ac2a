// Package server relays presenter snapshots to audiences over websockets and
// serves the chord table over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordcast/broadcast"
	"github.com/jsphweid/chordcast/chord"
	"github.com/jsphweid/chordcast/constants"
	"github.com/jsphweid/chordcast/model"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

type Server struct {
	hub     *broadcast.Hub
	logger  *zap.Logger
	origins []string
}

func New(hub *broadcast.Hub, logger *zap.Logger, allowedOrigins []string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{hub: hub, logger: logger, origins: allowedOrigins}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	router.HandleFunc("/chords", handleChords).Methods("GET")
	router.HandleFunc("/chords/{key}", handleKeyChords).Methods("GET")
	router.HandleFunc("/rooms", s.handleRooms).Methods("GET")
	router.HandleFunc("/rooms/{room}", s.handleRoom).Methods("GET")
	router.HandleFunc("/ws/present/{room}", s.handlePresent).Methods("GET")
	router.HandleFunc("/ws/watch/{room}", s.handleWatch).Methods("GET")
	return router
}

// Handler is the router wrapped with the CORS policy.
func (s *Server) Handler() http.Handler {
	origins := s.origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(s.Router())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func keyChords(k chord.Key) model.KeyChords {
	row, _ := chord.Table(k)
	res := model.KeyChords{Key: k.String(), Chords: make([]string, 0, len(row))}
	for _, c := range row {
		res.Chords = append(res.Chords, c.String())
	}
	return res
}

func handleChords(w http.ResponseWriter, r *http.Request) {
	res := make([]model.KeyChords, 0, len(chord.Keys))
	for _, k := range chord.Keys {
		res = append(res, keyChords(k))
	}
	writeJSON(w, http.StatusOK, res)
}

func handleKeyChords(w http.ResponseWriter, r *http.Request) {
	k, err := chord.ParseKey(mux.Vars(r)["key"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, keyChords(k))
}

func (s *Server) handleRooms(w http.ResponseWriter, r *http.Request) {
	res := make([]model.RoomStatus, 0)
	for _, id := range s.hub.RoomIds() {
		if room, ok := s.hub.Lookup(id); ok {
			res = append(res, room.Status())
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := s.hub.Lookup(mux.Vars(r)["room"])
	if !ok {
		writeError(w, http.StatusNotFound, "no such room")
		return
	}
	writeJSON(w, http.StatusOK, room.Status())
}

func (s *Server) handlePresent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["room"]
	if room, ok := s.hub.Lookup(id); ok && room.HasPresenter() {
		writeError(w, http.StatusConflict, broadcast.ErrPresenterAttached.Error())
		return
	}
	s.upgrade(func(peer *broadcast.Peer) {
		s.servePresenter(peer, id)
	}).ServeHTTP(w, r)
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["room"]
	s.upgrade(func(peer *broadcast.Peer) {
		s.serveAudience(peer, id)
	}).ServeHTTP(w, r)
}

// upgrade accepts a websocket from the server's own origin or an allowed one
// and caps the size of
// every message read from it.
func (s *Server) upgrade(serve func(*broadcast.Peer)) websocket.Server {
	return websocket.Server{
		Handshake: s.checkOrigin,
		Handler: func(conn *websocket.Conn) {
			conn.MaxPayloadBytes = constants.MaxFrameBytes
			serve(broadcast.NewPeer(conn))
		},
	}
}

func (s *Server) checkOrigin(config *websocket.Config, r *http.Request) error {
	origin, err := websocket.Origin(config, r)
	if err == nil && origin == nil {
		err = errors.New("null origin")
	}
	if err != nil {
		return err
	}
	config.Origin = origin
	if !strings.EqualFold(origin.Host, r.Host) && !s.originAllowed(origin.String()) {
		s.logger.Info("rejected websocket origin", zap.String("origin", origin.String()))
		return fmt.Errorf("origin %s not allowed", origin)
	}
	return nil
}

// originAllowed follows the CORS list: empty or "*" allows everything.
func (s *Server) originAllowed(origin string) bool {
	if len(s.origins) == 0 {
		return true
	}
	for _, o := range s.origins {
		if o == "*" || strings.EqualFold(strings.TrimRight(o, "/"), origin) {
			return true
		}
	}
	return false
}

func (s *Server) servePresenter(peer *broadcast.Peer, id string) {
	connId := uuid.NewString()
	logger := s.logger.With(zap.String("room", id), zap.String("connection", connId))

	room, err := s.hub.Attach(id)
	if err != nil {
		code := "UNAVAILABLE"
		if errors.Is(err, broadcast.ErrPresenterAttached) {
			code = "ALREADY_EXISTS"
		}
		_ = peer.SendError(code, err.Error())
		return
	}
	defer func() {
		room.Detach()
		s.hub.Release(id)
		logger.Info("presenter left")
	}()

	if err := peer.Send(constants.EventJoined, model.Joined{Room: id, ConnectionId: connId, Role: constants.RolePresenter}); err != nil {
		logger.Warn("could not greet presenter", zap.Error(err))
		return
	}
	logger.Info("presenter joined")

	for {
		frame, err := peer.ReadFrame()
		var syntaxErr *json.SyntaxError
		switch {
		case errors.Is(err, websocket.ErrFrameTooLarge):
			_ = peer.SendError("INVALID_ARGUMENT", "payload too large")
			continue
		case errors.As(err, &syntaxErr):
			_ = peer.SendError("INVALID_ARGUMENT", "invalid frame")
			continue
		case err != nil:
			return
		}
		if frame.Type != constants.EventChordChange {
			_ = peer.SendError("INVALID_ARGUMENT", "unsupported frame type")
			continue
		}
		var snap model.Snapshot
		if err := json.Unmarshal(frame.Payload, &snap); err != nil {
			_ = peer.SendError("INVALID_ARGUMENT", "invalid snapshot payload")
			continue
		}
		logger.Debug("relaying snapshot",
			zap.String("degree", snap.DegreeValue()),
			zap.String("chord", snap.ChordValue()),
			zap.String("key", snap.KeyValue()))
		room.Publish(snap)
	}
}

func (s *Server) serveAudience(peer *broadcast.Peer, id string) {
	connId := uuid.NewString()
	logger := s.logger.With(zap.String("room", id), zap.String("connection", connId))

	_, snapshots, unsubscribe := s.hub.Subscribe(id)
	defer func() {
		unsubscribe()
		s.hub.Release(id)
		logger.Info("audience left")
	}()

	if err := peer.Send(constants.EventJoined, model.Joined{Room: id, ConnectionId: connId, Role: constants.RoleAudience}); err != nil {
		return
	}
	logger.Info("audience joined")

	// audiences only listen; reading tells us when they hang up
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, err := peer.ReadFrame(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			if err := peer.Send(constants.EventUpdateChord, snap); err != nil {
				logger.Debug("audience write failed", zap.Error(err))
				return
			}
		}
	}
}
