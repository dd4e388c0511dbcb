// Package server exposes garden sessions over HTTP and websockets.
//
// Routes:
//   - GET  /health
//   - POST /games                    start a session
//   - GET  /games/{id}               current state
//   - POST /games/{id}/placements    place the current tile
//   - POST /games/{id}/restart       deal a new round
//   - GET  /games/{id}/ws            live state over a websocket
//   - GET  /scores                   best finished rounds
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/plus3/garden/garden"
	"github.com/plus3/garden/scoreboard"
)

// Scoreboard records finished rounds and lists the best ones.
type Scoreboard interface {
	Record(ctx context.Context, r scoreboard.Result) (scoreboard.Result, error)
	Top(ctx context.Context, limit int) ([]scoreboard.Result, error)
}

// Server bundles the router, the session store and an optional scoreboard.
type Server struct {
	r      *chi.Mux
	store  *Store
	scores Scoreboard
	logger zerolog.Logger
}

// New installs middleware and routes. scores may be nil, in which case
// results are not recorded and /scores answers 503.
func New(store *Store, scores Scoreboard, logger zerolog.Logger) *Server {
	s := &Server{r: chi.NewRouter(), store: store, scores: scores, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger(logger))
	s.r.Use(chimw.Recoverer)
	s.r.Use(jsonContentType)

	// sockets outlive any request timeout
	s.r.Get("/games/{id}/ws", s.handleSocket)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		r.Post("/games", s.handleNewGame)
		r.Get("/games/{id}", s.handleGetGame)
		r.Post("/games/{id}/placements", s.handlePlace)
		r.Post("/games/{id}/restart", s.handleRestart)
		r.Get("/scores", s.handleScores)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// ServeHTTP makes Server an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.r.ServeHTTP(w, r) }

// Router exposes the router.
func (s *Server) Router() chi.Router { return s.r }

// maxQueueSize bounds the tiles a client may ask to be dealt.
const maxQueueSize = 1000

type newGameReq struct {
	Player    string `json:"player"`
	Seed      uint64 `json:"seed"`
	QueueSize int    `json:"queue_size"`
}

type gameRes struct {
	ID     string       `json:"id"`
	Player string       `json:"player"`
	State  garden.State `json:"state"`
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.QueueSize < 0 || req.QueueSize > maxQueueSize {
		writeError(w, http.StatusBadRequest, "bad_queue_size")
		return
	}
	if req.Player == "" {
		req.Player = "anonymous"
	}

	var opts []garden.Option
	if req.Seed != 0 {
		opts = append(opts, garden.WithSeed(req.Seed))
	}
	if req.QueueSize > 0 {
		opts = append(opts, garden.WithQueueSize(req.QueueSize))
	}

	sess := s.store.Create(req.Player, opts...)
	s.logger.Info().Str("game", sess.ID).Str("player", sess.Player).Msg("game created")

	writeJSON(w, http.StatusCreated, gameRes{ID: sess.ID, Player: sess.Player, State: sess.State()})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, gameRes{ID: sess.ID, Player: sess.Player, State: sess.State()})
}

// placeReq accepts either a cell ({x, y}) or a world position ({point}).
type placeReq struct {
	X     *int          `json:"x"`
	Y     *int          `json:"y"`
	Point *garden.Point `json:"point"`
}

type placeRes struct {
	Accepted  bool              `json:"accepted"`
	Placement *garden.Placement `json:"placement,omitempty"`
	State     garden.State      `json:"state"`
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var req placeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var m Move
	switch {
	case req.Point != nil:
		m = sess.PlaceAt(*req.Point)
	case req.X != nil && req.Y != nil:
		m = sess.Place(garden.Coord{X: *req.X, Y: *req.Y})
	default:
		writeError(w, http.StatusBadRequest, "missing_position")
		return
	}

	res := placeRes{Accepted: m.Accepted, State: m.State}
	if m.Accepted {
		res.Placement = &m.Placement
		s.placed(r.Context(), sess, m)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	state := sess.Restart()
	s.broadcast(sess, nil, state)
	writeJSON(w, http.StatusOK, gameRes{ID: sess.ID, Player: sess.Player, State: state})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		writeError(w, http.StatusServiceUnavailable, "scoreboard_disabled")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}

	top, err := s.scores.Top(r.Context(), limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("load scores")
		writeError(w, http.StatusInternalServerError, "scores_failed")
		return
	}
	if top == nil {
		top = []scoreboard.Result{}
	}
	writeJSON(w, http.StatusOK, top)
}

// placed records the round an accepted move finished and pushes the new
// state to every socket watching the session.
func (s *Server) placed(ctx context.Context, sess *Session, m Move) {
	if s.scores != nil && m.Finished != nil {
		if _, err := s.scores.Record(ctx, *m.Finished); err != nil {
			s.logger.Error().Err(err).Str("game", sess.ID).Msg("record result")
		}
	}
	s.broadcast(sess, &m.Placement, m.State)
}

func (s *Server) broadcast(sess *Session, p *garden.Placement, state garden.State) {
	sess.hub.broadcast(serverMessage{Type: "state", Placement: p, State: &state})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
