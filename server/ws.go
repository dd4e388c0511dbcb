package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/plus3/garden/garden"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is what a websocket client sends.
type clientMessage struct {
	Action string        `json:"action"` // "place" | "restart"
	X      *int          `json:"x,omitempty"`
	Y      *int          `json:"y,omitempty"`
	Point  *garden.Point `json:"point,omitempty"`
}

// serverMessage is what the server pushes.
type serverMessage struct {
	Type      string            `json:"type"` // "state" | "rejected" | "error"
	Placement *garden.Placement `json:"placement,omitempty"`
	State     *garden.State     `json:"state,omitempty"`
	Error     string            `json:"error,omitempty"`
}

type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscriber) send(msg serverMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// hub fans state updates out to every socket watching one session.
type hub struct {
	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[*subscriber]struct{})}
}

func (h *hub) add(s *subscriber) {
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
}

func (h *hub) remove(s *subscriber) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

func (h *hub) broadcast(msg serverMessage) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs))
	for s := range h.subs {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		// a failed write means the reader loop is about to drop the socket
		_ = s.send(msg)
	}
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Str("game", sess.ID).Msg("websocket upgrade")
		return
	}

	sub := &subscriber{conn: conn}
	sess.hub.add(sub)
	defer func() {
		sess.hub.remove(sub)
		conn.Close()
	}()

	state := sess.State()
	if err := sub.send(serverMessage{Type: "state", State: &state}); err != nil {
		return
	}

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug().Err(err).Str("game", sess.ID).Msg("websocket closed")
			}
			return
		}

		switch msg.Action {
		case "place":
			var m Move
			switch {
			case msg.Point != nil:
				m = sess.PlaceAt(*msg.Point)
			case msg.X != nil && msg.Y != nil:
				m = sess.Place(garden.Coord{X: *msg.X, Y: *msg.Y})
			default:
				_ = sub.send(serverMessage{Type: "error", Error: "missing_position"})
				continue
			}
			if !m.Accepted {
				_ = sub.send(serverMessage{Type: "rejected", State: &m.State})
				continue
			}
			s.placed(r.Context(), sess, m)
		case "restart":
			s.broadcast(sess, nil, sess.Restart())
		default:
			_ = sub.send(serverMessage{Type: "error", Error: "unknown_action"})
		}
	}
}
