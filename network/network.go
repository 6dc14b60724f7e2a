package network

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"handpong/game"
	"handpong/protocol"
	"handpong/room"
)

type Server struct {
	manager  *room.Manager
	upgrader websocket.Upgrader
}

func NewServer(m *room.Manager) *Server {
	return &Server{
		manager: m,
		upgrader: websocket.Upgrader{
			// For dev, allow all origins. Lock this down in prod.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades HTTP -> WebSocket and bridges the connection into the
// room named by the {code} path variable.
func (s *Server) HandleWS(w http.ResponseWriter, req *http.Request) {
	code := strings.ToUpper(mux.Vars(req)["code"])
	rm := s.manager.GetOrCreateRoom(code)
	if rm == nil {
		http.Error(w, "missing room code", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	// Basic timeouts + pong handling (keeps connections healthy)
	conn.SetReadLimit(1 << 20) // 1MB
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	wc := newWSConn(conn)
	go wc.writePump()

	joined := false
	defer func() {
		if joined {
			rm.Inbox <- room.Leave{Conn: wc}
		} else {
			_ = wc.Close()
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Println("read:", err)
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Println("bad envelope:", err)
			continue
		}

		switch env.T {
		case protocol.MsgHello:
			if joined {
				continue
			}
			hello, err := protocol.DecodePayload[protocol.Hello](env)
			if err != nil {
				log.Println("bad hello:", err)
				continue
			}
			reply := make(chan room.JoinResult, 1)
			rm.Inbox <- room.Join{Conn: wc, Name: hello.Name, Reply: reply}
			res := <-reply
			joined = true
			welcome := protocol.Welcome{RoomCode: rm.Code, Seat: res.Seat, TickHz: protocol.FrameHz}
			if b, err := protocol.Encode(protocol.MsgWelcome, welcome); err == nil {
				_ = wc.Send(b)
			}
		case protocol.MsgHands:
			if !joined {
				continue
			}
			hands, err := protocol.DecodePayload[protocol.Hands](env)
			if err != nil {
				continue
			}
			sample := make([]game.DetectedHand, 0, len(hands.Hands))
			for _, h := range hands.Hands {
				sample = append(sample, game.DetectedHand{X: h.X, Y: h.Y})
			}
			rm.Inbox <- room.Hands{Hands: sample}
		case protocol.MsgPhase:
			if !joined {
				continue
			}
			pc, err := protocol.DecodePayload[protocol.PhaseChange](env)
			if err != nil {
				continue
			}
			if phase, ok := room.ParsePhase(pc.Phase); ok {
				rm.Inbox <- room.SetPhase{Phase: phase}
			}
		case protocol.MsgRestart:
			if !joined {
				continue
			}
			rm.Inbox <- room.Restart{}
		}
	}
}

// HandleCreateRoom allocates a fresh room and returns its code.
func (s *Server) HandleCreateRoom(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"code": s.manager.CreateRoom()})
}

// HandleListRooms returns all active rooms for the lobby screen.
func (s *Server) HandleListRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.manager.ListRooms())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("write json:", err)
	}
}
