package socket

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/DedS3t/monopoly-simulator/platform/game"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// Emitter is the part of a socket.io connection a match stream writes to.
type Emitter interface {
	Emit(msg string, v ...interface{})
}

// Server streams live matches over socket.io.
type Server struct {
	io  *socketio.Server
	log *logrus.Entry
}

func NewServer(log *logrus.Entry) (*Server, error) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}
	s := &Server{io: server, log: log}

	server.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		s.log.WithField("socket", c.ID()).Debug("socket connected")
		return nil
	})

	server.OnEvent("/", "watch-match", func(c socketio.Conn, jsonStr string) {
		seed, err := parseSeed(jsonStr)
		if err != nil {
			c.Emit("error-message", "Invalid seed")
			return
		}
		id := uuid.NewV4().String()
		s.log.WithFields(logrus.Fields{"socket": c.ID(), "match": id, "seed": seed}).Info("streaming match")
		StreamMatch(c, id, seed)
	})

	server.OnError("/", func(c socketio.Conn, e error) {
		s.log.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		s.log.WithFields(logrus.Fields{"socket": c.ID(), "reason": reason}).Debug("socket disconnected")
		c.LeaveAll()
	})

	return s, nil
}

// Handler wraps the socket.io endpoint with CORS for the given origins.
func (s *Server) Handler(origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
	})
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	return c.Handler(mux)
}

// Serve runs the socket.io event loop until Close.
func (s *Server) Serve() error { return s.io.Serve() }

func (s *Server) Close() error { return s.io.Close() }

// ListenAndServe serves socket.io on addr until the listener fails.
func (s *Server) ListenAndServe(addr string, origins []string) error {
	go func() {
		if err := s.Serve(); err != nil {
			s.log.WithError(err).Error("socket.io loop stopped")
		}
	}()
	defer s.Close()
	return http.ListenAndServe(addr, s.Handler(origins))
}

// StreamMatch plays one match, emitting a "match-event" per event and a
// final "match-result" carrying the outcome.
func StreamMatch(out Emitter, id string, seed int64) game.Result {
	out.Emit("match-start", id, strconv.FormatInt(seed, 10))
	m := game.NewMatch(
		game.WithSeed(seed),
		game.WithListener(game.ListenerFunc(func(e game.Event) {
			payload, err := json.Marshal(e)
			if err != nil {
				return
			}
			out.Emit("match-event", string(payload))
		})),
	)
	res := m.Run()
	payload, err := json.Marshal(struct {
		Id     string      `json:"id"`
		Result game.Result `json:"result"`
	}{id, res})
	if err == nil {
		out.Emit("match-result", string(payload))
	}
	return res
}

// parseSeed reads {"seed": "42"} and falls back to the clock when absent.
func parseSeed(jsonStr string) (int64, error) {
	var result map[string]string
	if jsonStr != "" {
		if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
			return 0, err
		}
	}
	if v, ok := result["seed"]; ok && v != "" {
		return strconv.ParseInt(v, 10, 64)
	}
	return time.Now().UnixNano(), nil
}
