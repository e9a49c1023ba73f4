package adaptor

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ponyo877/mural/server/domain"
	"go.uber.org/zap"
)

type Adaptor struct {
	uc       Usecase
	hub      Subscriber
	upgrader websocket.Upgrader
	log      *zap.SugaredLogger
}

func NewAdaptor(uc Usecase, hub Subscriber, log *zap.SugaredLogger) *Adaptor {
	return &Adaptor{
		uc:  uc,
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

func (a *Adaptor) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/messages", a.handleList)
	mux.HandleFunc("POST /api/messages", a.handleCreate)
	mux.HandleFunc("GET /api/messages/live", a.handleLive)
	mux.HandleFunc("GET /api/stats", a.handleStats)
	return mux
}

type createRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *Adaptor) handleList(w http.ResponseWriter, r *http.Request) {
	messages, err := a.uc.ListMessages(r.Context())
	if err != nil {
		a.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to fetch messages"})
		return
	}
	a.writeJSON(w, http.StatusOK, messages)
}

func (a *Adaptor) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	message, err := a.uc.CreateMessage(r.Context(), req.Author, req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "author and body are required"})
			return
		}
		a.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to create message"})
		return
	}
	a.writeJSON(w, http.StatusOK, message)
}

// handleLive upgrades to a WebSocket and streams every broadcast event to
// the session until the peer goes away. The socket is read-only for the
// peer; writes go through POST /api/messages.
func (a *Adaptor) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.log.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	events := a.hub.Subscribe(sessionID)
	defer a.hub.Unsubscribe(sessionID)
	a.log.Infow("live session opened", "session", sessionID, "remote", r.RemoteAddr)
	defer a.log.Infow("live session closed", "session", sessionID)

	// Drain reads so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				a.log.Errorw("failed to encode event", "session", sessionID, "error", err)
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}

func (a *Adaptor) handleStats(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.hub.Stats())
}

func (a *Adaptor) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Errorw("failed to write response", "error", err)
	}
}
