package calc

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/codealpha/showcase/internal/logging"
)

// maxMessageBytes caps a single keypad message.
const maxMessageBytes = 4096

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// keypadRequest is the incoming WebSocket message format.
type keypadRequest struct {
	Type      string `json:"type"`       // "key", "state" or "clear_history"
	SessionID string `json:"session_id"` // empty for new sessions
	Key       string `json:"key,omitempty"`
}

// keypadResponse is the outgoing WebSocket message format.
type keypadResponse struct {
	Type      string  `json:"type"` // "state" or "error"
	SessionID string  `json:"session_id"`
	State     *State  `json:"state,omitempty"`
	History   []Entry `json:"history,omitempty"`
	Error     string  `json:"error,omitempty"`
}

// handleWebSocket drives a calculator from a stream of key events. Messages on
// one connection are handled strictly in order.
func handleWebSocket(svc *Service) http.HandlerFunc {
	log := logging.With("calc")
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade")
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxMessageBytes)

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn().Err(err).Msg("websocket read")
				}
				return
			}

			var req keypadRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendError(conn, "", "invalid message format")
				continue
			}

			if req.SessionID == "" {
				req.SessionID, _ = svc.NewSession()
				log.Debug().Str("session_id", req.SessionID).Msg("keypad session created")
			}

			var st SessionState
			switch req.Type {
			case "key":
				if req.Key == "" {
					sendError(conn, req.SessionID, "key is required")
					continue
				}
				st, err = svc.Press(req.SessionID, req.Key)
			case "state":
				st, err = svc.Get(req.SessionID)
			case "clear_history":
				st, err = svc.ClearHistory(req.SessionID)
			default:
				sendError(conn, req.SessionID, "unknown message type: "+req.Type)
				continue
			}
			if err != nil {
				sendError(conn, req.SessionID, err.Error())
				continue
			}

			if err := conn.WriteJSON(keypadResponse{
				Type:      "state",
				SessionID: st.ID,
				State:     &st.State,
				History:   st.History,
			}); err != nil {
				log.Warn().Err(err).Msg("websocket write")
				return
			}
		}
	}
}

func sendError(conn *websocket.Conn, sessionID, msg string) {
	conn.WriteJSON(keypadResponse{Type: "error", SessionID: sessionID, Error: msg})
}
