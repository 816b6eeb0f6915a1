package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/service"
	"github.com/hkust/smart-buddy/internal/token"
	ws "github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 32 * 1024
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ChatStreamHandler serves the live chat endpoint. Each inbound frame is
// one user message; the connection answers with the stored user echo and
// the advice reply.
type ChatStreamHandler struct {
	messageService *service.MessageService
	resolver       *token.Resolver
}

func NewChatStreamHandler(messageService *service.MessageService, resolver *token.Resolver) *ChatStreamHandler {
	return &ChatStreamHandler{
		messageService: messageService,
		resolver:       resolver,
	}
}

type chatFrame struct {
	Content string `json:"content"`
}

type chatErrorFrame struct {
	Error string `json:"error"`
}

func (h *ChatStreamHandler) Handle(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if _, err := h.resolver.ResolveUserID(tokenString); err != nil {
		respondError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var frame chatFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseGoingAway, ws.CloseNormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if strings.TrimSpace(frame.Content) == "" || len(frame.Content) > domain.MaxMessageContentLength {
			h.writeFrame(conn, chatErrorFrame{Error: "Content must be non-blank and at most 10000 characters"})
			continue
		}

		// The token is re-resolved per message so an expiring session
		// ends mid-connection instead of living as long as the socket.
		advice, err := h.messageService.CreateMessage(r.Context(), tokenString, frame.Content)
		if err != nil {
			h.writeFrame(conn, chatErrorFrame{Error: err.Error()})
			if token.IsTokenError(err) {
				return
			}
			continue
		}

		echo := service.MessageResponse{
			Content:         frame.Content,
			Sender:          domain.SenderUser,
			CreatedDateTime: advice.CreatedDateTime,
		}
		if err := h.writeFrame(conn, echo); err != nil {
			return
		}
		if err := h.writeFrame(conn, advice); err != nil {
			return
		}
	}
}

func (h *ChatStreamHandler) writeFrame(conn *ws.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(ws.TextMessage, data)
}
