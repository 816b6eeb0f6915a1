package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/service"
)

const (
	defaultPage = 0
	defaultSize = 20
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type CreateMessageRequest struct {
	Token   string `json:"token"`
	Content string `json:"content"`
}

func (r CreateMessageRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Token) == "" {
		fields["token"] = "Token cannot be blank"
	}
	if strings.TrimSpace(r.Content) == "" {
		fields["content"] = "Content cannot be blank"
	} else if len(r.Content) > domain.MaxMessageContentLength {
		fields["content"] = fmt.Sprintf("Content cannot exceed %d characters", domain.MaxMessageContentLength)
	}
	return fields
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if fields := req.validate(); len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	message, err := h.messageService.CreateMessage(r.Context(), req.Token, req.Content)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(message)
}

func (h *MessageHandler) History(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	page := queryInt(r, "page", defaultPage)
	size := queryInt(r, "size", defaultSize)

	result, err := h.messageService.GetMessages(r.Context(), tokenString, page, size)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
