package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hkust/smart-buddy/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type CreateUserRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Email           string `json:"email"`
}

func (r CreateUserRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = "Username cannot be blank"
	}
	if strings.TrimSpace(r.Password) == "" {
		fields["password"] = "Password cannot be blank"
	}
	if strings.TrimSpace(r.ConfirmPassword) == "" {
		fields["confirmPassword"] = "Confirm password cannot be blank"
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "Email cannot be blank"
	}
	return fields
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if fields := req.validate(); len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	err := h.userService.CreateUser(r.Context(), service.CreateUserInput{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respond(w, http.StatusOK, "User created successfully", nil)
}
