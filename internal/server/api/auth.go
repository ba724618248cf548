// HTTP-хендлеры регистрации, логина и профиля
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse описывает успешный ответ регистрации.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа пользователя.
//
// Token — stateless токен сессии со сроком жизни в сутки.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна (подтверждение, токен не выдаётся);
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 409 Conflict: email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Description  Creates a new user account. Returns the new user id, not a token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      409 {object} ErrorResponse "Email already registered"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, serr.ErrBadJSON.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			http.Error(w, serr.ErrInvalidInput.Error(), http.StatusBadRequest)
		case errors.Is(err, serr.ErrAlreadyExists):
			http.Error(w, serr.ErrAlreadyExists.Error(), http.StatusConflict)
		default:
			h.Log.Logger.Sugar().Error("register failed")
			http.Error(w, serr.ErrInternal.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterResponse{UserID: id.String()})
}

// Login обрабатывает вход пользователя и выдачу токена сессии.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или невалидные входные данные;
//   - 401 Unauthorized: неверные учётные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login
// @Description  Authenticates by email/password and issues a session token (24h).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, serr.ErrBadJSON.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			http.Error(w, serr.ErrInvalidInput.Error(), http.StatusBadRequest)
		case errors.Is(err, serr.ErrInvalidCredentials):
			http.Error(w, serr.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			http.Error(w, serr.ErrInternal.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(LoginResponse{Token: token})
}

// Profile возвращает профиль текущего пользователя (без хэша пароля).
//
// Пользователь определяется по токену сессии (middleware).
//
// Ответы:
//   - 200 OK: профиль;
//   - 401 Unauthorized: нет/битый/просроченный токен;
//   - 404 Not Found: пользователь удалён;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Profile
// @Description  Returns the authenticated user's profile without the password hash.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.ProfileResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/auth/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userIDStr, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	u, err := h.Svc.Auth.Profile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"profile failed",
				"error", err,
				"user_id", userID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(sharedModels.ProfileResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}
