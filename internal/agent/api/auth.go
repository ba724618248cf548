// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и получение
// профиля текущего пользователя.
package api

import (
	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Name, Email и Password передаются в JSON формате в эндпоинт /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse описывает ответ сервера при успешной регистрации.
//
// UserID содержит идентификатор созданного пользователя. Токен при регистрации
// не выдаётся: после регистрации нужно выполнить login.
type RegisterResponse struct {
	UserID string `json:"user_id"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// Token — токен сессии (JWT), используется для авторизации запросов
// к защищённым эндпоинтам. Срок действия — 24 часа, обновления нет:
// по истечении нужно выполнить login заново.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/auth/register и возвращает RegisterResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(name, email, password string) (RegisterResponse, error) {
	var resp RegisterResponse
	err := c.PostJSON("/api/auth/register", RegisterRequest{Name: name, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает токен сессии.
//
// Метод отправляет POST запрос на /api/auth/login и возвращает LoginResponse
// с Token. В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON("/api/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Profile запрашивает профиль текущего пользователя.
//
// Метод отправляет GET запрос на /api/auth/profile и использует token для авторизации.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Profile(token string) (sharedModels.ProfileResponse, error) {
	var resp sharedModels.ProfileResponse
	err := c.GetJSON("/api/auth/profile", &resp, token)
	return resp, err
}
