package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин) и выпуск токена сессии
//   - выдача профиля текущего пользователя
//
// Refresh-токенов и серверных сессий нет: токен stateless,
// живёт сутки и умирает сам.
type AuthService struct {
	users UsersRepo

	pass crypto.Argon2Params
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - email обязателен и должен быть валидным
//   - пароль обязателен и длиной >= 8 символов
//   - имя просто обрезается, пустое допустимо
//
// Возвращает:
//   - id пользователя (подтверждение регистрации, токен здесь не выдаётся)
//   - ErrInvalidInput при некорректных данных или ErrAlreadyExists если email уже зарегистрирован
//     (уникальность обеспечивает UNIQUE-констрейнт в базе)
func (s *AuthService) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`).MatchString(email) || len(password) < 8 {
		return uuid.Nil, serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}
	return s.users.Create(ctx, name, email, hash)
}

// Login аутентифицирует пользователя и выдаёт токен сессии.
//
// Поведение:
//   - не раскрывает факт существования email
//   - при успехе выдаёт подписанный JWT со сроком жизни из конфига (сутки)
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}
	// выпускаем токен сессии
	token, err := crypto.NewAccessToken(userID.String(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return token, nil
}

// Profile возвращает пользователя по id из валидного токена.
//
// Хэш пароля из модели вычищается здесь, до HTTP-слоя он не доходит.
//
// Ошибки:
//   - ErrNotFound — пользователь удалён/не существует
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}
