// Package service содержит бизнес-логику приложения (stockkeeper).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/models"
	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Products ProductsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Products *ProductsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, cfg),
		Products: NewProductsService(repos.Products),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/register/login/profile).
type UsersRepo interface {
	Create(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// ProductsRepo — репозиторий товаров (CRUD).
type ProductsRepo interface {
	Create(ctx context.Context, name, description string, price float64, quantity int) (sharedModels.Product, error)
	List(ctx context.Context) ([]sharedModels.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (sharedModels.Product, error)
	Update(ctx context.Context, id uuid.UUID, name, description string, price float64, quantity int) (sharedModels.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
