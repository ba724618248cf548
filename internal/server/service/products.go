package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// ProductsService реализует бизнес-логику работы с товарами.
//
// Сервис сознательно тонкий: валидация полей формы по контракту живёт
// на клиенте, сервер принимает поля как есть. Здесь только нормализация
// имени и проброс в репозиторий.
type ProductsService struct {
	repo ProductsRepo
}

// NewProductsService создаёт новый ProductsService.
func NewProductsService(repo ProductsRepo) *ProductsService {
	return &ProductsService{repo: repo}
}

// Create создаёт новый товар. Идентификатор и таймстемпы назначает сервер.
func (s *ProductsService) Create(ctx context.Context, name, description string, price float64, quantity int) (sharedModels.Product, error) {
	return s.repo.Create(ctx, strings.TrimSpace(name), description, price, quantity)
}

// List возвращает все товары в порядке хранилища.
// Поиск/сортировка/пагинация на сервере отсутствуют по контракту.
func (s *ProductsService) List(ctx context.Context) ([]sharedModels.Product, error) {
	return s.repo.List(ctx)
}

// Get возвращает один товар по id.
//
// Ошибки:
//   - ErrNotFound
func (s *ProductsService) Get(ctx context.Context, id uuid.UUID) (sharedModels.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Update выполняет полную замену изменяемых полей товара.
//
// Ошибки:
//   - ErrNotFound
func (s *ProductsService) Update(ctx context.Context, id uuid.UUID, name, description string, price float64, quantity int) (sharedModels.Product, error) {
	return s.repo.Update(ctx, id, strings.TrimSpace(name), description, price, quantity)
}

// Delete удаляет товар. Отсутствие записи ошибкой не считается.
func (s *ProductsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
