package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// ProductsRepository реализует доступ к хранилищу товаров (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
type ProductsRepository struct {
	db *sql.DB
}

// NewProductsRepository создаёт новый экземпляр ProductsRepository.
func NewProductsRepository(db *sql.DB) *ProductsRepository {
	return &ProductsRepository{db: db}
}

// scanProduct — общий скан одной строки products.
func scanProduct(row *sql.Row) (sharedModels.Product, error) {
	var (
		id uuid.UUID
		p  sharedModels.Product
	)
	err := row.Scan(&id, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return sharedModels.Product{}, err
	}
	p.ID = id.String()
	return p, nil
}

// Create сохраняет новый товар.
//
// Идентификатор и created_at назначает сервер (БД).
//
// Возвращает сохранённую запись целиком.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ProductsRepository) Create(ctx context.Context, name, description string, price float64, quantity int) (sharedModels.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, quantity, created_at, updated_at
	`,
		name, description, price, quantity,
	)

	p, err := scanProduct(row)
	if err != nil {
		return sharedModels.Product{}, serr.ErrInternal
	}
	return p, nil
}

// List возвращает все товары без фильтрации и пагинации.
//
// Порядок — как отдаёт хранилище (ORDER BY нет): сортировка и поиск
// целиком клиентские.
func (r *ProductsRepository) List(ctx context.Context) ([]sharedModels.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, quantity, created_at, updated_at
		FROM products
	`)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	products := make([]sharedModels.Product, 0)
	for rows.Next() {
		var (
			id uuid.UUID
			p  sharedModels.Product
		)
		if err := rows.Scan(&id, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		p.ID = id.String()
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return products, nil
}

// GetByID возвращает один товар по идентификатору.
//
// Ошибки:
//   - ErrNotFound — записи нет
//   - ErrInternal — ошибка базы данных
func (r *ProductsRepository) GetByID(ctx context.Context, id uuid.UUID) (sharedModels.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, quantity, created_at, updated_at
		FROM products
		WHERE id=$1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return sharedModels.Product{}, serr.ErrNotFound
		}
		return sharedModels.Product{}, serr.ErrInternal
	}
	return p, nil
}

// Update выполняет полную замену изменяемых полей товара (full replace).
//
// Конфликты не детектируются: одновременные обновления решаются по принципу
// last-write-wins, побеждает последний запрос.
//
// Ошибки:
//   - ErrNotFound — записи нет
//   - ErrInternal — ошибка базы данных
func (r *ProductsRepository) Update(ctx context.Context, id uuid.UUID, name, description string, price float64, quantity int) (sharedModels.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name=$2, description=$3, price=$4, quantity=$5, updated_at=now()
		WHERE id=$1
		RETURNING id, name, description, price, quantity, created_at, updated_at
	`,
		id, name, description, price, quantity,
	)

	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return sharedModels.Product{}, serr.ErrNotFound
		}
		return sharedModels.Product{}, serr.ErrInternal
	}
	return p, nil
}

// Delete удаляет товар по идентификатору.
//
// Наличие записи не проверяется: удаление несуществующего id — тоже успех
// (идемпотентное поведение по контракту).
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *ProductsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id); err != nil {
		return serr.ErrInternal
	}
	return nil
}
