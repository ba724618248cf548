package models

import "time"

// Product — плоская модель товара, используемая в HTTP API.
//
// Поля:
//   - ID: уникальный идентификатор товара (UUID в виде строки)
//   - Name: название товара
//   - Description: произвольное описание
//   - Price: цена за единицу (ожидается >= 0, сервер не проверяет)
//   - Quantity: количество на складе (ожидается >= 0, сервер не проверяет)
//   - CreatedAt: время создания записи (серверное)
//   - UpdatedAt: время последнего изменения (серверное)
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListProductsResponse — ответ эндпоинта получения всех товаров.
//
// Используется в:
//
//	GET /api/products
type ListProductsResponse struct {
	Products []Product `json:"products"`
}

// ProductRequest — тело запроса создания и полной замены товара.
//
// Используется в:
//
//	POST /api/products
//	PUT  /api/products/{id}
//
// Полей ровно столько, сколько изменяемых атрибутов у товара:
// PUT выполняет full replace, частичных обновлений нет.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ProfileResponse — ответ эндпоинта профиля текущего пользователя.
//
// Используется в:
//
//	GET /api/auth/profile
//
// Хэш пароля в ответ не попадает никогда.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
