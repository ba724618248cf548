// Package http реализует маршрутизацию HTTP-слоя сервера StockKeeper.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT-токенов сессии;
package http

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - health-пробу на корне;
//   - публичные эндпоинты аутентификации под префиксом /api/auth;
//   - middleware логирования для всех запросов;
//   - группу защищённых JWT эндпоинтов (/api/auth/profile и /api/products).
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// быстрая проверка живости
	r.Get("/", h.Root)
	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		// Публичные пути
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			// профиль уже требует токен
			r.Group(func(r chi.Router) {
				r.Use(h.Verifier.AuthMiddleware())
				r.Get("/profile", h.Profile)
			})
		})
		// защищённые пути
		r.Group(func(r chi.Router) {
			// проверка токена сессии
			r.Use(h.Verifier.AuthMiddleware())
			// CRUD запросы для товаров
			r.Route("/products", func(r chi.Router) {
				r.Post("/", h.CreateProduct)       // создание товара
				r.Get("/", h.ListProducts)         // весь список, фильтрует клиент
				r.Get("/{id}", h.GetProduct)       // один товар по id
				r.Put("/{id}", h.UpdateProduct)    // full replace полей
				r.Delete("/{id}", h.DeleteProduct) // удаление, 204 даже без записи
			})
		})
	})

	return r
}
