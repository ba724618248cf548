// HTTP-хендлеры CRUD товаров
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// CreateProduct создаёт новый товар.
//
// Идентификатор и created_at назначает сервер; в ответе — сохранённая
// запись целиком. Валидации полей формы здесь нет (она клиентская),
// отбрасывается только некорректный JSON.
//
// Требует аутентификацию по токену сессии.
//
// @Summary      Create product
// @Description  Creates a new product record. Server assigns id and timestamps.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.ProductRequest true "Product fields"
// @Success      201 {object} models.Product
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	p, err := h.Svc.Products.Create(r.Context(), req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("create product failed", "error", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// ListProducts возвращает все товары.
//
// Без фильтрации, сортировки и пагинации: поиск и сортировка — клиентские,
// клиент забирает весь набор и работает с ним локально.
//
// @Summary      List products
// @Description  Returns every product, unfiltered and unpaginated, in store order.
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.ListProductsResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Svc.Products.List(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	data := sharedModels.ListProductsResponse{
		Products: products,
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}

// GetProduct возвращает один товар по id из URL-параметра.
//
// @Summary      Get product
// @Description  Returns a single product by id.
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID (UUID)"
// @Success      200 {object} models.Product
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	p, err := h.Svc.Products.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("get product failed", "error", err, "product_id", id.String())
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(p)
}

// UpdateProduct выполняет полную замену изменяемых полей товара.
//
// Частичных обновлений нет: клиент присылает все поля формы,
// сервер перезаписывает запись (last-write-wins, конфликтов не ловим).
//
// @Summary      Update product
// @Description  Full replace of the product's mutable fields. Last write wins.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Product ID (UUID)"
// @Param        request body models.ProductRequest true "Product fields"
// @Success      200 {object} models.Product
// @Failure      400 {object} ErrorResponse "Bad id or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	var req sharedModels.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	p, err := h.Svc.Products.Update(r.Context(), id, req.Name, req.Description, req.Price, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw("update product failed", "error", err, "product_id", id.String())
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(p)
}

// DeleteProduct удаляет товар по id.
//
// Существование записи не проверяется: ответ 204 и для незнакомого id.
//
// @Summary      Delete product
// @Description  Removes a product. Succeeds even if the id does not exist.
// @Tags         products
// @Security     BearerAuth
// @Param        id path string true "Product ID (UUID)"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse "Bad id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	if err := h.Svc.Products.Delete(r.Context(), id); err != nil {
		h.Log.Logger.Sugar().Errorw("delete product failed", "error", err, "product_id", id.String())
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
