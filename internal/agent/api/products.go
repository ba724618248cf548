package api

import (
	"fmt"

	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// Sync загружает все товары пользователя с сервера.
//
// Выполняет запрос:
//
//	GET /api/products
//
// Параметры:
//   - token: токен сессии. Передаётся в заголовке Authorization: Bearer <token>.
//
// Возвращает:
//   - sharedModels.ListProductsResponse (массив products, без фильтрации и пагинации)
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) Sync(token string) (sharedModels.ListProductsResponse, error) {
	var resp sharedModels.ListProductsResponse
	err := c.GetJSON("/api/products", &resp, token)
	return resp, err
}

// CreateProduct создаёт новый товар на сервере.
//
// Выполняет запрос:
//
//	POST /api/products
//
// Тело запроса сериализуется в JSON из sharedModels.ProductRequest.
// ID и таймстемпы назначает сервер.
//
// Параметры:
//   - token: токен сессии (Authorization: Bearer <token>)
//   - req: поля создаваемого товара (name/description/price/quantity)
//
// Возвращает:
//   - созданный sharedModels.Product целиком
//   - ошибку, если запрос завершился неуспешно (не 2xx) или ответ не удалось декодировать.
func (c *Client) CreateProduct(token string, req sharedModels.ProductRequest) (sharedModels.Product, error) {
	var resp sharedModels.Product
	err := c.PostJSON("/api/products", req, &resp, token)
	return resp, err
}

// GetProduct запрашивает один товар по ID.
//
// Выполняет запрос:
//
//	GET /api/products/{id}
//
// Параметры:
//   - token: токен сессии (Authorization: Bearer <token>)
//   - id: идентификатор товара (uuid)
//
// Возвращает:
//   - sharedModels.Product
//   - ошибку при неуспешном статусе (404, если товара нет) или ошибке декодирования.
func (c *Client) GetProduct(token, id string) (sharedModels.Product, error) {
	var resp sharedModels.Product
	err := c.GetJSON(fmt.Sprintf("/api/products/%s", id), &resp, token)
	return resp, err
}

// UpdateProduct обновляет существующий товар на сервере по ID.
//
// Выполняет запрос:
//
//	PUT /api/products/{id}
//
// Это полная замена: передаются ВСЕ изменяемые поля, сервер перезаписывает
// их целиком. Версионирования нет — побеждает последняя запись.
//
// Параметры:
//   - token: токен сессии (Authorization: Bearer <token>)
//   - id: идентификатор товара (uuid)
//   - req: новые значения всех полей (name/description/price/quantity)
//
// Возвращает:
//   - обновлённый sharedModels.Product
//   - ошибку при неуспешном статусе (не 2xx) или ошибке декодирования JSON.
func (c *Client) UpdateProduct(token, id string, req sharedModels.ProductRequest) (sharedModels.Product, error) {
	var resp sharedModels.Product
	err := c.PutJSON(fmt.Sprintf("/api/products/%s", id), req, &resp, token)
	return resp, err
}

// DeleteProduct удаляет товар на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /api/products/{id}
//
// Удаление идемпотентно: сервер отвечает 204 даже если товара уже нет.
//
// Параметры:
//   - token: токен сессии (Authorization: Bearer <token>)
//   - id: идентификатор товара (uuid)
//
// Возвращает:
//   - nil при успешном удалении (204 No Content)
//   - ошибку при неуспешном статусе (не 2xx).
func (c *Client) DeleteProduct(token, id string) error {
	return c.DeleteJSON(fmt.Sprintf("/api/products/%s", id), nil, token)
}
