package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
)

// Product — локальная модель товара, хранимая в памяти агентом.
//
// Поля соответствуют данным, которые приходят от сервера при sync.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductsStore — потокобезопасное in-memory хранилище товаров.
//
// Используется CLI/агентом для:
//   - выдачи товара по ID (Get)
//   - получения списка локальных товаров (List)
//   - полной замены локального состояния после sync (ReplaceAll)
//   - локального добавления/обновления по ответу сервера (Upsert)
//   - удаления товара (Delete)
type ProductsStore struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewProducts создаёт пустое хранилище товаров.
func NewProducts() *ProductsStore {
	return &ProductsStore{
		products: make(map[string]Product),
	}
}

// Get возвращает товар по ID.
//
// Если товар отсутствует — возвращает serr.ErrProductNotFound
func (s *ProductsStore) Get(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.products[id]
	if !ok {
		return Product{}, serr.ErrProductNotFound
	}
	return result, nil
}

// ReplaceAll полностью заменяет содержимое стора переданным списком.
//
// Используется после sync, чтобы локальное состояние строго соответствовало серверу.
// Если в списке есть дубликаты по ID, последнее значение перезапишет предыдущее.
func (s *ProductsStore) ReplaceAll(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[string]Product, len(products))
	for _, p := range products {
		s.products[p.ID] = p
	}
}

// Upsert добавляет товар в стор или перезаписывает существующий по ID.
//
// Используется после create/update, когда сервер вернул актуальное состояние товара.
func (s *ProductsStore) Upsert(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = p
}

// List возвращает список всех товаров из стора.
//
// Порядок элементов не гарантируется (map).
func (s *ProductsStore) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Product, 0, len(s.products))
	for _, product := range s.products {
		result = append(result, product)
	}
	return result
}

// Delete удаляет товар по ID.
//
// Если товар отсутствует — возвращает serr.ErrProductNotFound.
func (s *ProductsStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return serr.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// Режимы сортировки для View.
const (
	SortNewest      = "newest"
	SortOldest      = "oldest"
	SortLowQuantity = "lowQuantity"
)

// LowStock возвращает товары с количеством строго меньше threshold.
//
// Чистая функция: не мутирует вход, считает заново при каждом вызове.
// Порядок элементов повторяет порядок входного списка.
func LowStock(products []Product, threshold int) []Product {
	result := make([]Product, 0)
	for _, p := range products {
		if p.Quantity < threshold {
			result = append(result, p)
		}
	}
	return result
}

// TotalValue возвращает суммарную стоимость склада: сумму price*quantity по всем товарам.
//
// Чистая функция, пустой список даёт 0.
func TotalValue(products []Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price * float64(p.Quantity)
	}
	return total
}

// View возвращает отфильтрованное и отсортированное представление списка товаров.
//
// Параметры:
//   - search: подстрока для фильтра по имени, без учёта регистра.
//     Пустая строка — фильтр не применяется.
//   - sortMode: SortNewest (по CreatedAt, новые первыми), SortOldest (старые первыми),
//     SortLowQuantity (по возрастанию количества). Неизвестный режим — без сортировки.
//
// Чистая функция: вход не мутируется, возвращается новый слайс.
// Сортировка стабильная.
func View(products []Product, search, sortMode string) []Product {
	result := make([]Product, 0, len(products))
	needle := strings.ToLower(search)
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		result = append(result, p)
	}

	switch sortMode {
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	case SortLowQuantity:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Quantity < result[j].Quantity
		})
	}

	return result
}
