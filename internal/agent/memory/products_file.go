package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ProductsDump — формат файла локального хранилища товаров.
//
// Файл содержит объект вида:
//   { "products": [ ... ] }

type ProductsDump struct {
	Products []Product `json:"products"`
}

// DefaultProductsPath возвращает путь по умолчанию для локального файла товаров.
//
// Путь формируется как:
//
//	$HOME/.stockkeeper/products.json
//
// Ошибки:
//   - возвращает ошибку, если не удаётся определить домашнюю директорию пользователя.
func DefaultProductsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".stockkeeper", "products.json"), nil
}

// SaveToFile сериализует текущее состояние store в JSON и сохраняет в файл по пути path.
//
// Поведение:
//   - читает store под RLock (потокобезопасно);
//   - создаёт директорию для файла (MkdirAll) с правами 0700;
//   - сохраняет файл с правами 0600;
//   - формат JSON: ProductsDump{Products:[...]} с отступами (MarshalIndent).
//
// Важно:
//   - порядок товаров в JSON не гарантируется (map).
func SaveToFile(path string, store *ProductsStore) error {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := ProductsDump{Products: make([]Product, 0, len(store.products))}
	for _, p := range store.products {
		out.Products = append(out.Products, p)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// LoadFromFile загружает товары из JSON-файла в store.
//
// Поведение:
//   - если файл не существует — возвращает nil (это нормальная ситуация при первом запуске);
//   - если JSON некорректный — возвращает ошибку Unmarshal;
//   - при успешной загрузке полностью заменяет содержимое store (ReplaceAll semantics).
//
// Важно:
//   - операция замены выполняется под Lock (потокобезопасно).

func LoadFromFile(path string, store *ProductsStore) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var dump ProductsDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	// заменяем полностью — после sync это удобно
	store.products = make(map[string]Product, len(dump.Products))
	for _, p := range dump.Products {
		store.products[p.ID] = p
	}

	return nil
}
