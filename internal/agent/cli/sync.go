package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
)

// NewSyncCmd создаёт CLI-команду для синхронизации локального списка товаров с сервером.
//
// Команда запрашивает у сервера полный список товаров (без фильтрации и
// пагинации) и полностью заменяет им локальный кэш.
//
// Требования:
//   - пользователь должен быть залогинен (токен сессии сохранён локально).
//
// Поведение:
//  1. выполняет запрос Sync к серверу с токеном сессии;
//  2. преобразует ответ сервера в локальные записи memory.Product;
//  3. перезаписывает локальный products store (ReplaceAll);
//  4. сохраняет products store в файл;
//  5. выводит: "synced N products".
//
// Защита от несовпадения моделей:
// если сервер вернул элемент без ID (пустая строка), команда завершится ошибкой
// вида "sync: server returned product with empty id..." — это помогает быстро поймать
// рассинхрон JSON-модели между сервером и клиентом.
//
// Пример:
//
//	stockkeeper sync
func NewSyncCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Синхронизация списка товаров с сервером",
		Long: `Синхронизация локального списка товаров с сервером.

Загружает все товары и полностью заменяет ими локальный кэш.

Пример:
  stockkeeper sync
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			result, err := c.Sync(app.Creds.Token)
			if err != nil {
				return app.handleAPIError(err)
			}

			products := make([]memory.Product, 0, len(result.Products))
			for i, p := range result.Products {
				// Стоп-кран: если ID пустой — значит модель ответа не совпала с JSON
				if p.ID == "" {
					return fmt.Errorf("sync: server returned product with empty id at index %d (model mismatch)", i)
				}

				products = append(products, memory.Product{
					ID:          p.ID,
					Name:        p.Name,
					Description: p.Description,
					Price:       p.Price,
					Quantity:    p.Quantity,
					CreatedAt:   p.CreatedAt,
					UpdatedAt:   p.UpdatedAt,
				})
			}

			app.Products.ReplaceAll(products)

			if err := SaveProductsToFile(app.ProductsPath, app.Products); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "synced %d products\n", len(products))
			return nil
		},
	}

	return cmd
}
