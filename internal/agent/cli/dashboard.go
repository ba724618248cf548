package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
)

// lowStockDashboardThreshold — порог "мало на складе" для сводки.
const lowStockDashboardThreshold = 10

// NewDashboardCmd создаёт CLI-команду со сводкой по складу.
//
// Команда синхронизирует локальный кэш с сервером и считает показатели
// по свежему списку:
//   - общее число товаров;
//   - товары с количеством меньше 10 (low stock) — число и список;
//   - суммарную стоимость склада (сумма price*quantity).
//
// Все показатели считаются заново при каждом запуске, ничего не кэшируется.
//
// Пример использования:
//
//	stockkeeper dashboard
func NewDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "dashboard",
		Short:        "Сводка по складу (количество, low stock, общая стоимость)",
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
			for _, p := range result.Products {
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

			low := memory.LowStock(products, lowStockDashboardThreshold)
			total := memory.TotalValue(products)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Products: %d\n", len(products))
			fmt.Fprintf(out, "Low stock (<%d): %d\n", lowStockDashboardThreshold, len(low))
			for _, p := range low {
				fmt.Fprintf(out, "  %s\t%s\t%d\n", p.ID, p.Name, p.Quantity)
			}
			fmt.Fprintf(out, "Total value: %.2f\n", total)
			return nil
		},
	}
}
