package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
)

// lowStockListThreshold — порог "мало на складе" для пометки строк в списке.
const lowStockListThreshold = 5

// ProductList создаёт CLI-команду для просмотра локального списка товаров.
//
// Команда работает только с локальным кэшем (products-файл) и не обращается
// к серверу. Фильтрация и сортировка выполняются на клиенте поверх
// загруженного списка, исходный кэш не мутируется.
//
// Флаги:
//
//	--search — фильтр по подстроке имени (без учёта регистра)
//	--sort   — режим сортировки: newest (по умолчанию), oldest, lowQuantity
//
// Товары с количеством меньше 5 помечаются в выводе как LOW.
//
// Примеры:
//
//	stockkeeper list
//	stockkeeper list --search болт
//	stockkeeper list --sort lowQuantity
func ProductList(app *App) *cobra.Command {
	var search, sortMode string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список локальных товаров (фильтр и сортировка)",
		Long: `Показывает локально сохранённые товары.

Фильтр --search ищет подстроку в имени без учёта регистра.
Сортировка --sort: newest | oldest | lowQuantity.
Товары с количеством меньше 5 помечаются как LOW.

Примеры:
  stockkeeper list
  stockkeeper list --search болт --sort lowQuantity
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch sortMode {
			case memory.SortNewest, memory.SortOldest, memory.SortLowQuantity:
			default:
				return fmt.Errorf("unknown sort mode %q (use: newest, oldest, lowQuantity)", sortMode)
			}

			items := memory.View(app.Products.List(), search, sortMode)
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no local products (run: stockkeeper sync)")
				return nil
			}

			for _, p := range items {
				mark := ""
				if p.Quantity < lowStockListThreshold {
					mark = "\tLOW"
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s\t%s\t%.2f\t%d%s\n",
					p.ID, p.Name, p.Price, p.Quantity, mark,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name substring (case-insensitive)")
	cmd.Flags().StringVar(&sortMode, "sort", memory.SortNewest, "sort mode: newest | oldest | lowQuantity")
	return cmd
}
