package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
)

// ProductDelete создаёт CLI-команду для удаления товара на сервере и локально.
//
// Удаление идемпотентно: сервер отвечает 204 даже если товара уже нет,
// поэтому команда не требует наличия товара в локальном кэше и повторный
// запуск с тем же ID не считается ошибкой.
//
// Требования:
//   - пользователь должен быть залогинен (токен сессии сохранён локально).
//
// Пример использования:
//
//	stockkeeper delete 7a0a4a6a-a7bf-42c0-8cdf-2be8583d180e
//
// В случае успешного выполнения команда:
//  1. удаляет товар на сервере;
//  2. удаляет товар из локального кэша (если он там был);
//  3. сохраняет локальный products-файл;
//  4. выводит сообщение вида: "deleted product <id>".
func ProductDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить товар на сервере и локально",
		Long: `Удаляет товар по ID на сервере и в локальном кэше.

Удаление идемпотентно: если товара уже нет, команда всё равно успешна.

Пример:
  stockkeeper delete <uuid>
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			id := args[0]

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteProduct(app.Creds.Token, id); err != nil {
				return app.handleAPIError(err)
			}

			// локально товара может и не быть — это не ошибка
			if err := app.Products.Delete(id); err != nil && !errors.Is(err, serr.ErrProductNotFound) {
				return err
			}
			if err := SaveProductsToFile(app.ProductsPath, app.Products); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted product %s\n", id)
			return nil
		},
	}
	return cmd
}
