package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// ProductUpdate создаёт CLI-команду для обновления товара на сервере и локально.
//
// Сервер выполняет полную замену полей (PUT), поэтому команда собирает
// ВСЕ поля запроса: значения берутся из локального кэша, а флаги,
// указанные пользователем, перекрывают локальные значения. Версионирования
// нет — при конкурентных изменениях побеждает последняя запись.
//
// Требования:
//   - пользователь должен быть залогинен (токен сессии сохранён локально);
//   - товар должен быть синхронизирован локально (иначе команда попросит выполнить sync);
//   - должен быть указан хотя бы один флаг обновления: --name/--description/--price/--quantity.
//
// Примеры:
//
//	stockkeeper update <uuid> --price 4.0
//	stockkeeper update <uuid> --quantity 80
//	stockkeeper update <uuid> --name "Болт М8 DIN 933" --price 3.8
//
// В случае успеха команда обновляет локальный кэш ответом сервера
// и выводит: "updated product <id>".
func ProductUpdate(app *App) *cobra.Command {
	var (
		name        string
		description string
		price       float64
		quantity    int

		setName, setDescription, setPrice, setQuantity bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Обновить товар на сервере и локально",
		Long: `Обновляет товар по ID на сервере и в локальном кэше.

Сервер перезаписывает ВСЕ поля (полная замена):
  неуказанные флаги берутся из локального кэша.
Версионирования нет — побеждает последняя запись.

Примеры:
  stockkeeper update <uuid> --price 4.0
  stockkeeper update <uuid> --name "Болт М8 DIN 933" --quantity 80
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}
			id := args[0]

			// Берём локальный товар как базу для полной замены
			p, err := app.Products.Get(id)
			if err != nil {
				return fmt.Errorf("product %s not found locally (run: stockkeeper sync): %w", id, err)
			}

			if !setName && !setDescription && !setPrice && !setQuantity {
				return fmt.Errorf("nothing to update: set at least one flag")
			}

			req := models.ProductRequest{
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Quantity:    p.Quantity,
			}
			if setName {
				req.Name = name
			}
			if setDescription {
				req.Description = description
			}
			if setPrice {
				req.Price = price
			}
			if setQuantity {
				req.Quantity = quantity
			}

			if err := validateProductInput(req.Name, req.Price, req.Quantity); err != nil {
				return err
			}

			// Запрос на сервер
			c := NewAPIClient(app.ServerURL)
			updated, err := c.UpdateProduct(app.Creds.Token, id, req)
			if err != nil {
				return app.handleAPIError(err)
			}

			// локальный кэш обновляем ответом сервера, там свежий updated_at
			app.Products.Upsert(memory.Product{
				ID:          updated.ID,
				Name:        updated.Name,
				Description: updated.Description,
				Price:       updated.Price,
				Quantity:    updated.Quantity,
				CreatedAt:   updated.CreatedAt,
				UpdatedAt:   updated.UpdatedAt,
			})

			if err := SaveProductsToFile(app.ProductsPath, app.Products); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated product %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().Float64Var(&price, "price", 0, "new unit price")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "new stock quantity")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		setName = cmd.Flags().Changed("name")
		setDescription = cmd.Flags().Changed("description")
		setPrice = cmd.Flags().Changed("price")
		setQuantity = cmd.Flags().Changed("quantity")
	}

	return cmd
}
