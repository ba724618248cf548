package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
	sharedModels "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/models"
)

// validateProductInput выполняет клиентскую валидацию полей товара.
//
// Сервер поля товара не валидирует, вся проверка живёт здесь:
//   - name обязателен (после trim);
//   - price не может быть отрицательным;
//   - quantity не может быть отрицательным.
func validateProductInput(name string, price float64, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("--name is required")
	}
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	return nil
}

// ProductAdd создаёт CLI-команду для создания нового товара на сервере.
//
// Команда отправляет на сервер имя, описание, цену и количество.
// ID и таймстемпы назначает сервер. Валидация полей выполняется на
// клиенте: имя обязательно, цена и количество не могут быть отрицательными.
//
// Обязательные флаги:
//
//	--name      — название товара
//
// Необязательные флаги:
//
//	--description — описание товара
//	--price       — цена за единицу (по умолчанию 0)
//	--quantity    — количество на складе (по умолчанию 0)
//
// Примеры использования:
//
//	stockkeeper add --name "Болт М8" --price 3.5 --quantity 120
//	stockkeeper add --name "Гайка М8" --description "оцинкованная" --price 1.2 --quantity 500
//
// В случае успешного выполнения команда:
//  1. получает от сервера созданный товар с ID и таймстемпами;
//  2. добавляет товар в локальный кэш и сохраняет его в файл;
//  3. выводит сообщение вида: "created product <id>".
func ProductAdd(app *App) *cobra.Command {
	var (
		name        string
		description string
		price       float64
		quantity    int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Создать новый товар на сервере",
		Long: `Создаёт новый товар на сервере и добавляет его в локальный кэш.

Валидация выполняется на клиенте: имя обязательно,
цена и количество не могут быть отрицательными.

Примеры:
  stockkeeper add --name "Болт М8" --price 3.5 --quantity 120
  stockkeeper add --name "Гайка М8" --description "оцинкованная" --price 1.2 --quantity 500
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}
			if err := validateProductInput(name, price, quantity); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)

			created, err := c.CreateProduct(app.Creds.Token, sharedModels.ProductRequest{
				Name:        name,
				Description: description,
				Price:       price,
				Quantity:    quantity,
			})
			if err != nil {
				return app.handleAPIError(err)
			}
			if created.ID == "" {
				return fmt.Errorf("server returned empty id on create")
			}

			app.Products.Upsert(memory.Product{
				ID:          created.ID,
				Name:        created.Name,
				Description: created.Description,
				Price:       created.Price,
				Quantity:    created.Quantity,
				CreatedAt:   created.CreatedAt,
				UpdatedAt:   created.UpdatedAt,
			})

			if err := SaveProductsToFile(app.ProductsPath, app.Products); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created product %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().Float64Var(&price, "price", 0, "unit price")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "stock quantity")

	return cmd
}
