package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serr "github.com/IvanChernomyrdin/go-stockkeeper/internal/shared/errors"
)

// ProductGet создаёт CLI-команду для просмотра одного товара по ID.
//
// Сначала товар ищется в локальном кэше. Если его там нет, а флаг --remote
// указан, команда запрашивает товар у сервера (GET /api/products/{id}).
//
// Примеры:
//
//	stockkeeper get <uuid>
//	stockkeeper get <uuid> --remote
func ProductGet(app *App) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Показать один товар по ID",
		Long: `Показывает один товар по ID из локального кэша.

С флагом --remote товар запрашивается у сервера, если его нет локально.

Примеры:
  stockkeeper get <uuid>
  stockkeeper get <uuid> --remote
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			p, err := app.Products.Get(id)
			if err != nil {
				if !errors.Is(err, serr.ErrProductNotFound) || !remote {
					return fmt.Errorf("product %s not found locally (run: stockkeeper sync)", id)
				}

				if err := app.requireSession(); err != nil {
					return err
				}
				c := NewAPIClient(app.ServerURL)
				got, err := c.GetProduct(app.Creds.Token, id)
				if err != nil {
					return app.handleAPIError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"ID: %s\nName: %s\nDescription: %s\nPrice: %.2f\nQuantity: %d\nCreatedAt: %s\nUpdatedAt: %s\n",
					got.ID, got.Name, got.Description, got.Price, got.Quantity,
					got.CreatedAt.Format("2006-01-02 15:04:05"),
					got.UpdatedAt.Format("2006-01-02 15:04:05"),
				)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %s\nName: %s\nDescription: %s\nPrice: %.2f\nQuantity: %d\nCreatedAt: %s\nUpdatedAt: %s\n",
				p.ID, p.Name, p.Description, p.Price, p.Quantity,
				p.CreatedAt.Format("2006-01-02 15:04:05"),
				p.UpdatedAt.Format("2006-01-02 15:04:05"),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "fetch from server if not cached locally")
	return cmd
}
