package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/config"
)

// NewLogoutCmd создаёт CLI-команду для выхода из системы.
//
// Выход выполняется только на клиенте: сервер ничего не знает о logout,
// токен остаётся формально валидным до истечения срока (stateless JWT).
// Команда просто удаляет локальный файл с токеном.
//
// Повторный logout без активной сессии не считается ошибкой.
//
// Пример использования:
//
//	stockkeeper logout
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Выход (удалить локальный токен сессии)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Clear(app.CredsPath); err != nil {
				return err
			}
			app.Creds.Token = ""
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
