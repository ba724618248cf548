package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Команда отправляет запрос GET /api/auth/profile с сохранённым токеном сессии
// и выводит имя, email и дату регистрации. Хеш пароля сервер не возвращает.
//
// Если сервер ответил 401 (токен истёк или недействителен), локальная сессия
// очищается и пользователю предлагается выполнить login заново.
//
// Пример использования:
//
//	stockkeeper profile
func NewProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "profile",
		Short:        "Профиль текущего пользователя",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireSession(); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			p, err := c.Profile(app.Creds.Token)
			if err != nil {
				return app.handleAPIError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ID: %s\nName: %s\nEmail: %s\nRegistered: %s\n",
				p.ID, p.Name, p.Email, p.CreatedAt.Format("2006-01-02 15:04:05"),
			)
			return nil
		},
	}
}
