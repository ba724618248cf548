package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

// формат email проверяется на клиенте до похода на сервер
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере StockKeeper
// с использованием имени, email и пароля. Обязателен флаг --email;
// пароль можно передать флагом --password или ввести скрытым вводом.
//
// До похода на сервер выполняется клиентская валидация:
// email должен иметь корректный формат, пароль — не короче 8 символов.
//
// Регистрация НЕ логинит пользователя: токен не выдаётся,
// после успешной регистрации нужно выполнить stockkeeper login.
//
// Пример использования:
//
//	stockkeeper register --name "Иван" --email test@example.com --password StrongPass123
//
// В случае успешной регистрации пользователю выводится сообщение
// об успешном завершении операции.
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email, password string
	var passwordFromStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  stockkeeper register --name "Иван" --email test@example.com --password StrongPass123
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := ReadPassword(cmd, passwordFromStdin)
				if err != nil {
					return err
				}
				password = pw
			}

			if !emailRe.MatchString(email) {
				return fmt.Errorf("invalid email format: %s", email)
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			_, err := c.Register(name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registration successful, run: stockkeeper login")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration (omit to be prompted)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
